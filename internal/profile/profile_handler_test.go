package profile_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"talentflow/internal/profile"
	profileerrors "talentflow/internal/profile/errors"
	profileMock "talentflow/internal/profile/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withIdentity(companyID, profileID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Set("profile_id", profileID)
		c.Next()
	}
}

type envelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
	Meta struct {
		Total int64 `json:"total"`
		Page  int   `json:"page"`
	} `json:"meta"`
	Error struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func TestProfileHandler_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := profileMock.NewMockService(ctrl)
	companyID := uuid.NewString()

	svc.EXPECT().GetAll(gomock.Any(), companyID, profile.Filter{Role: "employee"}).Return([]profile.ProfileResponse{
		{ID: "1", FullName: "Carla", Email: "carla@acme.io"},
		{ID: "2", FullName: "ana", Email: "ana@acme.io"},
		{ID: "3", FullName: "Bruno", Email: "bruno@other.io"},
	}, nil)

	h := profile.NewHandler(svc, zap.NewNop())
	r := setupRouter()
	r.GET("/profiles", withIdentity(companyID, ""), h.GetAll)

	req := httptest.NewRequest(http.MethodGet, "/profiles?role=employee&q=acme&page_size=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.Meta.Total)

	var data []profile.ProfileResponse
	assert.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Len(t, data, 1)
	assert.Equal(t, "ana", data[0].FullName)
}

func TestProfileHandler_GetAllDescendingKeepsTies(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := profileMock.NewMockService(ctrl)
	companyID := uuid.NewString()

	svc.EXPECT().GetAll(gomock.Any(), companyID, profile.Filter{}).Return([]profile.ProfileResponse{
		{ID: "1", FullName: "Ana", Points: 50},
		{ID: "2", FullName: "Bruno", Points: 80},
		{ID: "3", FullName: "Carla", Points: 50},
		{ID: "4", FullName: "Diego", Points: 50},
	}, nil)

	h := profile.NewHandler(svc, zap.NewNop())
	r := setupRouter()
	r.GET("/profiles", withIdentity(companyID, ""), h.GetAll)

	req := httptest.NewRequest(http.MethodGet, "/profiles?sort_by=points&sort_dir=desc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	var data []profile.ProfileResponse
	assert.NoError(t, json.Unmarshal(body.Data, &data))
	ids := make([]string, 0, len(data))
	for _, p := range data {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids)
}

func TestProfileHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := profileMock.NewMockService(ctrl)
	companyID, profileID := uuid.NewString(), uuid.NewString()

	svc.EXPECT().GetByID(gomock.Any(), companyID, profileID).Return(profile.ProfileResponse{ID: profileID}, nil)

	h := profile.NewHandler(svc, zap.NewNop())
	r := setupRouter()
	r.GET("/profiles/me", withIdentity(companyID, profileID), h.Me)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profiles/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), profileID)
}

func TestProfileHandler_Update(t *testing.T) {
	companyID := uuid.NewString()
	id := uuid.NewString()

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := profileMock.NewMockService(ctrl)

		h := profile.NewHandler(svc, zap.NewNop())
		r := setupRouter()
		r.PUT("/profiles/:id", withIdentity(companyID, ""), h.Update)

		req := httptest.NewRequest(http.MethodPut, "/profiles/"+id, strings.NewReader(`{"full_name":"Ana","role":"ceo","level":"pleno"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("cycle is reported as bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := profileMock.NewMockService(ctrl)
		svc.EXPECT().Update(gomock.Any(), companyID, id, gomock.Any()).Return(profile.ProfileResponse{}, profileerrors.ErrReportingCycle)

		h := profile.NewHandler(svc, zap.NewNop())
		r := setupRouter()
		r.PUT("/profiles/:id", withIdentity(companyID, ""), h.Update)

		req := httptest.NewRequest(http.MethodPut, "/profiles/"+id, strings.NewReader(`{"full_name":"Ana","role":"employee","level":"pleno","points":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "reporting cycle")
	})
}

func TestProfileHandler_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := profileMock.NewMockService(ctrl)
	companyID, id := uuid.NewString(), uuid.NewString()

	svc.EXPECT().Deactivate(gomock.Any(), companyID, id).Return(profileerrors.ErrProfileNotFound)

	h := profile.NewHandler(svc, zap.NewNop())
	r := setupRouter()
	r.DELETE("/profiles/:id", withIdentity(companyID, ""), h.Deactivate)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/profiles/"+id, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
