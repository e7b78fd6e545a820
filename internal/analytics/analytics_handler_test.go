package analytics_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentflow/internal/analytics"
	analyticserrors "talentflow/internal/analytics/errors"
	analyticsMock "talentflow/internal/analytics/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupHandler(t *testing.T) (*gin.Engine, *analyticsMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := analyticsMock.NewMockService(gomock.NewController(t))
	h := analytics.NewHandler(svc, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", "c-1")
		c.Next()
	})
	r.GET("/analytics/performance", h.Performance)
	r.GET("/analytics/teams", h.Teams)
	r.GET("/analytics/teams/report.pdf", h.TeamReport)
	r.GET("/organization/hierarchy", h.Hierarchy)
	return r, svc
}

func TestAnalyticsHandler_Performance(t *testing.T) {
	t.Run("parses sort and applies limit", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().Performance(gomock.Any(), "c-1", analytics.MetricPoints, analytics.Ascending).
			Return(expectedMetrics(), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/performance?sort_by=Points&sort_dir=asc&limit=1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data []analytics.PerformanceMetric `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data, 1)
	})

	t.Run("unknown metric is a bad request", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().Performance(gomock.Any(), "c-1", analytics.MetricKey("salary"), analytics.Descending).
			Return(nil, analyticserrors.ErrUnknownMetric)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/performance?sort_by=salary", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAnalyticsHandler_TeamReport(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().TeamReport(gomock.Any(), "c-1").Return([]byte("%PDF-1.3"), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/teams/report.pdf", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "team-insights.pdf")
}

func TestAnalyticsHandler_Hierarchy(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().Hierarchy(gomock.Any(), "c-1").Return(analytics.Hierarchy{
		Admins: []analytics.ProfileRecord{{ID: "a1", FullName: "Alice"}},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/organization/hierarchy", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data analytics.Hierarchy `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Alice", body.Data.Admins[0].FullName)
}
