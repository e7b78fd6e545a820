package notification_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"talentflow/internal/notification"
	notificationerrors "talentflow/internal/notification/errors"
	notificationMock "talentflow/internal/notification/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newRouter(svc notification.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := notification.NewHandler(svc, zap.NewNop())
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", "c-1")
		c.Set("profile_id", "p-1")
		c.Next()
	})
	r.GET("/notifications", h.List)
	r.PATCH("/notifications/:id/read", h.MarkRead)
	return r
}

func TestNotificationHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := notificationMock.NewMockService(ctrl)
	svc.EXPECT().ListForProfile(gomock.Any(), "c-1", "p-1", true).
		Return([]notification.NotificationResponse{{ID: "n-1", Title: "Bem-vindo(a)"}}, nil)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications?unread=true", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "n-1")
}

func TestNotificationHandler_MarkReadNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := notificationMock.NewMockService(ctrl)
	svc.EXPECT().MarkRead(gomock.Any(), "c-1", "p-1", "n-9").Return(notificationerrors.ErrNotificationNotFound)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/notifications/n-9/read", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
