package analytics

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"talentflow/internal/shared/apperror"
	"talentflow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("analytics.handler")}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("analytics request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Performance(c *gin.Context) {
	sortBy := MetricKey(strings.ToLower(strings.TrimSpace(c.Query("sort_by"))))
	dir := ParseDirection(c.Query("sort_dir"))

	resp, err := h.service.Performance(c.Request.Context(), c.GetString("company_id"), sortBy, dir)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit < len(resp) {
		resp = resp[:limit]
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Teams(c *gin.Context) {
	resp, err := h.service.Teams(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TeamReport(c *gin.Context) {
	pdf, err := h.service.TeamReport(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "team-insights.pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) Hierarchy(c *gin.Context) {
	resp, err := h.service.Hierarchy(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
