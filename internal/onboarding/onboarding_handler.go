package onboarding

import (
	"net/http"

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
	return &Handler{service: service, logger: logger.Named("onboarding.handler")}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("onboarding request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindDraft(c *gin.Context) (Draft, bool) {
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http onboarding bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return Draft{}, false
	}
	return req.Draft, true
}

func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Load(c.Request.Context(), c.GetString("company_id"), c.GetString("profile_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Next(c *gin.Context) {
	draft, ok := h.bindDraft(c)
	if !ok {
		return
	}
	resp, err := h.service.Next(c.Request.Context(), c.GetString("company_id"), c.GetString("profile_id"), draft)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Previous(c *gin.Context) {
	draft, ok := h.bindDraft(c)
	if !ok {
		return
	}
	resp, err := h.service.Previous(c.Request.Context(), c.GetString("company_id"), c.GetString("profile_id"), draft)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Complete(c *gin.Context) {
	draft, ok := h.bindDraft(c)
	if !ok {
		return
	}
	resp, err := h.service.Complete(c.Request.Context(), c.GetString("company_id"), c.GetString("profile_id"), draft)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindPartialCompletion {
			httpErr := apperror.ToHTTP(err)
			h.logger.Warn("onboarding completed partially", zap.Error(err))
			response.Partial(c, httpErr.Status, resp, httpErr.Code, httpErr.Message)
			return
		}
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
