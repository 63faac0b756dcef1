package client

import (
	"net/http"

	"go-fieldtrack/internal/middleware"
	"go-fieldtrack/internal/shared/apperror"
	"go-fieldtrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("client.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAssigned(c *gin.Context) {
	resp, err := h.service.GetAssigned(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("get assigned clients failed", zap.Int("status", httpErr.Status), zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
