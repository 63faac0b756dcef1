package checkin

import (
	"net/http"

	checkinerrors "go-fieldtrack/internal/checkin/errors"
	"go-fieldtrack/internal/domain"
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
	l := zap.L().Named("checkin.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("checkin.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("checkin request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CheckIn(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	var req CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("http check-in bind failed", zap.Error(err))
		// role is checked before the payload
		if caller.Role != domain.RoleEmployee {
			h.writeServiceError(c, checkinerrors.ErrCheckinEmployeeOnly)
			return
		}
		h.writeServiceError(c, checkinerrors.ErrLocationRequired)
		return
	}

	resp, err := h.service.CheckIn(c.Request.Context(), caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Checkout(c *gin.Context) {
	resp, err := h.service.Checkout(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetActive(c *gin.Context) {
	resp, err := h.service.GetActive(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// no active session encodes as data: null
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	var q HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, checkinerrors.ErrInvalidDateRange)
		return
	}

	resp, err := h.service.GetHistory(c.Request.Context(), middleware.CallerFrom(c), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
