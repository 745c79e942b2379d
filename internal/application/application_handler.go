package application

import (
	"encoding/json"
	"net/http"
	"time"

	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("application.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.handler")
	}
	return &Handler{service: service, logger: l}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("application request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Apply(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	// Release the lock on every exit so a failed attempt can be retried
	// immediately instead of waiting out the lock TTL.
	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	callerID := c.GetString("user_id_validated")

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http apply binding failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapBindingError(err))
		return
	}

	resp, err := h.service.Apply(c.Request.Context(), callerID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// Cache the success payload so a retried Idempotency-Key replays it.
	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListMine(c *gin.Context) {
	callerID := c.GetString("user_id_validated")

	resp, err := h.service.ListMine(c.Request.Context(), callerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByVacancy(c *gin.Context) {
	callerID := c.GetString("user_id_validated")

	resp, err := h.service.ListByVacancy(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Withdraw(c *gin.Context) {
	callerID := c.GetString("user_id_validated")

	resp, err := h.service.Withdraw(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
