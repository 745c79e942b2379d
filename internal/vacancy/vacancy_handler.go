package vacancy

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-recruit/internal/events"
	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service  Service
	recorder EventRecorder
	rdb      *redis.Client
	logger   *zap.Logger
}

func NewHandler(service Service, recorder EventRecorder, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("vacancy.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vacancy.handler")
	}
	if recorder == nil {
		recorder = NewNoopEventRecorder()
	}
	return &Handler{service: service, recorder: recorder, logger: l}
}

func NewHandlerWithRedis(service Service, recorder EventRecorder, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, recorder, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("vacancy request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) recordEvent(c *gin.Context, eventType string, view VacancyResponse) {
	if err := h.recorder.Record(c.Request.Context(), eventType, view); err != nil {
		// The operation already succeeded; a failed outbox write only
		// delays downstream consumers until the next mutation.
		h.logger.Error("record vacancy lifecycle event failed",
			zap.String("event_type", eventType),
			zap.String("vacancy_id", view.ID),
			zap.Error(err),
		)
	}
}

func (h *Handler) Create(c *gin.Context) {
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
	h.logger.Debug("http create vacancy", zap.String("caller_id", callerID))

	var req CreateVacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create vacancy binding failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapBindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), callerID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.recordEvent(c, events.VacancyCreated, resp)

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

func (h *Handler) List(c *gin.Context) {
	callerID := c.GetString("user_id_validated")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	filter := VacancyFilter{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	resp, total, err := h.service.List(c.Request.Context(), callerID, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetPublished(c *gin.Context) {
	resp, err := h.service.GetPublished(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	callerID := c.GetString("user_id_validated")
	id := c.Param("id")
	h.logger.Debug("http update vacancy",
		zap.String("caller_id", callerID),
		zap.String("vacancy_id", id),
	)

	var req UpdateVacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update vacancy binding failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapBindingError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), callerID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.recordEvent(c, events.VacancyUpdated, resp)

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	callerID := c.GetString("user_id_validated")
	id := c.Param("id")
	h.logger.Debug("http delete vacancy",
		zap.String("caller_id", callerID),
		zap.String("vacancy_id", id),
	)

	resp, err := h.service.Delete(c.Request.Context(), callerID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.recordEvent(c, events.VacancyDeleted, resp)

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
