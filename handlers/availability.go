package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"medibook/config"
	"medibook/services/schedule"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ScheduleHandler serves the slot-availability and suggestion endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
	Cache   *redis.Client
	Logger  *zap.Logger
}

func NewScheduleHandler(svc schedule.ScheduleService, cache *redis.Client, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Cache: cache, Logger: logger}
}

func slotCacheKey(doctorID, date string) string {
	return fmt.Sprintf("slots:%s:%s", doctorID, date)
}

// GetAvailableSlots returns the bookable times for a doctor on a date.
// Responses are cached briefly; the cache is advisory only, since the
// commit path re-validates availability regardless.
func (h *ScheduleHandler) GetAvailableSlots(c *gin.Context) {
	doctorID := c.Param("doctorID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter date (DD-MM-YYYY) is required")
		return
	}

	ctx := c.Request.Context()
	key := slotCacheKey(doctorID, date)

	if cached, err := h.Cache.Get(ctx, key).Result(); err == nil {
		var result schedule.AvailableSlotsResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			c.JSON(http.StatusOK, result)
			return
		}
	}

	result, err := h.Service.AvailableSlots(ctx, doctorID, date)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	if data, err := json.Marshal(result); err == nil {
		ttl := time.Duration(config.AppConfig.SlotCacheSeconds) * time.Second
		if setErr := h.Cache.Set(context.Background(), key, data, ttl).Err(); setErr != nil {
			h.Logger.Warn("failed to cache slot payload", zap.String("key", key), zap.Error(setErr))
		}
	}

	c.JSON(http.StatusOK, result)
}

// GetSuggestions returns the nearest confirmed-available alternatives
// starting the day after the requested date.
func (h *ScheduleHandler) GetSuggestions(c *gin.Context) {
	doctorID := c.Param("doctorID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter date (DD-MM-YYYY) is required")
		return
	}

	suggestions, err := h.Service.Suggestions(c.Request.Context(), doctorID, date)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// respondScheduleError maps engine error codes onto HTTP statuses.
func respondScheduleError(c *gin.Context, err error) {
	switch schedule.ErrCode(err) {
	case schedule.CodeSlotTaken:
		c.JSON(http.StatusConflict, gin.H{"error": schedule.CodeSlotTaken, "message": "That slot was just taken, please choose another."})
	case schedule.CodeInvalidSlot:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": schedule.CodeInvalidSlot, "message": err.Error()})
	case schedule.CodeStorageUnavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": schedule.CodeStorageUnavailable, "message": "Temporary storage issue, please retry."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": err.Error()})
	}
}
