package handler

import (
	"net/http"

	"solarflow/internal/progress"
	"solarflow/internal/repository"
	"solarflow/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProgressHandler struct {
	progress *service.ProgressService
	activity *repository.ActivityLogRepository
	logger   *zap.Logger
}

func NewProgressHandler(progress *service.ProgressService, activity *repository.ActivityLogRepository, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{progress: progress, activity: activity, logger: logger}
}

func (h *ProgressHandler) GetProgress(c *gin.Context) {
	customerID := c.Param("id")
	result, err := h.progress.GetProgress(c.Request.Context(), customerID)
	if err != nil {
		h.logger.Error("GetProgress: failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": result})
}

// Recompute forces a full derivation pass. Section defaults to documents,
// which has no downstream gate, so a forced refresh never emits spurious
// unlock notifications unless the caller names a gated section.
func (h *ProgressHandler) Recompute(c *gin.Context) {
	customerID := c.Param("id")

	section := progress.SectionDocuments
	if raw := c.Query("section"); raw != "" {
		parsed, err := progress.ParseSection(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		section = parsed
	}

	result, events, err := h.progress.Recompute(c.Request.Context(), customerID, section)
	if err != nil {
		h.logger.Error("Recompute: failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"progress": result,
		"unlocked": events,
	})
}

func (h *ProgressHandler) ListActivities(c *gin.Context) {
	activities, err := h.activity.ListRecent(c.Request.Context(), 100)
	if err != nil {
		h.logger.Error("ListActivities: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch activities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
