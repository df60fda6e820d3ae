package handler

import (
	"net/http"

	"solarflow/internal/model"
	"solarflow/internal/progress"
	"solarflow/internal/repository"
	"solarflow/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChecklistHandler struct {
	repo     *repository.ChecklistRepository
	progress *service.ProgressService
	logger   *zap.Logger
}

func NewChecklistHandler(repo *repository.ChecklistRepository, progress *service.ProgressService, logger *zap.Logger) *ChecklistHandler {
	return &ChecklistHandler{repo: repo, progress: progress, logger: logger}
}

func (h *ChecklistHandler) ListByCustomer(c *gin.Context) {
	customerID := c.Param("id")
	items, err := h.repo.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.logger.Error("ListChecklist: failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch checklist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checklist": items})
}

func (h *ChecklistHandler) Update(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("UpdateChecklistItem: lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch checklist item"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "checklist item not found"})
		return
	}

	var item model.ChecklistItem
	if err := c.ShouldBindJSON(&item); err != nil {
		h.logger.Warn("UpdateChecklistItem: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = id
	item.CustomerID = existing.CustomerID

	if err := h.repo.Update(c.Request.Context(), &item); err != nil {
		h.logger.Error("UpdateChecklistItem: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update checklist item"})
		return
	}

	result, events, err := h.progress.Recompute(c.Request.Context(), item.CustomerID, progress.SectionChecklist)
	if err != nil {
		h.logger.Error("UpdateChecklistItem: recompute failed",
			zap.String("customer_id", item.CustomerID),
			zap.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":     item,
		"progress": result,
		"unlocked": events,
	})
}
