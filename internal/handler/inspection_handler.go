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

type InspectionHandler struct {
	repo     *repository.InspectionRepository
	progress *service.ProgressService
	logger   *zap.Logger
}

func NewInspectionHandler(repo *repository.InspectionRepository, progress *service.ProgressService, logger *zap.Logger) *InspectionHandler {
	return &InspectionHandler{repo: repo, progress: progress, logger: logger}
}

func (h *InspectionHandler) ListByCustomer(c *gin.Context) {
	customerID := c.Param("id")
	inspections, err := h.repo.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.logger.Error("ListInspections: failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inspections"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inspections": inspections})
}

func (h *InspectionHandler) Update(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("UpdateInspection: lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inspection"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "inspection not found"})
		return
	}

	var ins model.Inspection
	if err := c.ShouldBindJSON(&ins); err != nil {
		h.logger.Warn("UpdateInspection: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ins.ID = id
	ins.CustomerID = existing.CustomerID

	if err := h.repo.Update(c.Request.Context(), &ins); err != nil {
		h.logger.Error("UpdateInspection: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update inspection"})
		return
	}

	result, events, err := h.progress.Recompute(c.Request.Context(), ins.CustomerID, progress.SectionInspection)
	if err != nil {
		h.logger.Error("UpdateInspection: recompute failed",
			zap.String("customer_id", ins.CustomerID),
			zap.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inspection": ins,
		"progress":   result,
		"unlocked":   events,
	})
}
