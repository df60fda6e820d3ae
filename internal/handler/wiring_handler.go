package handler

import (
	"net/http"

	"solarflow/internal/model"
	"solarflow/internal/progress"
	"solarflow/internal/repository"
	"solarflow/internal/service"
	"solarflow/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WiringHandler struct {
	repo     *repository.WiringRepository
	progress *service.ProgressService
	logger   *zap.Logger
}

func NewWiringHandler(repo *repository.WiringRepository, progress *service.ProgressService, logger *zap.Logger) *WiringHandler {
	return &WiringHandler{repo: repo, progress: progress, logger: logger}
}

func (h *WiringHandler) GetByCustomer(c *gin.Context) {
	customerID := c.Param("id")
	wiring, err := h.repo.FindByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.logger.Error("GetWiring: failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch wiring details"})
		return
	}
	if wiring == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "wiring details not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wiring": wiring})
}

func (h *WiringHandler) Upsert(c *gin.Context) {
	customerID := c.Param("id")

	var wiring model.WiringDetails
	if err := c.ShouldBindJSON(&wiring); err != nil {
		h.logger.Warn("UpsertWiring: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wiring.CustomerID = customerID

	existing, err := h.repo.FindByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.logger.Error("UpsertWiring: lookup failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch wiring details"})
		return
	}
	if existing != nil {
		wiring.ID = existing.ID
	} else if wiring.ID == "" {
		wiring.ID = util.NewID()
	}

	if err := h.repo.Upsert(c.Request.Context(), &wiring); err != nil {
		h.logger.Error("UpsertWiring: failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save wiring details"})
		return
	}

	result, events, err := h.progress.Recompute(c.Request.Context(), customerID, progress.SectionWiring)
	if err != nil {
		h.logger.Error("UpsertWiring: recompute failed",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wiring":   wiring,
		"progress": result,
		"unlocked": events,
	})
}
