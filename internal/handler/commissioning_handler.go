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

type CommissioningHandler struct {
	repo     *repository.CommissioningRepository
	progress *service.ProgressService
	logger   *zap.Logger
}

func NewCommissioningHandler(repo *repository.CommissioningRepository, progress *service.ProgressService, logger *zap.Logger) *CommissioningHandler {
	return &CommissioningHandler{repo: repo, progress: progress, logger: logger}
}

func (h *CommissioningHandler) GetByCustomer(c *gin.Context) {
	customerID := c.Param("id")
	commissioning, err := h.repo.FindByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.logger.Error("GetCommissioning: failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch commissioning"})
		return
	}
	if commissioning == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "commissioning not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commissioning": commissioning})
}

func (h *CommissioningHandler) Upsert(c *gin.Context) {
	customerID := c.Param("id")

	var commissioning model.Commissioning
	if err := c.ShouldBindJSON(&commissioning); err != nil {
		h.logger.Warn("UpsertCommissioning: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	commissioning.CustomerID = customerID

	existing, err := h.repo.FindByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.logger.Error("UpsertCommissioning: lookup failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch commissioning"})
		return
	}
	if existing != nil {
		commissioning.ID = existing.ID
	} else if commissioning.ID == "" {
		commissioning.ID = util.NewID()
	}

	if err := h.repo.Upsert(c.Request.Context(), &commissioning); err != nil {
		h.logger.Error("UpsertCommissioning: failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save commissioning"})
		return
	}

	result, _, err := h.progress.Recompute(c.Request.Context(), customerID, progress.SectionCommissioning)
	if err != nil {
		h.logger.Error("UpsertCommissioning: recompute failed",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"commissioning": commissioning,
		"progress":      result,
	})
}
