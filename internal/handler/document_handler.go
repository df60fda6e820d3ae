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

type DocumentHandler struct {
	repo     *repository.DocumentRepository
	progress *service.ProgressService
	logger   *zap.Logger
}

func NewDocumentHandler(repo *repository.DocumentRepository, progress *service.ProgressService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{repo: repo, progress: progress, logger: logger}
}

func (h *DocumentHandler) ListByCustomer(c *gin.Context) {
	customerID := c.Param("id")
	documents, err := h.repo.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.logger.Error("ListDocuments: failed", zap.String("customer_id", customerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch documents"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": documents})
}

func (h *DocumentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("UpdateDocument: lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch document"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}

	var doc model.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		h.logger.Warn("UpdateDocument: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc.ID = id
	doc.CustomerID = existing.CustomerID

	if err := h.repo.Update(c.Request.Context(), &doc); err != nil {
		h.logger.Error("UpdateDocument: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update document"})
		return
	}

	result, _, err := h.progress.Recompute(c.Request.Context(), doc.CustomerID, progress.SectionDocuments)
	if err != nil {
		h.logger.Error("UpdateDocument: recompute failed",
			zap.String("customer_id", doc.CustomerID),
			zap.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"document": doc,
		"progress": result,
	})
}
