package handler

import (
	"net/http"

	"solarflow/internal/model"
	"solarflow/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	customers *service.CustomerService
	logger    *zap.Logger
}

func NewCustomerHandler(customers *service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, logger: logger}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		h.logger.Error("ListCustomers: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id := c.Param("id")
	customer, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("GetCustomer: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customer"})
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var customer model.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		h.logger.Warn("CreateCustomer: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if customer.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	userName, userID := requestUser(c)
	customer.CreatedBy = userID
	if err := h.customers.Create(c.Request.Context(), &customer, userName, userID); err != nil {
		h.logger.Error("CreateCustomer: failed", zap.String("name", customer.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer"})
		return
	}

	h.logger.Info("CreateCustomer: success", zap.String("id", customer.ID))
	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var customer model.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		h.logger.Warn("UpdateCustomer: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer.ID = id

	userName, userID := requestUser(c)
	if err := h.customers.Update(c.Request.Context(), &customer, userName, userID); err != nil {
		h.logger.Error("UpdateCustomer: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	userName, userID := requestUser(c)
	if err := h.customers.Delete(c.Request.Context(), id, userName, userID); err != nil {
		h.logger.Error("DeleteCustomer: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete customer"})
		return
	}

	h.logger.Info("DeleteCustomer: success", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestUser pulls the authenticated identity set by the auth middleware.
func requestUser(c *gin.Context) (name string, id string) {
	name = c.GetString("user_name")
	if name == "" {
		name = "System"
	}
	return name, c.GetString("user_id")
}
