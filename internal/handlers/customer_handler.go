package handlers

import (
	"errors"
	"net/http"

	"shop_marketing/internal/models"
	"shop_marketing/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	store storage.Storage
	log   *zap.Logger
}

func NewCustomerHandler(store storage.Storage, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{store: store, log: log}
}

func (h *CustomerHandler) GetCustomersByShop(c *gin.Context) {
	customers, err := h.store.GetCustomers(c.Request.Context(), c.Param("shopId"))
	if err != nil {
		h.log.Error("failed to list customers", zap.Error(err))
		internalError(c, "Failed to get customers", err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var in models.InsertCustomer
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid customer data", err)
		return
	}

	customer, err := h.store.CreateCustomer(c.Request.Context(), &in)
	if err != nil {
		h.log.Error("failed to create customer", zap.Error(err))
		internalError(c, "Failed to create customer", err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var patch models.UpdateCustomer
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid customer data", err)
		return
	}

	customer, err := h.store.UpdateCustomer(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Customer not found")
			return
		}
		h.log.Error("failed to update customer", zap.Error(err))
		internalError(c, "Failed to update customer", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
