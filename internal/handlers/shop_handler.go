package handlers

import (
	"errors"
	"net/http"

	"shop_marketing/internal/models"
	"shop_marketing/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShopHandler struct {
	store storage.Storage
	log   *zap.Logger
}

func NewShopHandler(store storage.Storage, log *zap.Logger) *ShopHandler {
	return &ShopHandler{store: store, log: log}
}

func (h *ShopHandler) GetShop(c *gin.Context) {
	shop, err := h.store.GetShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Shop not found")
			return
		}
		h.log.Error("failed to get shop", zap.Error(err))
		internalError(c, "Failed to get shop", err)
		return
	}
	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) GetShopByUser(c *gin.Context) {
	shop, err := h.store.GetShopByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Shop not found")
			return
		}
		h.log.Error("failed to get shop by user", zap.Error(err))
		internalError(c, "Failed to get shop", err)
		return
	}
	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) CreateShop(c *gin.Context) {
	var in models.InsertShop
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid shop data", err)
		return
	}

	shop, err := h.store.CreateShop(c.Request.Context(), &in)
	if err != nil {
		h.log.Error("failed to create shop", zap.Error(err))
		internalError(c, "Failed to create shop", err)
		return
	}
	c.JSON(http.StatusCreated, shop)
}

func (h *ShopHandler) UpdateShop(c *gin.Context) {
	var patch models.UpdateShop
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid shop data", err)
		return
	}

	shop, err := h.store.UpdateShop(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Shop not found")
			return
		}
		h.log.Error("failed to update shop", zap.Error(err))
		internalError(c, "Failed to update shop", err)
		return
	}
	c.JSON(http.StatusOK, shop)
}
