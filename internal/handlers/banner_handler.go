package handlers

import (
	"net/http"

	"shop_marketing/internal/models"
	"shop_marketing/internal/services"
	"shop_marketing/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BannerHandler struct {
	store     storage.Storage
	generator services.Generator
	log       *zap.Logger
}

func NewBannerHandler(store storage.Storage, generator services.Generator, log *zap.Logger) *BannerHandler {
	return &BannerHandler{store: store, generator: generator, log: log}
}

func (h *BannerHandler) Generate(c *gin.Context) {
	var req services.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid generation request", err)
		return
	}

	result, err := h.generator.GenerateBannerContent(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("banner generation failed", zap.Error(err))
		internalError(c, "Failed to generate banner content", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BannerHandler) Save(c *gin.Context) {
	var in models.InsertBanner
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid banner data", err)
		return
	}

	banner, err := h.store.CreateBanner(c.Request.Context(), &in)
	if err != nil {
		internalError(c, "Failed to save banner", err)
		return
	}
	c.JSON(http.StatusCreated, banner)
}

func (h *BannerHandler) GetBannersByShop(c *gin.Context) {
	banners, err := h.store.GetBanners(c.Request.Context(), c.Param("shopId"))
	if err != nil {
		internalError(c, "Failed to get banners", err)
		return
	}
	c.JSON(http.StatusOK, banners)
}
