package handlers

import (
	"net/http"

	"shop_marketing/internal/services"
	"shop_marketing/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	store     storage.Storage
	generator services.Generator
	log       *zap.Logger
}

func NewAnalyticsHandler(store storage.Storage, generator services.Generator, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{store: store, generator: generator, log: log}
}

func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	stats, err := h.store.GetShopStats(c.Request.Context(), c.Param("shopId"))
	if err != nil {
		internalError(c, "Failed to get shop stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) GenerateInsights(c *gin.Context) {
	var req services.InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid insights request", err)
		return
	}

	insights, err := h.generator.GenerateBusinessInsights(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("insights generation failed", zap.Error(err))
		internalError(c, "Failed to generate insights", err)
		return
	}
	c.JSON(http.StatusOK, insights)
}
