package handlers

import (
	"errors"
	"net/http"

	"shop_marketing/internal/models"
	"shop_marketing/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	store storage.Storage
	log   *zap.Logger
}

func NewCampaignHandler(store storage.Storage, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{store: store, log: log}
}

func (h *CampaignHandler) GetCampaignsByShop(c *gin.Context) {
	campaigns, err := h.store.GetCampaigns(c.Request.Context(), c.Param("shopId"))
	if err != nil {
		h.log.Error("failed to list campaigns", zap.Error(err))
		internalError(c, "Failed to get campaigns", err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var in models.InsertCampaign
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid campaign data", err)
		return
	}

	campaign, err := h.store.CreateCampaign(c.Request.Context(), &in)
	if err != nil {
		h.log.Error("failed to create campaign", zap.Error(err))
		internalError(c, "Failed to create campaign", err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	var patch models.UpdateCampaign
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid campaign data", err)
		return
	}

	campaign, err := h.store.UpdateCampaign(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Campaign not found")
			return
		}
		h.log.Error("failed to update campaign", zap.Error(err))
		internalError(c, "Failed to update campaign", err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}
