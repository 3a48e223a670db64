package handlers

import (
	"net/http"

	"shop_marketing/internal/models"
	"shop_marketing/internal/services"
	"shop_marketing/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WhatsAppHandler struct {
	store     storage.Storage
	generator services.Generator
	log       *zap.Logger
}

func NewWhatsAppHandler(store storage.Storage, generator services.Generator, log *zap.Logger) *WhatsAppHandler {
	return &WhatsAppHandler{store: store, generator: generator, log: log}
}

// Generate produces message text without persisting anything; the client
// saves the pick through Save.
func (h *WhatsAppHandler) Generate(c *gin.Context) {
	var req services.WhatsAppMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid generation request", err)
		return
	}
	if req.Language == "" {
		req.Language = string(models.LanguageHinglish)
	}

	result, err := h.generator.GenerateWhatsAppMessage(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("whatsapp generation failed", zap.Error(err))
		internalError(c, "Failed to generate WhatsApp message", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *WhatsAppHandler) Save(c *gin.Context) {
	var in models.InsertWhatsappMessage
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid message data", err)
		return
	}

	message, err := h.store.CreateWhatsappMessage(c.Request.Context(), &in)
	if err != nil {
		internalError(c, "Failed to save WhatsApp message", err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *WhatsAppHandler) GetMessagesByShop(c *gin.Context) {
	messages, err := h.store.GetWhatsappMessages(c.Request.Context(), c.Param("shopId"))
	if err != nil {
		internalError(c, "Failed to get WhatsApp messages", err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
