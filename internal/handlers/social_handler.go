package handlers

import (
	"net/http"

	"shop_marketing/internal/models"
	"shop_marketing/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SocialHandler struct {
	generator services.Generator
	log       *zap.Logger
}

func NewSocialHandler(generator services.Generator, log *zap.Logger) *SocialHandler {
	return &SocialHandler{generator: generator, log: log}
}

func (h *SocialHandler) Generate(c *gin.Context) {
	var req services.SocialPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid generation request", err)
		return
	}
	if req.Language == "" {
		req.Language = string(models.LanguageHinglish)
	}

	result, err := h.generator.GenerateSocialMediaPost(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("social post generation failed", zap.Error(err))
		internalError(c, "Failed to generate social media post", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
