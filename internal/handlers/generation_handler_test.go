package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"shop_marketing/internal/models"
	"shop_marketing/internal/services"
	"shop_marketing/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin"
)

func TestWhatsAppGenerateReturnsResult(t *testing.T) {
	stub := &stubCompleter{content: `{"message":"Visit today!","suggestions":["a","b"]}`}
	router := newTestServer(t, storage.NewMemoryStorage(), stub)

	w := doJSON(t, router, http.MethodPost, "/api/whatsapp/generate", gin.H{
		"shopType": "Kirana Store",
		"occasion": "diwali",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result services.WhatsAppMessageResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Visit today!", result.Message)
	assert.Equal(t, []string{"a", "b"}, result.Suggestions)
}

func TestWhatsAppGenerateFallsBackOnEmptyServiceResponse(t *testing.T) {
	router := newTestServer(t, storage.NewMemoryStorage(), &stubCompleter{content: ""})

	w := doJSON(t, router, http.MethodPost, "/api/whatsapp/generate", gin.H{
		"shopType": "Kirana Store",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result services.WhatsAppMessageResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "नमस्ते! आज ही हमारे स्टोर में आइए और खास छूट पाइए! 🛍️", result.Message)
	assert.Len(t, result.Suggestions, 2)
}

func TestWhatsAppGenerateRejectsUnknownLanguage(t *testing.T) {
	router := newTestServer(t, storage.NewMemoryStorage(), &stubCompleter{})

	w := doJSON(t, router, http.MethodPost, "/api/whatsapp/generate", gin.H{
		"shopType": "Kirana Store",
		"language": "french",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWhatsAppGenerateReturns500OnServiceFailure(t *testing.T) {
	router := newTestServer(t, storage.NewMemoryStorage(), &stubCompleter{err: errors.New("network down")})

	w := doJSON(t, router, http.MethodPost, "/api/whatsapp/generate", gin.H{
		"shopType": "Kirana Store",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to generate WhatsApp message", body["message"])
}

func TestWhatsAppSaveThenListByShop(t *testing.T) {
	store := storage.NewMemoryStorage()
	router := newTestServer(t, store, &stubCompleter{})

	shop, err := store.CreateShop(context.Background(), &models.InsertShop{
		Name:      "S",
		Type:      "Kirana Store",
		OwnerName: "O",
		Phone:     "+91-9666666666",
		Address:   "A",
	})
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/whatsapp/save", gin.H{
		"message":  "Diwali offers!",
		"shopType": "Kirana Store",
		"shopId":   shop.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var saved models.WhatsappMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, "hinglish", saved.Language)

	w = doJSON(t, router, http.MethodGet, "/api/whatsapp/shop/"+shop.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []models.WhatsappMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Diwali offers!", messages[0].Message)
}

func TestBannerGenerateFallsBack(t *testing.T) {
	router := newTestServer(t, storage.NewMemoryStorage(), &stubCompleter{content: ""})

	w := doJSON(t, router, http.MethodPost, "/api/banners/generate", gin.H{
		"festival": "diwali",
		"shopType": "Kirana Store",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result services.BannerResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Festival Special!", result.Title)
	assert.Equal(t, "Great offers inside", result.Subtitle)
	assert.Equal(t, []string{"#FF9933", "#138808", "#FFD700"}, result.Colors)
}

func TestBannerGenerateRequiresFestival(t *testing.T) {
	router := newTestServer(t, storage.NewMemoryStorage(), &stubCompleter{})

	w := doJSON(t, router, http.MethodPost, "/api/banners/generate", gin.H{
		"shopType": "Kirana Store",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBannerSaveReturns201(t *testing.T) {
	router := newTestServer(t, storage.NewMemoryStorage(), &stubCompleter{})

	w := doJSON(t, router, http.MethodPost, "/api/banners/save", gin.H{
		"title":    "Festival Special!",
		"template": "festive-orange",
		"festival": "diwali",
		"colors":   gin.H{"primary": "#FF9933"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var banner models.Banner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banner))
	assert.NotEmpty(t, banner.ID)
	assert.Equal(t, "#FF9933", banner.Colors["primary"])
}

func TestSocialGenerateValidatesPlatform(t *testing.T) {
	router := newTestServer(t, storage.NewMemoryStorage(), &stubCompleter{content: `{}`})

	w := doJSON(t, router, http.MethodPost, "/api/social/generate", gin.H{
		"platform": "tiktok",
		"shopType": "Boutique",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/social/generate", gin.H{
		"platform": "instagram",
		"shopType": "Boutique",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result services.SocialPostResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Caption)
	assert.NotEmpty(t, result.Hashtags)
}

func TestAnalyticsStatsShape(t *testing.T) {
	store := storage.NewMemoryStorage()
	router := newTestServer(t, store, &stubCompleter{})

	shop, err := store.CreateShop(context.Background(), &models.InsertShop{
		Name:      "S",
		Type:      "Kirana Store",
		OwnerName: "O",
		Phone:     "+91-9777777777",
		Address:   "A",
	})
	require.NoError(t, err)
	_, err = store.CreateCustomer(context.Background(), &models.InsertCustomer{
		Name: "c", Phone: "1", ShopID: &shop.ID,
	})
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/api/analytics/stats/"+shop.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats storage.ShopStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Greater(t, stats.TodayRevenue, 0)
	assert.Greater(t, stats.TodayOrders, 0)
}

func TestAnalyticsInsights(t *testing.T) {
	stub := &stubCompleter{content: `{"insights":["i"],"recommendations":["r"]}`}
	router := newTestServer(t, storage.NewMemoryStorage(), stub)

	w := doJSON(t, router, http.MethodPost, "/api/analytics/insights", gin.H{
		"shopType":     "Kirana Store",
		"customerData": []gin.H{{"name": "a"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result services.InsightsResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, []string{"i"}, result.Insights)
	assert.Equal(t, []string{"r"}, result.Recommendations)
}
