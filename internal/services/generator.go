package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// Completer is the external text-completion capability. Implemented by
// pkg/openai; stubbed in tests.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type WhatsAppMessageRequest struct {
	ShopType     string `json:"shopType" binding:"required"`
	Occasion     string `json:"occasion"`
	Language     string `json:"language" binding:"omitempty,oneof=hinglish hindi english"`
	CustomPrompt string `json:"customPrompt"`
}

type WhatsAppMessageResult struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

type BannerRequest struct {
	Festival   string `json:"festival" binding:"required"`
	ShopType   string `json:"shopType" binding:"required"`
	CustomText string `json:"customText"`
}

type BannerResult struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Colors   []string `json:"colors"`
	Elements []string `json:"elements"`
}

type SocialPostRequest struct {
	Platform string `json:"platform" binding:"required,oneof=facebook instagram"`
	ShopType string `json:"shopType" binding:"required"`
	Occasion string `json:"occasion"`
	Language string `json:"language" binding:"omitempty,oneof=hinglish hindi english"`
}

type SocialPostResult struct {
	Caption     string   `json:"caption"`
	Hashtags    []string `json:"hashtags"`
	Suggestions []string `json:"suggestions"`
}

type InsightsRequest struct {
	ShopType     string                   `json:"shopType" binding:"required"`
	CustomerData []map[string]interface{} `json:"customerData"`
}

type InsightsResult struct {
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// Generator produces marketing content by delegating to the external
// completion service. Each call invokes the service exactly once; missing or
// unparsable fields in the reply are repaired with fixed fallback values and
// never surface as errors. Only a failed invocation propagates.
type Generator interface {
	GenerateWhatsAppMessage(ctx context.Context, req *WhatsAppMessageRequest) (*WhatsAppMessageResult, error)
	GenerateBannerContent(ctx context.Context, req *BannerRequest) (*BannerResult, error)
	GenerateSocialMediaPost(ctx context.Context, req *SocialPostRequest) (*SocialPostResult, error)
	GenerateBusinessInsights(ctx context.Context, req *InsightsRequest) (*InsightsResult, error)
}

type generator struct {
	completer Completer
	timeout   time.Duration
	log       *zap.Logger
}

func NewGenerator(completer Completer, timeout time.Duration, log *zap.Logger) Generator {
	return &generator{completer: completer, timeout: timeout, log: log}
}

// complete runs one bounded completion call and parses the JSON reply into
// out. A reply that fails to parse leaves out at its zero value so the
// caller's fallback table fills every field.
func (g *generator) complete(ctx context.Context, prompt string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(content), out); err != nil {
		g.log.Warn("unparsable generation response, using fallbacks", zap.Error(err))
	}
	return nil
}

func (g *generator) GenerateWhatsAppMessage(ctx context.Context, req *WhatsAppMessageRequest) (*WhatsAppMessageResult, error) {
	var result WhatsAppMessageResult
	if err := g.complete(ctx, whatsAppMessagePrompt(req), &result); err != nil {
		return nil, err
	}

	if result.Message == "" {
		result.Message = "नमस्ते! आज ही हमारे स्टोर में आइए और खास छूट पाइए! 🛍️"
	}
	if len(result.Suggestions) == 0 {
		result.Suggestions = []string{"Special offers available today!", "Visit us for great deals! 🎉"}
	}
	return &result, nil
}

func (g *generator) GenerateBannerContent(ctx context.Context, req *BannerRequest) (*BannerResult, error) {
	var result BannerResult
	if err := g.complete(ctx, bannerContentPrompt(req), &result); err != nil {
		return nil, err
	}

	if result.Title == "" {
		result.Title = "Festival Special!"
	}
	if result.Subtitle == "" {
		result.Subtitle = "Great offers inside"
	}
	if len(result.Colors) == 0 {
		result.Colors = []string{"#FF9933", "#138808", "#FFD700"}
	}
	if len(result.Elements) == 0 {
		result.Elements = []string{"Decorative border", "Festival symbols", "Discount text"}
	}
	return &result, nil
}

func (g *generator) GenerateSocialMediaPost(ctx context.Context, req *SocialPostRequest) (*SocialPostResult, error) {
	var result SocialPostResult
	if err := g.complete(ctx, socialPostPrompt(req), &result); err != nil {
		return nil, err
	}

	if result.Caption == "" {
		result.Caption = "Visit our store for amazing deals! 🛍️"
	}
	if len(result.Hashtags) == 0 {
		result.Hashtags = []string{"#LocalStore", "#Shopping", "#Deals"}
	}
	if len(result.Suggestions) == 0 {
		result.Suggestions = []string{"Great offers available!", "Come and explore our collection! ✨"}
	}
	return &result, nil
}

func (g *generator) GenerateBusinessInsights(ctx context.Context, req *InsightsRequest) (*InsightsResult, error) {
	var result InsightsResult
	if err := g.complete(ctx, businessInsightsPrompt(req), &result); err != nil {
		return nil, err
	}

	if len(result.Insights) == 0 {
		result.Insights = []string{"Customer engagement is important", "Festival seasons drive sales", "Digital presence helps growth"}
	}
	if len(result.Recommendations) == 0 {
		result.Recommendations = []string{"Create festival promotions", "Use WhatsApp for customer communication", "Implement loyalty programs"}
	}
	return &result, nil
}
