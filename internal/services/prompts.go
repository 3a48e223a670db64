package services

import "fmt"

var languageInstructions = map[string]string{
	"hinglish": "Mix of Hindi and English (Hinglish) that's commonly used by Indian shopkeepers",
	"hindi":    "Pure Hindi in Devanagari script",
	"english":  "Simple English that's easy to understand",
}

var socialLanguageInstructions = map[string]string{
	"hinglish": "Mix of Hindi and English (Hinglish)",
	"hindi":    "Hindi in Devanagari script",
	"english":  "Simple English",
}

func whatsAppMessagePrompt(req *WhatsAppMessageRequest) string {
	prompt := fmt.Sprintf("Generate a WhatsApp marketing message for a %s in %s.\n", req.ShopType, languageInstructions[req.Language])
	if req.Occasion != "" {
		prompt += fmt.Sprintf("This is for %s occasion.\n", req.Occasion)
	}
	if req.CustomPrompt != "" {
		prompt += fmt.Sprintf("Additional context: %s\n", req.CustomPrompt)
	}
	prompt += `
The message should be:
- Friendly and culturally appropriate for Indian customers
- Include relevant emojis
- Be persuasive but not pushy
- Suitable for WhatsApp (conversational tone)
- Under 160 characters if possible

Also provide 2 alternative variations of the message.

Respond in JSON format: {
  "message": "main message",
  "suggestions": ["variation 1", "variation 2"]
}`
	return prompt
}

func bannerContentPrompt(req *BannerRequest) string {
	prompt := fmt.Sprintf("Generate banner content for a %s promotion for a %s.\n", req.Festival, req.ShopType)
	if req.CustomText != "" {
		prompt += fmt.Sprintf("Include this text: %s\n", req.CustomText)
	}
	prompt += `
The banner should be:
- Festive and colorful
- Culturally appropriate for Indian festivals
- Include traditional symbols and elements
- Appeal to local customers

Suggest appropriate colors, title, subtitle, and design elements.

Respond in JSON format: {
  "title": "main title text",
  "subtitle": "subtitle or tagline",
  "colors": ["color1", "color2", "color3"],
  "elements": ["element1", "element2", "element3"]
}`
	return prompt
}

func socialPostPrompt(req *SocialPostRequest) string {
	prompt := fmt.Sprintf("Generate a %s post for a %s in %s.\n", req.Platform, req.ShopType, socialLanguageInstructions[req.Language])
	if req.Occasion != "" {
		prompt += fmt.Sprintf("This is for %s occasion.\n", req.Occasion)
	}
	prompt += fmt.Sprintf(`
The post should be:
- Engaging and shareable
- Include relevant emojis
- Culturally appropriate for Indian audience
- Optimized for %s

Provide caption, relevant hashtags, and alternative captions.

Respond in JSON format: {
  "caption": "main post caption",
  "hashtags": ["hashtag1", "hashtag2", "hashtag3"],
  "suggestions": ["alternative caption 1", "alternative caption 2"]
}`, req.Platform)
	return prompt
}

func businessInsightsPrompt(req *InsightsRequest) string {
	return fmt.Sprintf(`Analyze business data for a %s with %d customers.
Provide actionable business insights and marketing recommendations for an Indian retail context.

Consider:
- Seasonal trends in India
- Local customer behavior
- Festival marketing opportunities
- Digital marketing strategies suitable for small retailers

Respond in JSON format: {
  "insights": ["insight 1", "insight 2", "insight 3"],
  "recommendations": ["recommendation 1", "recommendation 2", "recommendation 3"]
}`, req.ShopType, len(req.CustomerData))
}
