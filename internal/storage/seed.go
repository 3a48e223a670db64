package storage

import (
	"context"
	"fmt"
	"time"

	"shop_marketing/internal/models"
)

// Seed inserts the demo dataset (one user, one shop, two customers, two
// campaigns) so a fresh install has something to show. It runs once at
// startup; there is no re-seed or reset.
func Seed(ctx context.Context, s Storage) error {
	if _, err := s.GetUserByUsername(ctx, "ramji"); err == nil {
		// Already seeded (database driver across restarts).
		return nil
	}

	user, err := s.CreateUser(ctx, &models.InsertUser{
		Username: "ramji",
		Password: "password123",
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	shop, err := s.CreateShop(ctx, &models.InsertShop{
		Name:      "राम जी स्टोर",
		Type:      "Kirana Store",
		OwnerName: "Ram Singh",
		Phone:     "+91-9876543210",
		Address:   "Main Market, Delhi",
		Language:  "hi",
		UserID:    &user.ID,
	})
	if err != nil {
		return fmt.Errorf("seed shop: %w", err)
	}

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	customers := []models.InsertCustomer{
		{
			Name:          "Sunita Sharma",
			Phone:         "+91-9876543211",
			Email:         strPtr("sunita@email.com"),
			LoyaltyPoints: intPtr(150),
			LastPurchase:  &now,
			ShopID:        &shop.ID,
		},
		{
			Name:          "Rajesh Kumar",
			Phone:         "+91-9876543212",
			Email:         strPtr("rajesh@email.com"),
			LoyaltyPoints: intPtr(89),
			LastPurchase:  &yesterday,
			ShopID:        &shop.ID,
		},
	}
	for i := range customers {
		if _, err := s.CreateCustomer(ctx, &customers[i]); err != nil {
			return fmt.Errorf("seed customer: %w", err)
		}
	}

	campaigns := []models.InsertCampaign{
		{
			Title:       "Diwali Sweets Promotion",
			Description: strPtr("WhatsApp + Instagram campaign"),
			Type:        string(models.CampaignWhatsApp),
			Content: models.JSONMap{
				"message": "🪔 Diwali ki shubhkamnayen! Special discount on sweets and dry fruits. Visit our store today!",
			},
			Status: string(models.CampaignActive),
			Views:  intPtr(1234),
			Clicks: intPtr(89),
			ShopID: &shop.ID,
		},
		{
			Title:       "Weekend Sale Banner",
			Description: strPtr("Auto-generated social media posts"),
			Type:        string(models.CampaignBanner),
			Content:     models.JSONMap{"template": "weekend-sale"},
			Status:      string(models.CampaignDraft),
			ScheduledAt: &tomorrow,
			ShopID:      &shop.ID,
		},
	}
	for i := range campaigns {
		if _, err := s.CreateCampaign(ctx, &campaigns[i]); err != nil {
			return fmt.Errorf("seed campaign: %w", err)
		}
	}

	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
