package storage

import (
	"context"
	"errors"

	"shop_marketing/internal/models"
)

// ErrNotFound is returned by every Get/Update when the id does not exist.
// Callers map it to a 404; it is never wrapped with entity details.
var ErrNotFound = errors.New("record not found")

// ShopStats are the dashboard headline numbers. Revenue and orders are demo
// placeholders until real transactions exist; only TotalCustomers is derived
// from stored data.
type ShopStats struct {
	TodayRevenue   int `json:"todayRevenue"`
	TodayOrders    int `json:"todayOrders"`
	TotalCustomers int `json:"totalCustomers"`
}

// Storage is the single source of truth for all persisted entities. List
// operations filter by owning shop and preserve insertion order; they return
// an empty slice, never an error, when nothing matches.
type Storage interface {
	// User operations
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, in *models.InsertUser) (*models.User, error)

	// Shop operations
	GetShop(ctx context.Context, id string) (*models.Shop, error)
	GetShopByUserID(ctx context.Context, userID string) (*models.Shop, error)
	CreateShop(ctx context.Context, in *models.InsertShop) (*models.Shop, error)
	UpdateShop(ctx context.Context, id string, patch *models.UpdateShop) (*models.Shop, error)

	// Customer operations
	GetCustomers(ctx context.Context, shopID string) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, in *models.InsertCustomer) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch *models.UpdateCustomer) (*models.Customer, error)

	// Campaign operations
	GetCampaigns(ctx context.Context, shopID string) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*models.Campaign, error)
	CreateCampaign(ctx context.Context, in *models.InsertCampaign) (*models.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, patch *models.UpdateCampaign) (*models.Campaign, error)

	// WhatsApp message operations
	GetWhatsappMessages(ctx context.Context, shopID string) ([]models.WhatsappMessage, error)
	CreateWhatsappMessage(ctx context.Context, in *models.InsertWhatsappMessage) (*models.WhatsappMessage, error)

	// Banner operations
	GetBanners(ctx context.Context, shopID string) ([]models.Banner, error)
	CreateBanner(ctx context.Context, in *models.InsertBanner) (*models.Banner, error)

	// Analytics
	GetShopStats(ctx context.Context, shopID string) (*ShopStats, error)
}
