package storage

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"shop_marketing/internal/models"

	"github.com/google/uuid"
)

// MemoryStorage keeps every collection in a map keyed by id, with a parallel
// id slice preserving insertion order. It is the default driver; state lives
// for the process lifetime only.
//
// Every accessor returns a copy of the stored record. Handlers run on
// separate goroutines, so a record must never escape the mutex while a
// concurrent update can still mutate it in place.
type MemoryStorage struct {
	mu sync.RWMutex

	users     map[string]*models.User
	shops     map[string]*models.Shop
	customers map[string]*models.Customer
	campaigns map[string]*models.Campaign
	messages  map[string]*models.WhatsappMessage
	banners   map[string]*models.Banner

	userOrder     []string
	shopOrder     []string
	customerOrder []string
	campaignOrder []string
	messageOrder  []string
	bannerOrder   []string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:     make(map[string]*models.User),
		shops:     make(map[string]*models.Shop),
		customers: make(map[string]*models.Customer),
		campaigns: make(map[string]*models.Campaign),
		messages:  make(map[string]*models.WhatsappMessage),
		banners:   make(map[string]*models.Banner),
	}
}

func (s *MemoryStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *user
	return &out, nil
}

func (s *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if s.users[id].Username == username {
			out := *s.users[id]
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CreateUser(ctx context.Context, in *models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.userOrder {
		if s.users[id].Username == in.Username {
			return nil, fmt.Errorf("username %q already exists", in.Username)
		}
	}

	user := in.Model()
	user.ID = uuid.NewString()
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	out := *user
	return &out, nil
}

func (s *MemoryStorage) GetShop(ctx context.Context, id string) (*models.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shop, ok := s.shops[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *shop
	return &out, nil
}

func (s *MemoryStorage) GetShopByUserID(ctx context.Context, userID string) (*models.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.shopOrder {
		shop := s.shops[id]
		if shop.UserID != nil && *shop.UserID == userID {
			out := *shop
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CreateShop(ctx context.Context, in *models.InsertShop) (*models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop := in.Model()
	shop.ID = uuid.NewString()
	shop.CreatedAt = time.Now()
	s.shops[shop.ID] = shop
	s.shopOrder = append(s.shopOrder, shop.ID)
	out := *shop
	return &out, nil
}

func (s *MemoryStorage) UpdateShop(ctx context.Context, id string, patch *models.UpdateShop) (*models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.shops[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(shop)
	out := *shop
	return &out, nil
}

func (s *MemoryStorage) GetCustomers(ctx context.Context, shopID string) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := []models.Customer{}
	for _, id := range s.customerOrder {
		customer := s.customers[id]
		if customer.ShopID != nil && *customer.ShopID == shopID {
			customers = append(customers, *customer)
		}
	}
	return customers, nil
}

func (s *MemoryStorage) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *customer
	return &out, nil
}

func (s *MemoryStorage) CreateCustomer(ctx context.Context, in *models.InsertCustomer) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := in.Model()
	customer.ID = uuid.NewString()
	customer.CreatedAt = time.Now()
	s.customers[customer.ID] = customer
	s.customerOrder = append(s.customerOrder, customer.ID)
	out := *customer
	return &out, nil
}

func (s *MemoryStorage) UpdateCustomer(ctx context.Context, id string, patch *models.UpdateCustomer) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(customer)
	out := *customer
	return &out, nil
}

func (s *MemoryStorage) GetCampaigns(ctx context.Context, shopID string) ([]models.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	campaigns := []models.Campaign{}
	for _, id := range s.campaignOrder {
		campaign := s.campaigns[id]
		if campaign.ShopID != nil && *campaign.ShopID == shopID {
			campaigns = append(campaigns, *campaign)
		}
	}
	return campaigns, nil
}

func (s *MemoryStorage) GetCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	campaign, ok := s.campaigns[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *campaign
	return &out, nil
}

func (s *MemoryStorage) CreateCampaign(ctx context.Context, in *models.InsertCampaign) (*models.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign := in.Model()
	campaign.ID = uuid.NewString()
	campaign.CreatedAt = time.Now()
	s.campaigns[campaign.ID] = campaign
	s.campaignOrder = append(s.campaignOrder, campaign.ID)
	out := *campaign
	return &out, nil
}

func (s *MemoryStorage) UpdateCampaign(ctx context.Context, id string, patch *models.UpdateCampaign) (*models.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign, ok := s.campaigns[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(campaign)
	out := *campaign
	return &out, nil
}

func (s *MemoryStorage) GetWhatsappMessages(ctx context.Context, shopID string) ([]models.WhatsappMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := []models.WhatsappMessage{}
	for _, id := range s.messageOrder {
		message := s.messages[id]
		if message.ShopID != nil && *message.ShopID == shopID {
			messages = append(messages, *message)
		}
	}
	return messages, nil
}

func (s *MemoryStorage) CreateWhatsappMessage(ctx context.Context, in *models.InsertWhatsappMessage) (*models.WhatsappMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := in.Model()
	message.ID = uuid.NewString()
	message.CreatedAt = time.Now()
	s.messages[message.ID] = message
	s.messageOrder = append(s.messageOrder, message.ID)
	out := *message
	return &out, nil
}

func (s *MemoryStorage) GetBanners(ctx context.Context, shopID string) ([]models.Banner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	banners := []models.Banner{}
	for _, id := range s.bannerOrder {
		banner := s.banners[id]
		if banner.ShopID != nil && *banner.ShopID == shopID {
			banners = append(banners, *banner)
		}
	}
	return banners, nil
}

func (s *MemoryStorage) CreateBanner(ctx context.Context, in *models.InsertBanner) (*models.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	banner := in.Model()
	banner.ID = uuid.NewString()
	banner.CreatedAt = time.Now()
	s.banners[banner.ID] = banner
	s.bannerOrder = append(s.bannerOrder, banner.ID)
	out := *banner
	return &out, nil
}

// GetShopStats returns demo placeholder values for revenue and orders; only
// the customer count comes from stored data.
func (s *MemoryStorage) GetShopStats(ctx context.Context, shopID string) (*ShopStats, error) {
	customers, err := s.GetCustomers(ctx, shopID)
	if err != nil {
		return nil, err
	}

	return &ShopStats{
		TodayRevenue:   rand.Intn(10000) + 5000,
		TodayOrders:    rand.Intn(50) + 10,
		TotalCustomers: len(customers),
	}, nil
}
