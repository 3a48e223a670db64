package storage

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"shop_marketing/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStorage implements Storage over a gorm connection (sqlite or postgres).
// Same contract as MemoryStorage. List ordering comes from a seq column
// assigned at create time; created_at alone cannot break ties because both
// drivers truncate it below nanosecond precision.
type GormStorage struct {
	db  *gorm.DB
	seq atomic.Int64
}

// NewGormStorage resumes the sequence counter from the highest value already
// persisted, so rows created after a restart still sort behind older ones.
func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	s := &GormStorage{db: db}

	max := int64(0)
	for _, model := range []interface{}{
		&models.Customer{}, &models.Campaign{}, &models.WhatsappMessage{}, &models.Banner{},
	} {
		var highest int64
		if err := db.Model(model).Select("COALESCE(MAX(seq), 0)").Scan(&highest).Error; err != nil {
			return nil, fmt.Errorf("resume sequence counter: %w", err)
		}
		if highest > max {
			max = highest
		}
	}
	s.seq.Store(max)
	return s, nil
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStorage) CreateUser(ctx context.Context, in *models.InsertUser) (*models.User, error) {
	user := in.Model()
	user.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *GormStorage) GetShop(ctx context.Context, id string) (*models.Shop, error) {
	var shop models.Shop
	if err := s.db.WithContext(ctx).First(&shop, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &shop, nil
}

func (s *GormStorage) GetShopByUserID(ctx context.Context, userID string) (*models.Shop, error) {
	var shop models.Shop
	if err := s.db.WithContext(ctx).First(&shop, "user_id = ?", userID).Error; err != nil {
		return nil, translateErr(err)
	}
	return &shop, nil
}

func (s *GormStorage) CreateShop(ctx context.Context, in *models.InsertShop) (*models.Shop, error) {
	shop := in.Model()
	shop.ID = uuid.NewString()
	shop.CreatedAt = time.Now()
	if err := s.db.WithContext(ctx).Create(shop).Error; err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *GormStorage) UpdateShop(ctx context.Context, id string, patch *models.UpdateShop) (*models.Shop, error) {
	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(shop)
	if err := s.db.WithContext(ctx).Save(shop).Error; err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *GormStorage) GetCustomers(ctx context.Context, shopID string) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := s.db.WithContext(ctx).Where("shop_id = ?", shopID).Order("seq").Find(&customers).Error
	return customers, err
}

func (s *GormStorage) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &customer, nil
}

func (s *GormStorage) CreateCustomer(ctx context.Context, in *models.InsertCustomer) (*models.Customer, error) {
	customer := in.Model()
	customer.ID = uuid.NewString()
	customer.CreatedAt = time.Now()
	customer.Seq = s.seq.Add(1)
	if err := s.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *GormStorage) UpdateCustomer(ctx context.Context, id string, patch *models.UpdateCustomer) (*models.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(customer)
	if err := s.db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *GormStorage) GetCampaigns(ctx context.Context, shopID string) ([]models.Campaign, error) {
	campaigns := []models.Campaign{}
	err := s.db.WithContext(ctx).Where("shop_id = ?", shopID).Order("seq").Find(&campaigns).Error
	return campaigns, err
}

func (s *GormStorage) GetCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &campaign, nil
}

func (s *GormStorage) CreateCampaign(ctx context.Context, in *models.InsertCampaign) (*models.Campaign, error) {
	campaign := in.Model()
	campaign.ID = uuid.NewString()
	campaign.CreatedAt = time.Now()
	campaign.Seq = s.seq.Add(1)
	if err := s.db.WithContext(ctx).Create(campaign).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *GormStorage) UpdateCampaign(ctx context.Context, id string, patch *models.UpdateCampaign) (*models.Campaign, error) {
	campaign, err := s.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(campaign)
	if err := s.db.WithContext(ctx).Save(campaign).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *GormStorage) GetWhatsappMessages(ctx context.Context, shopID string) ([]models.WhatsappMessage, error) {
	messages := []models.WhatsappMessage{}
	err := s.db.WithContext(ctx).Where("shop_id = ?", shopID).Order("seq").Find(&messages).Error
	return messages, err
}

func (s *GormStorage) CreateWhatsappMessage(ctx context.Context, in *models.InsertWhatsappMessage) (*models.WhatsappMessage, error) {
	message := in.Model()
	message.ID = uuid.NewString()
	message.CreatedAt = time.Now()
	message.Seq = s.seq.Add(1)
	if err := s.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

func (s *GormStorage) GetBanners(ctx context.Context, shopID string) ([]models.Banner, error) {
	banners := []models.Banner{}
	err := s.db.WithContext(ctx).Where("shop_id = ?", shopID).Order("seq").Find(&banners).Error
	return banners, err
}

func (s *GormStorage) CreateBanner(ctx context.Context, in *models.InsertBanner) (*models.Banner, error) {
	banner := in.Model()
	banner.ID = uuid.NewString()
	banner.CreatedAt = time.Now()
	banner.Seq = s.seq.Add(1)
	if err := s.db.WithContext(ctx).Create(banner).Error; err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *GormStorage) GetShopStats(ctx context.Context, shopID string) (*ShopStats, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Customer{}).Where("shop_id = ?", shopID).Count(&count).Error; err != nil {
		return nil, err
	}

	return &ShopStats{
		TodayRevenue:   rand.Intn(10000) + 5000,
		TodayOrders:    rand.Intn(50) + 10,
		TotalCustomers: int(count),
	}, nil
}
