package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"shop_marketing/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShop(t *testing.T, s *MemoryStorage) *models.Shop {
	t.Helper()
	shop, err := s.CreateShop(context.Background(), &models.InsertShop{
		Name:      "Test Store",
		Type:      "Kirana Store",
		OwnerName: "Owner",
		Phone:     "+91-9000000000",
		Address:   "Market Road",
	})
	require.NoError(t, err)
	return shop
}

func TestCreateShopAssignsIDAndDefaults(t *testing.T) {
	s := NewMemoryStorage()
	before := time.Now()

	shop := newTestShop(t, s)

	assert.NotEmpty(t, shop.ID)
	assert.Equal(t, "en", shop.Language, "language should default to en")
	assert.False(t, shop.CreatedAt.Before(before), "createdAt should not predate the call")

	other := newTestShop(t, s)
	assert.NotEqual(t, shop.ID, other.ID, "ids must be unique")
}

func TestGetShopNotFound(t *testing.T) {
	s := NewMemoryStorage()

	_, err := s.GetShop(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateShopMergesFields(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	shop := newTestShop(t, s)

	name := "Renamed Store"
	updated, err := s.UpdateShop(ctx, shop.ID, &models.UpdateShop{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Store", updated.Name)
	assert.Equal(t, "Kirana Store", updated.Type, "unset fields keep their values")
	assert.Equal(t, shop.ID, updated.ID)
	assert.Equal(t, shop.CreatedAt, updated.CreatedAt, "update must not touch createdAt")
}

func TestUpdateWithEmptyPatchIsNoOp(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	shop := newTestShop(t, s)

	updated, err := s.UpdateShop(ctx, shop.ID, &models.UpdateShop{})
	require.NoError(t, err)
	assert.Equal(t, *shop, *updated)

	fetched, err := s.GetShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, shop.ID, fetched.ID)
}

func TestUpdateMissingIDReturnsNotFoundForEveryKind(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	_, err := s.UpdateShop(ctx, "missing", &models.UpdateShop{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateCustomer(ctx, "missing", &models.UpdateCustomer{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateCampaign(ctx, "missing", &models.UpdateCampaign{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReturnedRecordsDoNotTrackLaterUpdates(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	shop := newTestShop(t, s)

	fetched, err := s.GetShop(ctx, shop.ID)
	require.NoError(t, err)

	name := "Renamed Store"
	_, err = s.UpdateShop(ctx, shop.ID, &models.UpdateShop{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Test Store", shop.Name, "record from create must stay a snapshot")
	assert.Equal(t, "Test Store", fetched.Name, "record from get must stay a snapshot")

	current, err := s.GetShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Store", current.Name)
}

func TestConcurrentShopReadsAndUpdates(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	shop := newTestShop(t, s)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			got, err := s.GetShop(ctx, shop.ID)
			if err == nil {
				_ = got.Name
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			name := fmt.Sprintf("Store %d", i)
			_, _ = s.UpdateShop(ctx, shop.ID, &models.UpdateShop{Name: &name})
		}
	}()
	wg.Wait()

	got, err := s.GetShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, "Store 499", got.Name)
}

func TestCustomerDefaults(t *testing.T) {
	s := NewMemoryStorage()

	customer, err := s.CreateCustomer(context.Background(), &models.InsertCustomer{
		Name:  "Sunita",
		Phone: "+91-9000000001",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, customer.LoyaltyPoints)
	assert.Nil(t, customer.Email)
	assert.Nil(t, customer.LastPurchase)
}

func TestCampaignDefaults(t *testing.T) {
	s := NewMemoryStorage()

	campaign, err := s.CreateCampaign(context.Background(), &models.InsertCampaign{
		Title: "Sale",
		Type:  string(models.CampaignWhatsApp),
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.CampaignDraft), campaign.Status)
	assert.NotNil(t, campaign.Content)
	assert.Equal(t, 0, campaign.Views)
	assert.Equal(t, 0, campaign.Clicks)
}

func TestWhatsappMessageLanguageDefault(t *testing.T) {
	s := NewMemoryStorage()

	message, err := s.CreateWhatsappMessage(context.Background(), &models.InsertWhatsappMessage{
		Message:  "hello",
		ShopType: "Kirana Store",
	})
	require.NoError(t, err)
	assert.Equal(t, "hinglish", message.Language)
}

func TestListByShopFiltersAndPreservesOrder(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	shopA := newTestShop(t, s)
	shopB := newTestShop(t, s)

	names := []string{"first", "second", "third"}
	for _, name := range names {
		_, err := s.CreateCustomer(ctx, &models.InsertCustomer{
			Name:   name,
			Phone:  "+91-9000000002",
			ShopID: &shopA.ID,
		})
		require.NoError(t, err)
	}
	_, err := s.CreateCustomer(ctx, &models.InsertCustomer{
		Name:   "other shop",
		Phone:  "+91-9000000003",
		ShopID: &shopB.ID,
	})
	require.NoError(t, err)

	customers, err := s.GetCustomers(ctx, shopA.ID)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	for i, customer := range customers {
		assert.Equal(t, names[i], customer.Name)
		assert.Equal(t, shopA.ID, *customer.ShopID)
	}

	empty, err := s.GetCustomers(ctx, "no-such-shop")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetShopByUserID(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	user, err := s.CreateUser(ctx, &models.InsertUser{Username: "owner", Password: "secret"})
	require.NoError(t, err)

	_, err = s.CreateShop(ctx, &models.InsertShop{
		Name:      "Owned Store",
		Type:      "Boutique",
		OwnerName: "Owner",
		Phone:     "+91-9000000004",
		Address:   "Mall Road",
		UserID:    &user.ID,
	})
	require.NoError(t, err)

	shop, err := s.GetShopByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Owned Store", shop.Name)

	_, err = s.GetShopByUserID(ctx, "unknown-user")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, &models.InsertUser{Username: "ramji", Password: "a"})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, &models.InsertUser{Username: "ramji", Password: "b"})
	assert.Error(t, err)
}

func TestGetShopStats(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	shop := newTestShop(t, s)

	for i := 0; i < 2; i++ {
		_, err := s.CreateCustomer(ctx, &models.InsertCustomer{
			Name:   "c",
			Phone:  "+91-9000000005",
			ShopID: &shop.ID,
		})
		require.NoError(t, err)
	}

	stats, err := s.GetShopStats(ctx, shop.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalCustomers)
	// Revenue and orders are demo placeholders; only their ranges are stable.
	assert.GreaterOrEqual(t, stats.TodayRevenue, 5000)
	assert.Less(t, stats.TodayRevenue, 15000)
	assert.GreaterOrEqual(t, stats.TodayOrders, 10)
	assert.Less(t, stats.TodayOrders, 60)
}

func TestSeedPopulatesDemoData(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, s))

	user, err := s.GetUserByUsername(ctx, "ramji")
	require.NoError(t, err)

	shop, err := s.GetShopByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kirana Store", shop.Type)

	customers, err := s.GetCustomers(ctx, shop.ID)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	campaigns, err := s.GetCampaigns(ctx, shop.ID)
	require.NoError(t, err)
	assert.Len(t, campaigns, 2)
}
