package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/Shivam1-ai/chai-order-ai/configs"
	"github.com/Shivam1-ai/chai-order-ai/entity"
	"github.com/Shivam1-ai/chai-order-ai/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh named in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

type fixture struct {
	db *gorm.DB

	spicePalace entity.Restaurant
	dosaCorner  entity.Restaurant

	paneerTikka entity.MenuItem // Spice Palace, 100
	garlicNaan  entity.MenuItem // Spice Palace, 50
	masalaDosa  entity.MenuItem // Dosa Corner, 50

	customer entity.User
}

// newFixture seeds two restaurants with fixed prices and one customer.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{db: db}

	f.spicePalace = entity.Restaurant{Name: "Spice Palace", Cuisine: "North Indian", Rating: 4.5}
	require.NoError(t, db.Create(&f.spicePalace).Error)
	f.dosaCorner = entity.Restaurant{Name: "Dosa Corner", Cuisine: "South Indian", Rating: 4.7}
	require.NoError(t, db.Create(&f.dosaCorner).Error)

	f.paneerTikka = entity.MenuItem{Name: "Paneer Tikka", Price: 100, RestaurantID: f.spicePalace.ID}
	require.NoError(t, db.Create(&f.paneerTikka).Error)
	f.garlicNaan = entity.MenuItem{Name: "Garlic Naan", Price: 50, RestaurantID: f.spicePalace.ID}
	require.NoError(t, db.Create(&f.garlicNaan).Error)
	f.masalaDosa = entity.MenuItem{Name: "Masala Dosa", Price: 50, RestaurantID: f.dosaCorner.ID}
	require.NoError(t, db.Create(&f.masalaDosa).Error)

	f.customer = entity.User{Email: "diner@example.com", Password: "x", FirstName: "Dina", Role: "customer"}
	require.NoError(t, db.Create(&f.customer).Error)
	return f
}

func (f *fixture) cartService() *CartService {
	return NewCartService(f.db,
		repository.NewCartRepository(f.db),
		repository.NewRestaurantRepository(f.db))
}

func (f *fixture) orderService() *OrderService {
	return NewOrderService(f.db,
		repository.NewOrderRepository(f.db),
		repository.NewCartRepository(f.db),
		repository.NewTrackingRepository(f.db),
		zap.NewNop().Sugar(),
		25, 30)
}

func validAddress() DeliveryAddressIn {
	return DeliveryAddressIn{
		Street: "12 MG Road", Area: "Indiranagar", City: "Bengaluru", Pincode: "560038",
	}
}
