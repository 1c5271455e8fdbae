package configs

import (
	"log"

	"github.com/Shivam1-ai/chai-order-ai/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOps creates the ops account used by restaurant/courier tooling to push
// tracking events. Skipped when the env vars are absent.
func SeedOps(db *gorm.DB) error {
	email := getEnv("OPS_EMAIL", "")
	pass := getEnv("OPS_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding ops user: missing OPS_EMAIL/OPS_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	ops := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Ops",
		LastName:  "Seed",
		Role:      "ops",
	}
	return db.Create(&ops).Error
}

// SeedCatalog loads the starter restaurant catalog. Idempotent: restaurants
// are keyed by name, menu items by restaurant+name.
func SeedCatalog(db *gorm.DB) error {
	type menuSeed struct {
		Name     string
		Detail   string
		Price    int64
		Category string
		IsVeg    bool
	}
	type restSeed struct {
		entity.Restaurant
		Menu []menuSeed
	}

	seeds := []restSeed{
		{
			Restaurant: entity.Restaurant{
				Name: "Spice Palace", Cuisine: "North Indian, Mughlai",
				Rating: 4.5, DeliveryTime: "25-30 min", Distance: "2.1 km", Offer: "20% OFF",
			},
			Menu: []menuSeed{
				{Name: "Butter Chicken", Detail: "Creamy tomato gravy", Price: 320, Category: "Main Course"},
				{Name: "Paneer Tikka", Detail: "Tandoor grilled cottage cheese", Price: 260, Category: "Starters", IsVeg: true},
				{Name: "Garlic Naan", Detail: "Clay oven flatbread", Price: 60, Category: "Breads", IsVeg: true},
			},
		},
		{
			Restaurant: entity.Restaurant{
				Name: "Dosa Corner", Cuisine: "South Indian, Street Food",
				Rating: 4.7, DeliveryTime: "20-25 min", Distance: "1.8 km", Offer: "Buy 1 Get 1",
			},
			Menu: []menuSeed{
				{Name: "Masala Dosa", Detail: "Crisp dosa with potato filling", Price: 120, Category: "Dosa", IsVeg: true},
				{Name: "Idli Sambar", Detail: "Steamed rice cakes, two pieces", Price: 80, Category: "Breakfast", IsVeg: true},
				{Name: "Filter Coffee", Detail: "Strong south-style brew", Price: 40, Category: "Beverages", IsVeg: true},
			},
		},
		{
			Restaurant: entity.Restaurant{
				Name: "Traditional Thali", Cuisine: "Traditional, Vegetarian",
				Rating: 4.6, DeliveryTime: "30-35 min", Distance: "3.2 km",
			},
			Menu: []menuSeed{
				{Name: "Gujarati Thali", Detail: "Unlimited servings", Price: 250, Category: "Thali", IsVeg: true},
				{Name: "Dal Baati Churma", Detail: "Rajasthani classic", Price: 220, Category: "Thali", IsVeg: true},
			},
		},
		{
			Restaurant: entity.Restaurant{
				Name: "Pizza Corner", Cuisine: "Italian, Pizza",
				Rating: 4.3, DeliveryTime: "35-40 min", Distance: "4.1 km", Offer: "30% OFF",
			},
			Menu: []menuSeed{
				{Name: "Margherita", Detail: "Classic cheese and basil", Price: 280, Category: "Pizza", IsVeg: true},
				{Name: "Chicken Supreme", Detail: "Loaded with grilled chicken", Price: 380, Category: "Pizza"},
			},
		},
		{
			Restaurant: entity.Restaurant{
				Name: "Biryani House", Cuisine: "Hyderabadi, Biryani",
				Rating: 4.8, DeliveryTime: "40-45 min", Distance: "5.2 km",
			},
			Menu: []menuSeed{
				{Name: "Hyderabadi Chicken Biryani", Detail: "Dum cooked, serves one", Price: 300, Category: "Biryani"},
				{Name: "Veg Biryani", Detail: "Seasonal vegetables", Price: 240, Category: "Biryani", IsVeg: true},
				{Name: "Mirchi Ka Salan", Detail: "Side of chilli curry", Price: 90, Category: "Sides", IsVeg: true},
			},
		},
	}

	for _, s := range seeds {
		rest := s.Restaurant
		if err := db.Where("name = ?", rest.Name).FirstOrCreate(&rest).Error; err != nil {
			return err
		}
		for _, m := range s.Menu {
			item := entity.MenuItem{
				Name: m.Name, Detail: m.Detail, Price: m.Price,
				Category: m.Category, IsVeg: m.IsVeg, RestaurantID: rest.ID,
			}
			if err := db.Where("name = ? AND restaurant_id = ?", m.Name, rest.ID).
				FirstOrCreate(&item).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
