package repository

import (
	"strings"

	"github.com/Shivam1-ai/chai-order-ai/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// List runs the catalog query: free-text match on name/cuisine, optional
// cuisine filter, sort by rating/name or insertion order ("relevance").
func (r *RestaurantRepository) List(query, cuisine, sort string) ([]entity.Restaurant, error) {
	db := r.DB.Model(&entity.Restaurant{})

	if q := strings.TrimSpace(query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(cuisine) LIKE ?", like, like)
	}
	if c := strings.TrimSpace(cuisine); c != "" {
		db = db.Where("LOWER(cuisine) LIKE ?", "%"+strings.ToLower(c)+"%")
	}

	switch sort {
	case "rating":
		db = db.Order("rating DESC")
	case "name":
		db = db.Order("name ASC")
	default: // relevance
		db = db.Order("id ASC")
	}

	var out []entity.Restaurant
	err := db.Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) GetWithMenu(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("category ASC, id ASC")
	}).First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// GetMenuItem loads one menu item with its restaurant, used for cart snapshots.
func (r *RestaurantRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Restaurant").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
