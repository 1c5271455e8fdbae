package services

import (
	"github.com/Shivam1-ai/chai-order-ai/entity"
	"github.com/Shivam1-ai/chai-order-ai/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, rr *repository.RestaurantRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, RestRepo: rr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

type CartView struct {
	Cart       *entity.Cart `json:"cart"`
	Subtotal   int64        `json:"subtotal"`
	TotalItems int          `json:"totalItems"`
}

func (s *CartService) Get(userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	var subtotal int64
	var count int
	for _, it := range c.Items {
		subtotal += it.Total
		count += it.Qty
	}
	return &CartView{Cart: c, Subtotal: subtotal, TotalItems: count}, nil
}

// Add puts one unit of the menu item into the cart; an existing line for the
// same item just gains quantity. The line snapshots name, price and restaurant.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	m, err := s.RestRepo.GetMenuItem(in.MenuItemID)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		MenuItemID:     m.ID,
		ItemName:       m.Name,
		UnitPrice:      m.Price,
		Qty:            1,
		Total:          m.Price,
		RestaurantID:   m.RestaurantID,
		RestaurantName: m.Restaurant.Name,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, c.ID, line)
	})
}

// UpdateQty sets the line quantity; zero or less removes the line.
func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
