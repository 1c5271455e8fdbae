package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	// snapshot taken at add time; the price stays frozen even if the menu changes
	ItemName  string `json:"itemName"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int    `json:"qty"`
	Total     int64  `json:"total"`

	RestaurantID   uint   `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
}
