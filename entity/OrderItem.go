package entity

import (
	"gorm.io/gorm"
)

// OrderItem is immutable once the order is created; name and price are
// snapshots of the menu item at checkout time.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	ItemName   string `json:"itemName"`
	ItemPrice  int64  `json:"itemPrice"`
	Qty        int    `json:"qty"`
	TotalPrice int64  `json:"totalPrice"` // itemPrice * qty
}
