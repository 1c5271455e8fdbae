package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name     string `json:"name"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	IsVeg    bool   `json:"isVeg"`
	Picture  string `json:"picture"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
	CartItems  []CartItem  `json:"-"`
}
