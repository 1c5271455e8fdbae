package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string  `json:"name"`
	Cuisine      string  `json:"cuisine"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"` // e.g. "25-30 min"
	Distance     string  `json:"distance"`
	Offer        string  `json:"offer"`
	Picture      string  `json:"picture"`

	MenuItems []MenuItem `json:"menuItems,omitempty"`
	Orders    []Order    `json:"-"`
}
