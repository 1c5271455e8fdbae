package entity

import (
	"gorm.io/gorm"
)

// Address is an entry in the user's saved address book. Orders keep their own
// snapshot (DeliveryAddress), so editing an address never rewrites history.
type Address struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Label    string `gorm:"default:home" json:"label"` // home | work | other
	Street   string `json:"street"`
	Area     string `json:"area"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark"`

	// at most one default per user, enforced in AuthService
	IsDefault bool `json:"isDefault"`
}
