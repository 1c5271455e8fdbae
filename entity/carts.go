package entity

import (
	"gorm.io/gorm"
)

// Cart is the user's single open cart. Lines from several restaurants may
// coexist; checkout fans them out into one order per restaurant.
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
