package entity

import (
	"gorm.io/gorm"
)

// DeliveryAddress is a value copy of the address chosen at checkout,
// independent of the user's address book.
type DeliveryAddress struct {
	Street   string `json:"street"`
	Area     string `json:"area"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark"`
}

type Order struct {
	gorm.Model
	OrderNo string `gorm:"uniqueIndex" json:"orderNo"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID   uint       `json:"restaurantId"`
	Restaurant     Restaurant `json:"-"`
	RestaurantName string     `json:"restaurantName"`

	Status string `gorm:"default:pending" json:"status"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	TotalAmount int64 `json:"totalAmount"` // subtotal + delivery fee

	DeliveryAddress DeliveryAddress `gorm:"embedded;embeddedPrefix:addr_" json:"deliveryAddress"`

	// labels only, no gateway behind them
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `gorm:"default:pending" json:"paymentStatus"`

	EstimatedMinutes    int    `json:"estimatedMinutes"`
	SpecialInstructions string `json:"specialInstructions"`

	Items          []OrderItem     `json:"items,omitempty"`
	TrackingEvents []TrackingEvent `json:"-"`
}
