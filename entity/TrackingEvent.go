package entity

import (
	"gorm.io/gorm"
)

// TrackingEvent is an append-only status entry for one order. Events are
// never edited or removed; the timeline reads them newest first.
type TrackingEvent struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	Status  string `json:"status"`
	Message string `json:"message"`
}
