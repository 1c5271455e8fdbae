package repository

import (
	"github.com/Shivam1-ai/chai-order-ai/entity"

	"gorm.io/gorm"
)

// TrackingRepository appends to and reads the per-order status log.
// Rows are never updated or deleted.
type TrackingRepository struct{ DB *gorm.DB }

func NewTrackingRepository(db *gorm.DB) *TrackingRepository {
	return &TrackingRepository{DB: db}
}

func (r *TrackingRepository) Create(tx *gorm.DB, ev *entity.TrackingEvent) error {
	return tx.Create(ev).Error
}

func (r *TrackingRepository) ListForOrder(orderID uint) ([]entity.TrackingEvent, error) {
	var out []entity.TrackingEvent
	err := r.DB.Where("order_id = ?", orderID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
