package repository

import (
	"github.com/Shivam1-ai/chai-order-ai/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users and addresses tables only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindWithAddresses(id uint) (*entity.User, error) {
	var user entity.User
	err := r.DB.Preload("Addresses", func(db *gorm.DB) *gorm.DB {
		return db.Order("is_default DESC, id ASC")
	}).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ---------------- Address book ----------------

func (r *UserRepository) ListAddresses(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).
		Order("is_default DESC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *UserRepository) GetAddress(userID, addrID uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", addrID, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *UserRepository) CreateAddress(tx *gorm.DB, a *entity.Address) error {
	return tx.Create(a).Error
}

func (r *UserRepository) UpdateAddress(tx *gorm.DB, userID, addrID uint, updates map[string]any) error {
	return tx.Model(&entity.Address{}).
		Where("id = ? AND user_id = ?", addrID, userID).
		Updates(updates).Error
}

func (r *UserRepository) DeleteAddress(userID, addrID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", addrID, userID).Delete(&entity.Address{}).Error
}

func (r *UserRepository) CountAddresses(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Address{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ClearDefaultAddress drops the default flag from every address of the user.
func (r *UserRepository) ClearDefaultAddress(tx *gorm.DB, userID uint) error {
	return tx.Model(&entity.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
