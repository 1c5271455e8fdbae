package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Shivam1-ai/chai-order-ai/entity"
	"github.com/Shivam1-ai/chai-order-ai/repository"
	"github.com/Shivam1-ai/chai-order-ai/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns login/register and the profile + address book.
type AuthService struct {
	DB        *gorm.DB
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:        db,
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a new user; duplicate emails are rejected.
func (s *AuthService) Register(email, password, firstName, lastName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        "customer",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindWithAddresses(userID)
}

// UpdateProfile merges a partial record into the current user.
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if len(updates) > 0 {
		if err := s.userRepo.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.userRepo.FindWithAddresses(userID)
}

// ---------------- Address book ----------------

type AddressIn struct {
	Label    string `json:"label" binding:"omitempty,oneof=home work other"`
	Street   string `json:"street" binding:"required"`
	Area     string `json:"area" binding:"required"`
	City     string `json:"city" binding:"required"`
	Pincode  string `json:"pincode" binding:"required"`
	Landmark string `json:"landmark"`
	Default  bool   `json:"isDefault"`
}

func (s *AuthService) ListAddresses(userID uint) ([]entity.Address, error) {
	return s.userRepo.ListAddresses(userID)
}

// AddAddress inserts an address; the first one, or one flagged default,
// becomes the single default for the user.
func (s *AuthService) AddAddress(userID uint, in *AddressIn) (*entity.Address, error) {
	count, err := s.userRepo.CountAddresses(userID)
	if err != nil {
		return nil, err
	}

	a := &entity.Address{
		UserID:    userID,
		Label:     in.Label,
		Street:    in.Street,
		Area:      in.Area,
		City:      in.City,
		Pincode:   in.Pincode,
		Landmark:  in.Landmark,
		IsDefault: in.Default || count == 0,
	}
	if a.Label == "" {
		a.Label = "home"
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := s.userRepo.ClearDefaultAddress(tx, userID); err != nil {
				return err
			}
		}
		return s.userRepo.CreateAddress(tx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AuthService) UpdateAddress(userID, addrID uint, in *AddressIn) (*entity.Address, error) {
	// the address must belong to the user before anything is written,
	// otherwise a default flip could clear the real default and then miss
	if _, err := s.userRepo.GetAddress(userID, addrID); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"street":   in.Street,
		"area":     in.Area,
		"city":     in.City,
		"pincode":  in.Pincode,
		"landmark": in.Landmark,
	}
	if in.Label != "" {
		updates["label"] = in.Label
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if in.Default {
			if err := s.userRepo.ClearDefaultAddress(tx, userID); err != nil {
				return err
			}
			updates["is_default"] = true
		}
		return s.userRepo.UpdateAddress(tx, userID, addrID, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetAddress(userID, addrID)
}

func (s *AuthService) DeleteAddress(userID, addrID uint) error {
	return s.userRepo.DeleteAddress(userID, addrID)
}

// SetDefaultAddress makes addrID the single default for the user.
func (s *AuthService) SetDefaultAddress(userID, addrID uint) error {
	if _, err := s.userRepo.GetAddress(userID, addrID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.ClearDefaultAddress(tx, userID); err != nil {
			return err
		}
		return s.userRepo.UpdateAddress(tx, userID, addrID, map[string]any{"is_default": true})
	})
}
