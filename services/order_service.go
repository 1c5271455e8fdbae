package services

import (
	"strings"

	"github.com/Shivam1-ai/chai-order-ai/entity"
	"github.com/Shivam1-ai/chai-order-ai/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initial tracking entry written with every new order.
const (
	trackingPlacedStatus  = "Order Placed"
	trackingPlacedMessage = "Your order has been placed successfully"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	TrackRepo *repository.TrackingRepository
	Log       *zap.SugaredLogger

	DeliveryFee      int64
	EstimatedMinutes int
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	trackRepo *repository.TrackingRepository,
	log *zap.SugaredLogger,
	deliveryFee int64,
	estimatedMinutes int,
) *OrderService {
	return &OrderService{
		DB:               db,
		Repo:             repo,
		CartRepo:         cartRepo,
		TrackRepo:        trackRepo,
		Log:              log,
		DeliveryFee:      deliveryFee,
		EstimatedMinutes: estimatedMinutes,
	}
}

// ----- DTOs from Controller -----

type DeliveryAddressIn struct {
	Street   string `json:"street"`
	Area     string `json:"area"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark"`
}

type CheckoutReq struct {
	Address             DeliveryAddressIn `json:"address"`
	PaymentMethod       string            `json:"paymentMethod" binding:"omitempty,oneof=card upi wallet cash"`
	SpecialInstructions string            `json:"specialInstructions"`
}

type CreatedOrder struct {
	ID           uint   `json:"id"`
	OrderNo      string `json:"orderNo"`
	RestaurantID uint   `json:"restaurantId"`
	Total        int64  `json:"total"`
}

func (a *DeliveryAddressIn) incomplete() bool {
	return strings.TrimSpace(a.Street) == "" ||
		strings.TrimSpace(a.Area) == "" ||
		strings.TrimSpace(a.City) == "" ||
		strings.TrimSpace(a.Pincode) == ""
}

// restaurantGroup collects cart lines per restaurant, first-seen order kept.
type restaurantGroup struct {
	restaurantID   uint
	restaurantName string
	items          []entity.CartItem
}

func groupByRestaurant(items []entity.CartItem) []restaurantGroup {
	idx := make(map[uint]int)
	var groups []restaurantGroup
	for _, it := range items {
		i, ok := idx[it.RestaurantID]
		if !ok {
			i = len(groups)
			idx[it.RestaurantID] = i
			groups = append(groups, restaurantGroup{
				restaurantID:   it.RestaurantID,
				restaurantName: it.RestaurantName,
			})
		}
		groups[i].items = append(groups[i].items, it)
	}
	return groups
}

// Checkout turns the cart into one persisted order per restaurant. Order rows,
// their items, the initial tracking entry and the cart clear all commit in a
// single transaction: either every restaurant's order exists afterwards or
// none does. Validation failures never reach the database.
func (s *OrderService) Checkout(userID uint, req *CheckoutReq) ([]CreatedOrder, error) {
	if userID == 0 {
		return nil, ErrAuthenticationRequired
	}
	if req.Address.incomplete() {
		return nil, ErrAddressIncomplete
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	addr := entity.DeliveryAddress{
		Street:   strings.TrimSpace(req.Address.Street),
		Area:     strings.TrimSpace(req.Address.Area),
		City:     strings.TrimSpace(req.Address.City),
		Pincode:  strings.TrimSpace(req.Address.Pincode),
		Landmark: strings.TrimSpace(req.Address.Landmark),
	}

	var out []CreatedOrder
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, g := range groupByRestaurant(cart.Items) {
			var subtotal int64
			for _, it := range g.items {
				subtotal += it.UnitPrice * int64(it.Qty)
			}

			order := entity.Order{
				OrderNo:             uuid.NewString(),
				UserID:              userID,
				RestaurantID:        g.restaurantID,
				RestaurantName:      g.restaurantName,
				Status:              entity.OrderPending,
				Subtotal:            subtotal,
				DeliveryFee:         s.DeliveryFee,
				TotalAmount:         subtotal + s.DeliveryFee,
				DeliveryAddress:     addr,
				PaymentMethod:       paymentMethod,
				PaymentStatus:       "pending",
				EstimatedMinutes:    s.EstimatedMinutes,
				SpecialInstructions: req.SpecialInstructions,
			}
			if err := s.Repo.CreateOrder(tx, &order); err != nil {
				return err
			}

			for _, it := range g.items {
				oi := entity.OrderItem{
					OrderID:    order.ID,
					MenuItemID: it.MenuItemID,
					ItemName:   it.ItemName,
					ItemPrice:  it.UnitPrice,
					Qty:        it.Qty,
					TotalPrice: it.UnitPrice * int64(it.Qty),
				}
				if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
					return err
				}
			}

			ev := entity.TrackingEvent{
				OrderID: order.ID,
				Status:  trackingPlacedStatus,
				Message: trackingPlacedMessage,
			}
			if err := s.TrackRepo.Create(tx, &ev); err != nil {
				return err
			}

			out = append(out, CreatedOrder{
				ID:           order.ID,
				OrderNo:      order.OrderNo,
				RestaurantID: order.RestaurantID,
				Total:        order.TotalAmount,
			})
		}

		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		s.Log.Errorw("checkout failed", "userId", userID, "error", err)
		return nil, err
	}
	return out, nil
}

// ListForUser returns the user's orders newest first; no user means no query.
func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	if userID == 0 {
		return nil, nil
	}
	return s.Repo.ListOrdersForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrderForUser(userID, orderID)
}

// ----- Tracking -----

type TimelineEntry struct {
	ID        uint   `json:"id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	Badge     string `json:"badge"`
	CreatedAt string `json:"createdAt"`
}

// Timeline reads the order's tracking log newest first, owner-scoped.
func (s *OrderService) Timeline(userID, orderID uint) (*entity.Order, []TimelineEntry, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, nil, err
	}
	events, err := s.TrackRepo.ListForOrder(o.ID)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]TimelineEntry, 0, len(events))
	for _, ev := range events {
		entries = append(entries, TimelineEntry{
			ID:        ev.ID,
			Status:    ev.Status,
			Message:   ev.Message,
			Badge:     entity.StatusBadge(ev.Status),
			CreatedAt: ev.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return o, entries, nil
}

type AppendTrackingIn struct {
	Status  string `json:"status" binding:"required"`
	Message string `json:"message"`
}

// AppendTracking records a status event from the restaurant/courier side.
// When the label is one of the lifecycle statuses and differs from the order's
// current one, the order moves under a guard; a stale move is rejected and
// nothing is written.
func (s *OrderService) AppendTracking(orderID uint, in *AppendTrackingIn) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}

		status := strings.ToLower(strings.TrimSpace(in.Status))
		if isLifecycleStatus(status) && status != o.Status {
			if !entity.AllowedTransition(o.Status, status) {
				return ErrInvalidTransition
			}
			affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, status)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInvalidTransition
			}
		}

		ev := entity.TrackingEvent{OrderID: o.ID, Status: in.Status, Message: in.Message}
		return s.TrackRepo.Create(tx, &ev)
	})
}

func isLifecycleStatus(s string) bool {
	switch s {
	case entity.OrderPending, entity.OrderConfirmed, entity.OrderPreparing,
		entity.OrderOutForDelivery, entity.OrderDelivered, entity.OrderCancelled:
		return true
	}
	return false
}
