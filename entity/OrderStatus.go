package entity

import "strings"

// Order lifecycle statuses. The order record starts at pending and only moves
// through AllowedTransition; tracking events are free-form labels on top.
const (
	OrderPending        = "pending"
	OrderConfirmed      = "confirmed"
	OrderPreparing      = "preparing"
	OrderOutForDelivery = "out_for_delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

var transitions = map[string][]string{
	OrderPending:        {OrderConfirmed, OrderCancelled},
	OrderConfirmed:      {OrderPreparing, OrderCancelled},
	OrderPreparing:      {OrderOutForDelivery, OrderCancelled},
	OrderOutForDelivery: {OrderDelivered},
}

// AllowedTransition reports whether an order may move from -> to.
func AllowedTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StatusBadge maps a status label to the badge variant the client renders.
// Unknown labels (e.g. "Order Placed" tracking entries) fall back to secondary.
func StatusBadge(status string) string {
	switch strings.ToLower(status) {
	case OrderConfirmed, OrderPreparing, OrderOutForDelivery:
		return "default"
	case OrderCancelled:
		return "destructive"
	default:
		return "secondary"
	}
}
