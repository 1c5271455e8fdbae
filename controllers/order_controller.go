package controllers

import (
	"errors"
	"strconv"

	"github.com/Shivam1-ai/chai-order-ai/entity"
	"github.com/Shivam1-ai/chai-order-ai/pkg/resp"
	"github.com/Shivam1-ai/chai-order-ai/services"
	"github.com/Shivam1-ai/chai-order-ai/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /checkout — cart becomes one order per restaurant, all-or-nothing
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	orders, err := h.Svc.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthenticationRequired):
			resp.Unauthorized(c, "please login to place an order")
		case errors.Is(err, services.ErrCartEmpty):
			resp.BadRequest(c, "cart is empty")
		case errors.Is(err, services.ErrAddressIncomplete):
			resp.BadRequest(c, "please fill in your delivery address")
		default:
			resp.ServerError(c, errors.New("failed to place order, please try again"))
		}
		return
	}
	resp.Created(c, gin.H{"orders": orders})
}

// GET /orders — newest first
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id — owner only
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	o, err := h.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": o, "statusBadge": entity.StatusBadge(o.Status)})
}

// GET /orders/:id/tracking — reverse chronological timeline
func (h *OrderController) Tracking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	o, entries, err := h.Svc.Timeline(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"order":       o,
		"statusBadge": entity.StatusBadge(o.Status),
		"timeline":    entries,
	})
}

// POST /ops/orders/:id/tracking — restaurant/courier side appends an event
func (h *OrderController) AppendTracking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var in services.AppendTrackingIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.AppendTracking(uint(id), &in); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, "invalid status transition")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"appended": true})
}
