package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maheenur13/laundry-lab-frontend/internal/middleware"
	"github.com/maheenur13/laundry-lab-frontend/internal/order"
	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

func actorFrom(c *gin.Context) order.Actor {
	userID, _ := middleware.UserID(c)
	role, _ := middleware.Role(c)
	return order.Actor{UserID: userID, Role: role}
}

func (h *Handler) CreateOrder(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req laundry.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.orders.Create(c.Request.Context(), userID, &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.metrics.OrdersCreated.Inc()
	h.carts.Drop(userID)
	respond(c, http.StatusCreated, created)
}

func (h *Handler) MyOrders(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	orders, err := h.orders.MyOrders(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, orders)
}

func (h *Handler) AssignedOrders(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	orders, err := h.orders.AssignedOrders(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, orders)
}

func (h *Handler) UnassignedOrders(c *gin.Context) {
	orders, err := h.orders.UnassignedOrders(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, orders)
}

func (h *Handler) AllOrders(c *gin.Context) {
	status := laundry.OrderStatus(c.Query("status"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.orders.AllOrders(c.Request.Context(), status, page)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, result)
}

func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.orders.GetOrder(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, o)
}

func (h *Handler) OrderStats(c *gin.Context) {
	stats, err := h.orders.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, stats)
}

type updateStatusBody struct {
	Status laundry.OrderStatus `json:"status" binding:"required"`
	Note   string              `json:"note"`
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var body updateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "status is required")
		return
	}

	updated, err := h.orders.UpdateStatus(c.Request.Context(), actorFrom(c), c.Param("id"), body.Status, body.Note)
	if err != nil {
		fail(c, err)
		return
	}

	h.metrics.StatusUpdates.Inc()
	respond(c, http.StatusOK, updated)
}

type assignDeliveryBody struct {
	DeliveryPersonID string `json:"deliveryPersonId" binding:"required"`
}

func (h *Handler) AssignDelivery(c *gin.Context) {
	var body assignDeliveryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "deliveryPersonId is required")
		return
	}

	updated, err := h.orders.AssignDelivery(c.Request.Context(), c.Param("id"), body.DeliveryPersonID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, updated)
}
