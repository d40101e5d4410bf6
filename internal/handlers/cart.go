package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheenur13/laundry-lab-frontend/internal/middleware"
	"github.com/maheenur13/laundry-lab-frontend/pkg/cart"
	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

type addCartItemBody struct {
	ClothingItemID string                `json:"clothingItemId" binding:"required"`
	Category       laundry.Category      `json:"category" binding:"required"`
	Services       []laundry.ServiceType `json:"services" binding:"required"`
	Quantity       int                   `json:"quantity" binding:"required"`
}

// GetCart returns the caller's cart snapshot.
func (h *Handler) GetCart(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	respond(c, http.StatusOK, h.carts.Get(userID).Snapshot())
}

// AddCartItem merges a selection into the caller's cart. The unit price is
// computed from the catalog here; the cart engine itself never reprices.
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var body addCartItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "clothingItemId, category, services and quantity are required")
		return
	}
	if body.Quantity < 1 {
		respondError(c, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	item, err := h.catalog.GetClothingItem(c.Request.Context(), body.ClothingItemID)
	if err != nil {
		fail(c, err)
		return
	}
	if item == nil {
		respondError(c, http.StatusNotFound, "unknown clothing item")
		return
	}

	unitPrice, err := h.catalog.UnitPrice(c.Request.Context(), body.ClothingItemID, body.Category, body.Services)
	if err != nil {
		fail(c, err)
		return
	}

	userCart := h.carts.Get(userID)
	userCart.AddItem(cart.AddItemParams{
		ClothingItem: *item,
		Category:     body.Category,
		Services:     body.Services,
		Quantity:     body.Quantity,
		UnitPrice:    unitPrice,
	})
	respond(c, http.StatusOK, userCart.Snapshot())
}

type updateCartItemBody struct {
	Quantity *int                  `json:"quantity"`
	Services []laundry.ServiceType `json:"services"`
}

// UpdateCartItem changes a line item's quantity and/or service set. Service
// changes deliberately keep the recorded unit price.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var body updateCartItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userCart := h.carts.Get(userID)
	itemID := c.Param("itemId")

	if body.Quantity != nil {
		userCart.UpdateQuantity(itemID, *body.Quantity)
	}
	if body.Services != nil {
		userCart.UpdateServices(itemID, body.Services)
	}
	respond(c, http.StatusOK, userCart.Snapshot())
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	userCart := h.carts.Get(userID)
	userCart.RemoveItem(c.Param("itemId"))
	respond(c, http.StatusOK, userCart.Snapshot())
}

func (h *Handler) ClearCart(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	userCart := h.carts.Get(userID)
	userCart.Clear()
	respond(c, http.StatusOK, userCart.Snapshot())
}
