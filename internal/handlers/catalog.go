package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

func (h *Handler) GetClothingItems(c *gin.Context) {
	category := laundry.Category(c.Query("category"))

	items, err := h.catalog.GetClothingItems(c.Request.Context(), category)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

func (h *Handler) GetServices(c *gin.Context) {
	services, err := h.catalog.GetServices(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, services)
}

func (h *Handler) GetPricing(c *gin.Context) {
	pricing, err := h.catalog.GetPricing(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, pricing)
}

// SeedCatalog loads the default catalog. Admin only; meant for fresh
// environments.
func (h *Handler) SeedCatalog(c *gin.Context) {
	if err := h.catalog.SeedDefault(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, gin.H{}, "catalog seeded")
}
