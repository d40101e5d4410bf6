package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/maheenur13/laundry-lab-frontend/internal/catalog"
	"github.com/maheenur13/laundry-lab-frontend/internal/logger"
	"github.com/maheenur13/laundry-lab-frontend/internal/metrics"
	"github.com/maheenur13/laundry-lab-frontend/internal/middleware"
	"github.com/maheenur13/laundry-lab-frontend/internal/order"
	"github.com/maheenur13/laundry-lab-frontend/internal/user"
	"github.com/maheenur13/laundry-lab-frontend/pkg/cart"
	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// Handler owns the HTTP layer; all behavior lives in the injected services.
type Handler struct {
	users   user.Service
	catalog catalog.Service
	orders  order.Service
	carts   *cart.Store
	metrics *metrics.Registry
	devMode bool
}

func New(users user.Service, cat catalog.Service, orders order.Service, carts *cart.Store, reg *metrics.Registry, devMode bool) *Handler {
	return &Handler{
		users:   users,
		catalog: cat,
		orders:  orders,
		carts:   carts,
		metrics: reg,
		devMode: devMode,
	}
}

// Router wires every endpoint under /api/v1 with the shared middleware
// chain. Route-level role guards mirror what each client screen is allowed
// to call.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestID())
	r.Use(logger.Logging())
	r.Use(middleware.Authenticate())
	r.Use(middleware.RateLimit())
	r.Use(func(c *gin.Context) {
		h.metrics.RequestsServed.Inc()
		c.Next()
	})

	r.GET("/healthz", h.Health)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/request-otp", h.RequestOTP)
		auth.POST("/verify-otp", h.VerifyOTP)
		auth.POST("/complete-signup", h.CompleteSignup)
	}

	users := v1.Group("/users", middleware.RequireAuth())
	{
		users.GET("/me", h.GetProfile)
		users.PATCH("/me", h.UpdateProfile)
		users.GET("/delivery-personnel", middleware.RequireRole(laundry.RoleAdmin), h.ListDeliveryPersonnel)
	}

	cat := v1.Group("/catalog")
	{
		cat.GET("/clothing-items", h.GetClothingItems)
		cat.GET("/services", h.GetServices)
		cat.GET("/pricing", h.GetPricing)
		cat.POST("/seed", middleware.RequireRole(laundry.RoleAdmin), h.SeedCatalog)
	}

	carts := v1.Group("/cart", middleware.RequireRole(laundry.RoleCustomer))
	{
		carts.GET("", h.GetCart)
		carts.POST("/items", h.AddCartItem)
		carts.PATCH("/items/:itemId", h.UpdateCartItem)
		carts.DELETE("/items/:itemId", h.RemoveCartItem)
		carts.DELETE("", h.ClearCart)
	}

	orders := v1.Group("/orders", middleware.RequireAuth())
	{
		orders.POST("", middleware.RequireRole(laundry.RoleCustomer), h.CreateOrder)
		orders.GET("/my", middleware.RequireRole(laundry.RoleCustomer), h.MyOrders)
		orders.GET("/assigned", middleware.RequireRole(laundry.RoleDelivery), h.AssignedOrders)
		orders.GET("/unassigned", middleware.RequireRole(laundry.RoleDelivery, laundry.RoleAdmin), h.UnassignedOrders)
		orders.GET("/stats", middleware.RequireRole(laundry.RoleAdmin), h.OrderStats)
		orders.GET("", middleware.RequireRole(laundry.RoleAdmin), h.AllOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id/status", h.UpdateOrderStatus)
		orders.PATCH("/:id/assign", middleware.RequireRole(laundry.RoleAdmin), h.AssignDelivery)
	}

	return r
}
