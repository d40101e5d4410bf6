package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"status":         "ok",
		"uptime":         time.Since(h.metrics.StartedAt).Round(time.Second).String(),
		"requestsServed": h.metrics.RequestsServed.Load(),
		"ordersCreated":  h.metrics.OrdersCreated.Load(),
		"statusUpdates":  h.metrics.StatusUpdates.Load(),
		"otpRequests":    h.metrics.OTPRequests.Load(),
	})
}
