package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maheenur13/laundry-lab-frontend/internal/catalog"
	"github.com/maheenur13/laundry-lab-frontend/internal/order"
	"github.com/maheenur13/laundry-lab-frontend/internal/otp"
	"github.com/maheenur13/laundry-lab-frontend/internal/user"
)

// Every endpoint answers with the same envelope: successes wrap their payload
// in data, failures carry a message plus request metadata.

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success":   false,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"path":      c.Request.URL.Path,
	})
}

// fail maps domain errors onto HTTP statuses; anything unrecognized is a 500
// with a generic message so internals never leak.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrInvalidPhone),
		errors.Is(err, user.ErrMissingFields),
		errors.Is(err, user.ErrInvalidOTP),
		errors.Is(err, catalog.ErrInvalidCategory),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrNoServices),
		errors.Is(err, order.ErrUnknownItem),
		errors.Is(err, order.ErrServiceUnavailable),
		errors.Is(err, order.ErrNotDeliveryPerson):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, otp.ErrNotFound),
		errors.Is(err, otp.ErrMismatch):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, otp.ErrTooManyAttempts):
		respondError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, order.ErrForbidden):
		respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, catalog.ErrPriceNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderTerminal):
		respondError(c, http.StatusConflict, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
