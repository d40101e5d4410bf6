package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// Keys under which the auth middleware stores the caller's identity.
const (
	UserIDKey = "userID"
	PhoneKey  = "userPhone"
	RoleKey   = "userRole"
)

// UserID returns the authenticated user id, if any.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// Role returns the authenticated caller's role, if any.
func Role(c *gin.Context) (laundry.Role, bool) {
	v, ok := c.Get(RoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(laundry.Role)
	return role, ok
}

// Phone returns the authenticated caller's phone number, if any.
func Phone(c *gin.Context) (string, bool) {
	v, ok := c.Get(PhoneKey)
	if !ok {
		return "", false
	}
	phone, ok := v.(string)
	return phone, ok
}
