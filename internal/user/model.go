package user

import (
	"time"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

type User struct {
	ID          string
	FullName    string
	PhoneNumber string
	Address     string
	Role        laundry.Role
	IsVerified  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type UpdateProfileParams struct {
	FullName *string
	Address  *string
}
