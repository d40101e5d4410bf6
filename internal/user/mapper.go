package user

import "github.com/maheenur13/laundry-lab-frontend/pkg/laundry"

// ToAPI maps the stored user onto the wire type.
func ToAPI(u *User) *laundry.User {
	if u == nil {
		return nil
	}
	return &laundry.User{
		ID:          u.ID,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		Role:        u.Role,
		IsVerified:  u.IsVerified,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
