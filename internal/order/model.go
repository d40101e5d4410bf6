package order

import (
	"time"

	"github.com/maheenur13/laundry-lab-frontend/internal/user"
	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// Order is the stored order with its relations loaded. Customer and
// DeliveryPerson are populated by the repository joins; DeliveryPersonID is
// nil until an admin assigns someone.
type Order struct {
	ID               string
	CustomerID       string
	Customer         *user.User
	DeliveryPersonID *string
	DeliveryPerson   *user.User

	Items []Item

	ItemsTotal     int
	DeliveryCharge int
	GrandTotal     int

	PickupAddress   laundry.OrderAddress
	DeliveryAddress laundry.OrderAddress

	Status  laundry.OrderStatus
	History []laundry.StatusHistoryEntry

	Notes                 string
	ScheduledPickupTime   *time.Time
	EstimatedDeliveryTime *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is one priced order line, frozen at creation time.
type Item struct {
	ID               string
	OrderID          string
	ClothingItemID   string
	ClothingItemName string
	Category         laundry.Category
	Services         []laundry.ServiceType
	Quantity         int
	UnitPrice        int
	Subtotal         int
}

// Page is one page of the admin order listing.
type Page struct {
	Orders     []*Order
	Total      int
	Page       int
	TotalPages int
}
