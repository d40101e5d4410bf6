// Package laundry holds the domain types shared by the platform service and
// the client SDK: enums, order/catalog/user wire types, and the order status
// progression.
package laundry

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleDelivery Role = "delivery"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleDelivery, RoleAdmin:
		return true
	}
	return false
}

type Category string

const (
	CategoryMen      Category = "men"
	CategoryWomen    Category = "women"
	CategoryChildren Category = "children"
)

type ServiceType string

const (
	ServiceWashing ServiceType = "washing"
	ServiceIroning ServiceType = "ironing"
)

// LocalizedText carries the English and Bangla variants of a display string.
type LocalizedText struct {
	En string `json:"en"`
	Bn string `json:"bn"`
}

type User struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	Role        Role      `json:"role"`
	IsVerified  bool      `json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ClothingItem struct {
	ID                string        `json:"id"`
	Name              LocalizedText `json:"name"`
	Category          Category      `json:"category"`
	Icon              string        `json:"icon"`
	AvailableServices []ServiceType `json:"availableServices"`
	IsActive          bool          `json:"isActive"`
}

type LaundryService struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Type        ServiceType   `json:"type"`
	Description string        `json:"description,omitempty"`
	Icon        string        `json:"icon,omitempty"`
	IsActive    bool          `json:"isActive"`
}

// Pricing keys a price on (clothing item, service type, category).
type Pricing struct {
	ID             string      `json:"id"`
	ClothingItemID string      `json:"clothingItem"`
	ServiceType    ServiceType `json:"serviceType"`
	Category       Category    `json:"category"`
	Price          int         `json:"price"`
	IsActive       bool        `json:"isActive"`
}

type OrderItem struct {
	ClothingItemID   string        `json:"clothingItem"`
	ClothingItemName string        `json:"clothingItemName"`
	Category         Category      `json:"category"`
	Services         []ServiceType `json:"services"`
	Quantity         int           `json:"quantity"`
	UnitPrice        int           `json:"unitPrice"`
	Subtotal         int           `json:"subtotal"`
}

type OrderPricing struct {
	ItemsTotal     int `json:"itemsTotal"`
	DeliveryCharge int `json:"deliveryCharge"`
	GrandTotal     int `json:"grandTotal"`
}

type OrderAddress struct {
	FullAddress  string `json:"fullAddress"`
	Landmark     string `json:"landmark,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

type StatusHistoryEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Note      string      `json:"note,omitempty"`
	UpdatedBy string      `json:"updatedBy,omitempty"`
}

type Order struct {
	ID                    string               `json:"id"`
	Customer              PartyRef             `json:"customer"`
	DeliveryPerson        *PartyRef            `json:"deliveryPerson,omitempty"`
	Items                 []OrderItem          `json:"items"`
	Pricing               OrderPricing         `json:"pricing"`
	PickupAddress         OrderAddress         `json:"pickupAddress"`
	DeliveryAddress       OrderAddress         `json:"deliveryAddress"`
	Status                OrderStatus          `json:"status"`
	StatusHistory         []StatusHistoryEntry `json:"statusHistory"`
	Notes                 string               `json:"notes,omitempty"`
	ScheduledPickupTime   *time.Time           `json:"scheduledPickupTime,omitempty"`
	EstimatedDeliveryTime *time.Time           `json:"estimatedDeliveryTime,omitempty"`
	CreatedAt             time.Time            `json:"createdAt"`
	UpdatedAt             time.Time            `json:"updatedAt"`
}

// CreateOrderItem is one requested selection; the server prices it from the
// catalog at creation time.
type CreateOrderItem struct {
	ClothingItemID string        `json:"clothingItemId"`
	Category       Category      `json:"category"`
	Services       []ServiceType `json:"services"`
	Quantity       int           `json:"quantity"`
}

type CreateOrderRequest struct {
	Items               []CreateOrderItem `json:"items"`
	PickupAddress       OrderAddress      `json:"pickupAddress"`
	DeliveryAddress     *OrderAddress     `json:"deliveryAddress,omitempty"`
	Notes               string            `json:"notes,omitempty"`
	ScheduledPickupTime *time.Time        `json:"scheduledPickupTime,omitempty"`
}

type OrderStats struct {
	TotalOrders      int `json:"totalOrders"`
	PendingOrders    int `json:"pendingOrders"`
	InProgressOrders int `json:"inProgressOrders"`
	CompletedOrders  int `json:"completedOrders"`
	CancelledOrders  int `json:"cancelledOrders"`
	TodayOrders      int `json:"todayOrders"`
	TodayRevenue     int `json:"todayRevenue"`
}

// OrderPage is the paginated admin order listing.
type OrderPage struct {
	Orders     []*Order `json:"orders"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	TotalPages int      `json:"totalPages"`
}
