package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// AuthResult is the verify-otp / complete-signup payload.
type AuthResult struct {
	Token     string        `json:"token"`
	User      *laundry.User `json:"user"`
	IsNewUser bool          `json:"isNewUser"`
}

func (c *Client) RequestOTP(ctx context.Context, phoneNumber string) error {
	body := map[string]string{"phoneNumber": phoneNumber}
	return c.post(ctx, "/auth/request-otp", body, nil)
}

func (c *Client) VerifyOTP(ctx context.Context, phoneNumber, otp string) (*AuthResult, error) {
	body := map[string]string{"phoneNumber": phoneNumber, "otp": otp}
	var out AuthResult
	if err := c.post(ctx, "/auth/verify-otp", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompleteSignup(ctx context.Context, phoneNumber, fullName, address string) (*AuthResult, error) {
	body := map[string]string{
		"phoneNumber": phoneNumber,
		"fullName":    fullName,
		"address":     address,
	}
	var out AuthResult
	if err := c.post(ctx, "/auth/complete-signup", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProfile(ctx context.Context) (*laundry.User, error) {
	var out laundry.User
	if err := c.get(ctx, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile sends only the non-nil fields.
func (c *Client) UpdateProfile(ctx context.Context, fullName, address *string) (*laundry.User, error) {
	body := map[string]interface{}{}
	if fullName != nil {
		body["fullName"] = *fullName
	}
	if address != nil {
		body["address"] = *address
	}

	var out laundry.User
	if err := c.patch(ctx, "/users/me", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListDeliveryPersonnel(ctx context.Context) ([]*laundry.User, error) {
	var out []*laundry.User
	if err := c.get(ctx, "/users/delivery-personnel", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClothingItems lists the catalog, optionally filtered by category.
func (c *Client) ClothingItems(ctx context.Context, category laundry.Category) ([]*laundry.ClothingItem, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"category": {string(category)}}
	}

	var out []*laundry.ClothingItem
	if err := c.get(ctx, "/catalog/clothing-items", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Services(ctx context.Context) ([]*laundry.LaundryService, error) {
	var out []*laundry.LaundryService
	if err := c.get(ctx, "/catalog/services", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Pricing(ctx context.Context) ([]*laundry.Pricing, error) {
	var out []*laundry.Pricing
	if err := c.get(ctx, "/catalog/pricing", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SeedCatalog(ctx context.Context) error {
	return c.post(ctx, "/catalog/seed", nil, nil)
}

func (c *Client) CreateOrder(ctx context.Context, req *laundry.CreateOrderRequest) (*laundry.Order, error) {
	var out laundry.Order
	if err := c.post(ctx, "/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]*laundry.Order, error) {
	var out []*laundry.Order
	if err := c.get(ctx, "/orders/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AssignedOrders(ctx context.Context) ([]*laundry.Order, error) {
	var out []*laundry.Order
	if err := c.get(ctx, "/orders/assigned", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UnassignedOrders(ctx context.Context) ([]*laundry.Order, error) {
	var out []*laundry.Order
	if err := c.get(ctx, "/orders/unassigned", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllOrders pages through every order; status filters when non-empty.
func (c *Client) AllOrders(ctx context.Context, status laundry.OrderStatus, page int) (*laundry.OrderPage, error) {
	query := url.Values{"page": {strconv.Itoa(page)}}
	if status != "" {
		query.Set("status", string(status))
	}

	var out laundry.OrderPage
	if err := c.get(ctx, "/orders", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*laundry.Order, error) {
	var out laundry.Order
	if err := c.get(ctx, "/orders/"+orderID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OrderStats(ctx context.Context) (*laundry.OrderStats, error) {
	var out laundry.OrderStats
	if err := c.get(ctx, "/orders/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status laundry.OrderStatus, note string) (*laundry.Order, error) {
	body := map[string]string{"status": string(status)}
	if note != "" {
		body["note"] = note
	}

	var out laundry.Order
	if err := c.patch(ctx, "/orders/"+orderID+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AssignDelivery(ctx context.Context, orderID, deliveryPersonID string) (*laundry.Order, error) {
	body := map[string]string{"deliveryPersonId": deliveryPersonID}

	var out laundry.Order
	if err := c.patch(ctx, "/orders/"+orderID+"/assign", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
