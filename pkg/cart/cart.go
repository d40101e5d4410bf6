// Package cart implements the in-memory cart aggregation engine: selections
// of (clothing item, category, service set) merged into priced line items
// with running totals. The original design assumes exactly one mutator at a
// time; a Cart therefore guards its state with a mutex so one instance can be
// shared per session.
package cart

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// DefaultDeliveryCharge is the flat fee applied to non-empty carts.
const DefaultDeliveryCharge = 60

// LineItem is one aggregated cart entry. Identity is derived from the
// clothing item, category and the set of selected services; quantity is the
// only field AddItem mutates on a merge.
type LineItem struct {
	ID           string              `json:"id"`
	ClothingItem laundry.ClothingItem `json:"clothingItem"`
	Category     laundry.Category    `json:"category"`
	Services     []laundry.ServiceType `json:"services"`
	Quantity     int                 `json:"quantity"`
	UnitPrice    int                 `json:"unitPrice"`
}

// AddItemParams describes one selection to merge into the cart. UnitPrice is
// computed by the caller (sum of per-service prices) at add time.
type AddItemParams struct {
	ClothingItem laundry.ClothingItem
	Category     laundry.Category
	Services     []laundry.ServiceType
	Quantity     int
	UnitPrice    int
}

// Snapshot is a point-in-time copy of the cart used by API responses.
type Snapshot struct {
	Items          []LineItem `json:"items"`
	DeliveryCharge int        `json:"deliveryCharge"`
	ItemsTotal     int        `json:"itemsTotal"`
	GrandTotal     int        `json:"grandTotal"`
	ItemCount      int        `json:"itemCount"`
}

// Cart holds the line items a customer intends to order plus derived totals,
// recomputed on every mutation.
type Cart struct {
	mu             sync.Mutex
	items          []*LineItem
	deliveryCharge int
	itemsTotal     int
	grandTotal     int
	itemCount      int
}

// New returns an empty cart with the default delivery charge.
func New() *Cart {
	return NewWithDeliveryCharge(DefaultDeliveryCharge)
}

// NewWithDeliveryCharge returns an empty cart with the given flat fee.
func NewWithDeliveryCharge(charge int) *Cart {
	return &Cart{deliveryCharge: charge}
}

// identityKey builds the merge key from the clothing item id, category and
// the service set. Service order does not matter: two selections with the
// same services in a different order share a key.
func identityKey(itemID string, category laundry.Category, services []laundry.ServiceType) string {
	sorted := make([]string, 0, len(services))
	for _, s := range services {
		sorted = append(sorted, string(s))
	}
	sort.Strings(sorted)
	return itemID + "|" + string(category) + "|" + strings.Join(sorted, ",")
}

// AddItem merges the selection into the cart. A selection matching an
// existing line item's identity key increments that item's quantity and keeps
// its recorded unit price; anything else appends a new line item. Quantity is
// assumed caller-validated to be positive.
func (c *Cart) AddItem(params AddItemParams) LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := identityKey(params.ClothingItem.ID, params.Category, params.Services)
	for _, li := range c.items {
		if identityKey(li.ClothingItem.ID, li.Category, li.Services) == key {
			li.Quantity += params.Quantity
			c.recompute()
			return *li
		}
	}

	li := &LineItem{
		ID:           uuid.New().String(),
		ClothingItem: params.ClothingItem,
		Category:     params.Category,
		Services:     append([]laundry.ServiceType(nil), params.Services...),
		Quantity:     params.Quantity,
		UnitPrice:    params.UnitPrice,
	}
	c.items = append(c.items, li)
	c.recompute()
	return *li
}

// RemoveItem deletes the line item with the given id. A missing id is a
// no-op, not an error.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, li := range c.items {
		if li.ID != id {
			kept = append(kept, li)
		}
	}
	c.items = kept
	c.recompute()
}

// UpdateQuantity sets the quantity of the line item with the given id.
// Quantities below 1 are silently ignored; the clamp is deliberate, not an
// error signal.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, li := range c.items {
		if li.ID == id {
			li.Quantity = quantity
			break
		}
	}
	c.recompute()
}

// UpdateServices replaces the service set of the line item in place. The
// item's unit price is NOT recomputed from the new set; the caller owns
// supplying a matching price alongside a service change.
func (c *Cart) UpdateServices(id string, services []laundry.ServiceType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, li := range c.items {
		if li.ID == id {
			li.Services = append([]laundry.ServiceType(nil), services...)
			break
		}
	}
	c.recompute()
}

// Clear empties the cart and resets every derived total to zero. The
// configured delivery charge is retained for future use.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.recompute()
}

// SetDeliveryCharge updates the flat delivery fee. The fee only shows up in
// the grand total while the cart is non-empty.
func (c *Cart) SetDeliveryCharge(charge int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.deliveryCharge = charge
	c.recompute()
}

// recompute refreshes the derived totals. Callers must hold c.mu. The grand
// total is exactly zero for an empty cart; the delivery charge is never
// billed on its own.
func (c *Cart) recompute() {
	total := 0
	count := 0
	for _, li := range c.items {
		total += li.UnitPrice * li.Quantity
		count += li.Quantity
	}

	c.itemsTotal = total
	c.itemCount = count
	if len(c.items) > 0 {
		c.grandTotal = total + c.deliveryCharge
	} else {
		c.grandTotal = 0
	}
}

// Snapshot returns a copy of the cart's items and totals.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LineItem, 0, len(c.items))
	for _, li := range c.items {
		cp := *li
		cp.Services = append([]laundry.ServiceType(nil), li.Services...)
		items = append(items, cp)
	}

	return Snapshot{
		Items:          items,
		DeliveryCharge: c.deliveryCharge,
		ItemsTotal:     c.itemsTotal,
		GrandTotal:     c.grandTotal,
		ItemCount:      c.itemCount,
	}
}

// ItemsTotal returns the sum of quantity times unit price over all items.
func (c *Cart) ItemsTotal() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemsTotal
}

// GrandTotal returns items total plus delivery charge, or zero when empty.
func (c *Cart) GrandTotal() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grandTotal
}

// ItemCount returns the sum of quantities over all line items.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemCount
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
