package order

import (
	"github.com/maheenur13/laundry-lab-frontend/internal/user"
	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// ToAPI maps a stored order onto the wire type. Loaded relations come out
// expanded; a missing delivery person is omitted entirely.
func ToAPI(o *Order) *laundry.Order {
	if o == nil {
		return nil
	}

	out := &laundry.Order{
		ID:       o.ID,
		Customer: partyRef(o.CustomerID, o.Customer),
		Pricing: laundry.OrderPricing{
			ItemsTotal:     o.ItemsTotal,
			DeliveryCharge: o.DeliveryCharge,
			GrandTotal:     o.GrandTotal,
		},
		PickupAddress:         o.PickupAddress,
		DeliveryAddress:       o.DeliveryAddress,
		Status:                o.Status,
		StatusHistory:         o.History,
		Notes:                 o.Notes,
		ScheduledPickupTime:   o.ScheduledPickupTime,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}

	if o.DeliveryPersonID != nil {
		ref := partyRef(*o.DeliveryPersonID, o.DeliveryPerson)
		out.DeliveryPerson = &ref
	}

	out.Items = make([]laundry.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		out.Items = append(out.Items, laundry.OrderItem{
			ClothingItemID:   it.ClothingItemID,
			ClothingItemName: it.ClothingItemName,
			Category:         it.Category,
			Services:         it.Services,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			Subtotal:         it.Subtotal,
		})
	}

	return out
}

func ToAPIList(orders []*Order) []*laundry.Order {
	out := make([]*laundry.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToAPI(o))
	}
	return out
}

func partyRef(id string, u *user.User) laundry.PartyRef {
	if u != nil {
		return laundry.ExpandedParty(user.ToAPI(u))
	}
	return laundry.UnexpandedParty(id)
}
