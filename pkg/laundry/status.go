package laundry

// OrderStatus values must match the backend enum. The five non-cancelled
// statuses form a strict linear chain.
type OrderStatus string

const (
	StatusRequested      OrderStatus = "requested"
	StatusPickedUp       OrderStatus = "picked_up"
	StatusInLaundry      OrderStatus = "in_laundry"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the six known statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusRequested, StatusPickedUp, StatusInLaundry,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// deliveryFlow is the fixed progression a delivery agent walks an order
// through. Delivered and cancelled are terminal.
var deliveryFlow = map[OrderStatus]OrderStatus{
	StatusRequested:      StatusPickedUp,
	StatusPickedUp:       StatusInLaundry,
	StatusInLaundry:      StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

// NextDeliveryStatus returns the status a delivery agent should set next.
// ok is false for the terminal statuses (delivered, cancelled); callers must
// treat that as "no action available". The function is pure; persisting the
// transition is the order API's job.
func NextDeliveryStatus(current OrderStatus) (OrderStatus, bool) {
	next, ok := deliveryFlow[current]
	return next, ok
}

// Terminal reports whether no further delivery transition exists from s.
func Terminal(s OrderStatus) bool {
	return s == StatusDelivered || s == StatusCancelled
}
