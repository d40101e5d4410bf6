package cart

import "sync"

// Store keeps one cart per user. The server holds a single Store and hands
// each authenticated request its own cart; carts are created lazily with the
// configured delivery charge.
type Store struct {
	mu             sync.Mutex
	carts          map[string]*Cart
	deliveryCharge int
}

// NewStore returns a Store whose carts start with the given delivery charge.
func NewStore(deliveryCharge int) *Store {
	return &Store{
		carts:          make(map[string]*Cart),
		deliveryCharge: deliveryCharge,
	}
}

// Get returns the user's cart, creating it if needed.
func (s *Store) Get(userID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		c = NewWithDeliveryCharge(s.deliveryCharge)
		s.carts[userID] = c
	}
	return c
}

// Drop discards the user's cart entirely, e.g. after order placement.
func (s *Store) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
