package order

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/maheenur13/laundry-lab-frontend/internal/logger"
	"github.com/maheenur13/laundry-lab-frontend/internal/user"
	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

const defaultPageSize = 20

// Pricer is the slice of the catalog the order service needs to price and
// validate order lines.
type Pricer interface {
	GetClothingItem(ctx context.Context, id string) (*laundry.ClothingItem, error)
	UnitPrice(ctx context.Context, clothingItemID string, category laundry.Category, services []laundry.ServiceType) (int, error)
}

// UserDirectory resolves users when assigning delivery personnel.
type UserDirectory interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// Actor identifies who is performing an operation; handlers build it from the
// authenticated request context.
type Actor struct {
	UserID string
	Role   laundry.Role
}

type Service interface {
	Create(ctx context.Context, customerID string, req *laundry.CreateOrderRequest) (*laundry.Order, error)
	GetOrder(ctx context.Context, actor Actor, orderID string) (*laundry.Order, error)
	MyOrders(ctx context.Context, customerID string) ([]*laundry.Order, error)
	AssignedOrders(ctx context.Context, deliveryPersonID string) ([]*laundry.Order, error)
	UnassignedOrders(ctx context.Context) ([]*laundry.Order, error)
	AllOrders(ctx context.Context, status laundry.OrderStatus, page int) (*laundry.OrderPage, error)
	UpdateStatus(ctx context.Context, actor Actor, orderID string, status laundry.OrderStatus, note string) (*laundry.Order, error)
	AssignDelivery(ctx context.Context, orderID, deliveryPersonID string) (*laundry.Order, error)
	Stats(ctx context.Context) (*laundry.OrderStats, error)
}

type service struct {
	repo           Repository
	pricer         Pricer
	users          UserDirectory
	deliveryCharge int
}

func NewService(repo Repository, pricer Pricer, users UserDirectory, deliveryCharge int) Service {
	return &service{repo: repo, pricer: pricer, users: users, deliveryCharge: deliveryCharge}
}

// Create prices every requested line from the catalog and persists the order
// in the requested state. Client-side prices are never trusted.
func (s *service) Create(ctx context.Context, customerID string, req *laundry.CreateOrderRequest) (*laundry.Order, error) {
	log := logger.FromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	o := &Order{
		CustomerID:          customerID,
		DeliveryCharge:      s.deliveryCharge,
		PickupAddress:       req.PickupAddress,
		Status:              laundry.StatusRequested,
		Notes:               req.Notes,
		ScheduledPickupTime: req.ScheduledPickupTime,
	}

	// delivery defaults to the pickup location
	if req.DeliveryAddress != nil {
		o.DeliveryAddress = *req.DeliveryAddress
	} else {
		o.DeliveryAddress = req.PickupAddress
	}

	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if len(line.Services) == 0 {
			return nil, ErrNoServices
		}

		item, err := s.pricer.GetClothingItem(ctx, line.ClothingItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, ErrUnknownItem
		}
		for _, svc := range line.Services {
			if !slices.Contains(item.AvailableServices, svc) {
				return nil, ErrServiceUnavailable
			}
		}

		unitPrice, err := s.pricer.UnitPrice(ctx, line.ClothingItemID, line.Category, line.Services)
		if err != nil {
			return nil, err
		}

		subtotal := unitPrice * line.Quantity
		o.ItemsTotal += subtotal
		o.Items = append(o.Items, Item{
			ClothingItemID:   line.ClothingItemID,
			ClothingItemName: item.Name.En,
			Category:         line.Category,
			Services:         line.Services,
			Quantity:         line.Quantity,
			UnitPrice:        unitPrice,
			Subtotal:         subtotal,
		})
	}

	o.GrandTotal = o.ItemsTotal + o.DeliveryCharge
	o.History = []laundry.StatusHistoryEntry{{
		Status:    laundry.StatusRequested,
		Timestamp: time.Now(),
		UpdatedBy: customerID,
	}}

	created, err := s.repo.Create(ctx, o)
	if err != nil {
		log.Error("failed to create order", zap.String("customer_id", customerID), zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.String("order_id", created.ID),
		zap.String("customer_id", customerID),
		zap.Int("grand_total", created.GrandTotal),
	)
	return ToAPI(created), nil
}

// GetOrder enforces per-role visibility: customers see their own orders,
// delivery people see orders assigned to them or still unassigned, admins
// see everything.
func (s *service) GetOrder(ctx context.Context, actor Actor, orderID string) (*laundry.Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	switch actor.Role {
	case laundry.RoleAdmin:
	case laundry.RoleCustomer:
		if o.CustomerID != actor.UserID {
			return nil, ErrForbidden
		}
	case laundry.RoleDelivery:
		assigned := o.DeliveryPersonID != nil && *o.DeliveryPersonID == actor.UserID
		if !assigned && o.DeliveryPersonID != nil {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}

	return ToAPI(o), nil
}

func (s *service) MyOrders(ctx context.Context, customerID string) ([]*laundry.Order, error) {
	orders, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return ToAPIList(orders), nil
}

func (s *service) AssignedOrders(ctx context.Context, deliveryPersonID string) ([]*laundry.Order, error) {
	orders, err := s.repo.ListByDeliveryPerson(ctx, deliveryPersonID)
	if err != nil {
		return nil, err
	}
	return ToAPIList(orders), nil
}

func (s *service) UnassignedOrders(ctx context.Context) ([]*laundry.Order, error) {
	orders, err := s.repo.ListUnassigned(ctx)
	if err != nil {
		return nil, err
	}
	return ToAPIList(orders), nil
}

func (s *service) AllOrders(ctx context.Context, status laundry.OrderStatus, page int) (*laundry.OrderPage, error) {
	if status != "" && !laundry.ValidStatus(status) {
		return nil, ErrInvalidTransition
	}
	if page < 1 {
		page = 1
	}

	orders, total, err := s.repo.ListAll(ctx, status, page, defaultPageSize)
	if err != nil {
		return nil, err
	}

	totalPages := (total + defaultPageSize - 1) / defaultPageSize
	return &laundry.OrderPage{
		Orders:     ToAPIList(orders),
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus applies the role-specific transition rules:
//   - delivery people advance their assigned orders one step along the
//     pipeline, nothing else
//   - customers may cancel their own order while it is still requested
//   - admins advance any order along the pipeline or cancel it before it
//     reaches a terminal state
func (s *service) UpdateStatus(ctx context.Context, actor Actor, orderID string, status laundry.OrderStatus, note string) (*laundry.Order, error) {
	log := logger.FromCtx(ctx)

	if !laundry.ValidStatus(status) {
		return nil, ErrInvalidTransition
	}

	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if laundry.Terminal(o.Status) {
		return nil, ErrOrderTerminal
	}

	switch actor.Role {
	case laundry.RoleDelivery:
		if o.DeliveryPersonID == nil || *o.DeliveryPersonID != actor.UserID {
			return nil, ErrForbidden
		}
		next, ok := laundry.NextDeliveryStatus(o.Status)
		if !ok || status != next {
			return nil, ErrInvalidTransition
		}
	case laundry.RoleCustomer:
		if o.CustomerID != actor.UserID {
			return nil, ErrForbidden
		}
		if status != laundry.StatusCancelled || o.Status != laundry.StatusRequested {
			return nil, ErrInvalidTransition
		}
	case laundry.RoleAdmin:
		if status != laundry.StatusCancelled {
			next, ok := laundry.NextDeliveryStatus(o.Status)
			if !ok || status != next {
				return nil, ErrInvalidTransition
			}
		}
	default:
		return nil, ErrForbidden
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, status, laundry.StatusHistoryEntry{
		Status:    status,
		Timestamp: time.Now(),
		Note:      note,
		UpdatedBy: actor.UserID,
	})
	if err != nil {
		log.Error("failed to update order status", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}

	log.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("from", string(o.Status)),
		zap.String("to", string(status)),
		zap.String("updated_by", actor.UserID),
	)
	return ToAPI(updated), nil
}

// AssignDelivery hands an order to a delivery person. The target account must
// exist and carry the delivery role; terminal orders cannot be assigned.
func (s *service) AssignDelivery(ctx context.Context, orderID, deliveryPersonID string) (*laundry.Order, error) {
	log := logger.FromCtx(ctx)

	dp, err := s.users.FindByID(ctx, deliveryPersonID)
	if err != nil {
		return nil, err
	}
	if dp == nil || dp.Role != laundry.RoleDelivery {
		return nil, ErrNotDeliveryPerson
	}

	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if laundry.Terminal(o.Status) {
		return nil, ErrOrderTerminal
	}

	updated, err := s.repo.AssignDelivery(ctx, orderID, deliveryPersonID)
	if err != nil {
		log.Error("failed to assign delivery person", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}

	log.Info("delivery person assigned",
		zap.String("order_id", orderID),
		zap.String("delivery_person_id", deliveryPersonID),
	)
	return ToAPI(updated), nil
}

func (s *service) Stats(ctx context.Context) (*laundry.OrderStats, error) {
	return s.repo.Stats(ctx)
}
