package order

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/maheenur13/laundry-lab-frontend/internal/user"
	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

type Repository interface {
	Create(ctx context.Context, o *Order) (*Order, error)
	FindByID(ctx context.Context, id string) (*Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*Order, error)
	ListByDeliveryPerson(ctx context.Context, deliveryPersonID string) ([]*Order, error)
	ListUnassigned(ctx context.Context) ([]*Order, error)
	ListAll(ctx context.Context, status laundry.OrderStatus, page, perPage int) ([]*Order, int, error)
	UpdateStatus(ctx context.Context, id string, status laundry.OrderStatus, entry laundry.StatusHistoryEntry) (*Order, error)
	AssignDelivery(ctx context.Context, id, deliveryPersonID string) (*Order, error)
	Stats(ctx context.Context) (*laundry.OrderStats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Orders are selected with both user relations joined; cu_/dp_ prefixed
// aliases keep the scan order stable.
const orderSelect = `
	SELECT o.id, o.customer_id, o.delivery_person_id,
	       o.items_total, o.delivery_charge, o.grand_total,
	       o.pickup_address, o.pickup_landmark, o.pickup_contact_phone,
	       o.delivery_address, o.delivery_landmark, o.delivery_contact_phone,
	       o.status, o.notes, o.scheduled_pickup_time, o.estimated_delivery_time,
	       o.created_at, o.updated_at,
	       cu.id, cu.full_name, cu.phone_number, cu.address, cu.role, cu.is_verified, cu.created_at, cu.updated_at,
	       dp.id, dp.full_name, dp.phone_number, dp.address, dp.role, dp.is_verified, dp.created_at, dp.updated_at
	FROM orders o
	JOIN users cu ON cu.id = o.customer_id
	LEFT JOIN users dp ON dp.id = o.delivery_person_id
`

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row scannable) (*Order, error) {
	var o Order
	var cu user.User
	var dpID, dpName, dpPhone, dpAddress, dpRole sql.NullString
	var dpVerified sql.NullBool
	var dpCreated, dpUpdated sql.NullTime

	err := row.Scan(
		&o.ID, &o.CustomerID, &o.DeliveryPersonID,
		&o.ItemsTotal, &o.DeliveryCharge, &o.GrandTotal,
		&o.PickupAddress.FullAddress, &o.PickupAddress.Landmark, &o.PickupAddress.ContactPhone,
		&o.DeliveryAddress.FullAddress, &o.DeliveryAddress.Landmark, &o.DeliveryAddress.ContactPhone,
		&o.Status, &o.Notes, &o.ScheduledPickupTime, &o.EstimatedDeliveryTime,
		&o.CreatedAt, &o.UpdatedAt,
		&cu.ID, &cu.FullName, &cu.PhoneNumber, &cu.Address, &cu.Role, &cu.IsVerified, &cu.CreatedAt, &cu.UpdatedAt,
		&dpID, &dpName, &dpPhone, &dpAddress, &dpRole, &dpVerified, &dpCreated, &dpUpdated,
	)
	if err != nil {
		return nil, err
	}

	o.Customer = &cu
	if dpID.Valid {
		o.DeliveryPerson = &user.User{
			ID: dpID.String, FullName: dpName.String, PhoneNumber: dpPhone.String,
			Address: dpAddress.String, Role: laundry.Role(dpRole.String), IsVerified: dpVerified.Bool,
			CreatedAt: dpCreated.Time, UpdatedAt: dpUpdated.Time,
		}
	}
	return &o, nil
}

func (r *repository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachRelations(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachRelations batch-loads items and status history for a set of orders.
func (r *repository) attachRelations(ctx context.Context, orders []*Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[string]*Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, clothing_item_id, clothing_item_name, category, services, quantity, unit_price, subtotal
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var it Item
		var services pq.StringArray
		err := itemRows.Scan(
			&it.ID, &it.OrderID, &it.ClothingItemID, &it.ClothingItemName,
			&it.Category, &services, &it.Quantity, &it.UnitPrice, &it.Subtotal,
		)
		if err != nil {
			return err
		}
		for _, s := range services {
			it.Services = append(it.Services, laundry.ServiceType(s))
		}
		byID[it.OrderID].Items = append(byID[it.OrderID].Items, it)
	}
	if err := itemRows.Err(); err != nil {
		return err
	}

	histRows, err := r.db.QueryContext(ctx, `
		SELECT order_id, status, note, updated_by, created_at
		FROM status_history
		WHERE order_id = ANY($1)
		ORDER BY created_at, id
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer histRows.Close()

	for histRows.Next() {
		var orderID string
		var entry laundry.StatusHistoryEntry
		if err := histRows.Scan(&orderID, &entry.Status, &entry.Note, &entry.UpdatedBy, &entry.Timestamp); err != nil {
			return err
		}
		byID[orderID].History = append(byID[orderID].History, entry)
	}
	return histRows.Err()
}

func (r *repository) Create(ctx context.Context, o *Order) (*Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			customer_id, items_total, delivery_charge, grand_total,
			pickup_address, pickup_landmark, pickup_contact_phone,
			delivery_address, delivery_landmark, delivery_contact_phone,
			status, notes, scheduled_pickup_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`,
		o.CustomerID, o.ItemsTotal, o.DeliveryCharge, o.GrandTotal,
		o.PickupAddress.FullAddress, o.PickupAddress.Landmark, o.PickupAddress.ContactPhone,
		o.DeliveryAddress.FullAddress, o.DeliveryAddress.Landmark, o.DeliveryAddress.ContactPhone,
		o.Status, o.Notes, o.ScheduledPickupTime,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	for _, it := range o.Items {
		var services []string
		for _, s := range it.Services {
			services = append(services, string(s))
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, clothing_item_id, clothing_item_name, category, services, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, id, it.ClothingItemID, it.ClothingItemName, it.Category, pq.Array(services), it.Quantity, it.UnitPrice, it.Subtotal)
		if err != nil {
			return nil, err
		}
	}

	for _, entry := range o.History {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO status_history (order_id, status, note, updated_by, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, id, entry.Status, entry.Note, entry.UpdatedBy, entry.Timestamp)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, orderSelect+` WHERE o.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachRelations(ctx, []*Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID string) ([]*Order, error) {
	return r.queryOrders(ctx, orderSelect+`
		WHERE o.customer_id = $1
		ORDER BY o.created_at DESC
	`, customerID)
}

func (r *repository) ListByDeliveryPerson(ctx context.Context, deliveryPersonID string) ([]*Order, error) {
	return r.queryOrders(ctx, orderSelect+`
		WHERE o.delivery_person_id = $1
		ORDER BY o.created_at DESC
	`, deliveryPersonID)
}

func (r *repository) ListUnassigned(ctx context.Context) ([]*Order, error) {
	return r.queryOrders(ctx, orderSelect+`
		WHERE o.delivery_person_id IS NULL
		  AND o.status NOT IN ('delivered', 'cancelled')
		ORDER BY o.created_at
	`)
}

func (r *repository) ListAll(ctx context.Context, status laundry.OrderStatus, page, perPage int) ([]*Order, int, error) {
	countQuery := `SELECT COUNT(*) FROM orders`
	listQuery := orderSelect
	var args []interface{}

	if status != "" {
		countQuery += ` WHERE status = $1`
		listQuery += ` WHERE o.status = $1`
		args = append(args, status)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	listQuery += ` ORDER BY o.created_at DESC`
	if status != "" {
		listQuery += ` LIMIT $2 OFFSET $3`
	} else {
		listQuery += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, perPage, offset)

	orders, err := r.queryOrders(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status laundry.OrderStatus, entry laundry.StatusHistoryEntry) (*Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO status_history (order_id, status, note, updated_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, entry.Status, entry.Note, entry.UpdatedBy, entry.Timestamp)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *repository) AssignDelivery(ctx context.Context, id, deliveryPersonID string) (*Order, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET delivery_person_id = $1, updated_at = NOW()
		WHERE id = $2
	`, deliveryPersonID, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *repository) Stats(ctx context.Context) (*laundry.OrderStats, error) {
	var s laundry.OrderStats
	today := time.Now().Truncate(24 * time.Hour)

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'requested'),
		       COUNT(*) FILTER (WHERE status IN ('picked_up', 'in_laundry', 'out_for_delivery')),
		       COUNT(*) FILTER (WHERE status = 'delivered'),
		       COUNT(*) FILTER (WHERE status = 'cancelled'),
		       COUNT(*) FILTER (WHERE created_at >= $1),
		       COALESCE(SUM(grand_total) FILTER (WHERE created_at >= $1 AND status != 'cancelled'), 0)
		FROM orders
	`, today).Scan(
		&s.TotalOrders, &s.PendingOrders, &s.InProgressOrders,
		&s.CompletedOrders, &s.CancelledOrders, &s.TodayOrders, &s.TodayRevenue,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
