package catalog

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

type Repository interface {
	ListClothingItems(ctx context.Context, category laundry.Category) ([]*ClothingItem, error)
	FindClothingItem(ctx context.Context, id string) (*ClothingItem, error)
	ListServices(ctx context.Context) ([]*LaundryService, error)
	ListPricing(ctx context.Context) ([]*Pricing, error)
	FindPrice(ctx context.Context, clothingItemID string, serviceType laundry.ServiceType, category laundry.Category) (int, error)
	Seed(ctx context.Context, items []*ClothingItem, services []*LaundryService, pricing []*Pricing) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListClothingItems(ctx context.Context, category laundry.Category) ([]*ClothingItem, error) {
	query := `
		SELECT id, name_en, name_bn, category, icon, available_services, is_active, created_at, updated_at
		FROM clothing_items
		WHERE is_active = TRUE
	`
	args := []interface{}{}
	if category != "" {
		query += ` AND category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY name_en`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*ClothingItem
	for rows.Next() {
		var it ClothingItem
		var services pq.StringArray
		err := rows.Scan(
			&it.ID, &it.NameEN, &it.NameBN, &it.Category, &it.Icon,
			&services, &it.IsActive, &it.CreatedAt, &it.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		for _, s := range services {
			it.AvailableServices = append(it.AvailableServices, laundry.ServiceType(s))
		}
		items = append(items, &it)
	}

	return items, rows.Err()
}

func (r *repository) FindClothingItem(ctx context.Context, id string) (*ClothingItem, error) {
	var it ClothingItem
	var services pq.StringArray
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name_en, name_bn, category, icon, available_services, is_active, created_at, updated_at
		FROM clothing_items
		WHERE id = $1 AND is_active = TRUE
	`, id).Scan(
		&it.ID, &it.NameEN, &it.NameBN, &it.Category, &it.Icon,
		&services, &it.IsActive, &it.CreatedAt, &it.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for _, s := range services {
		it.AvailableServices = append(it.AvailableServices, laundry.ServiceType(s))
	}
	return &it, nil
}

func (r *repository) ListServices(ctx context.Context) ([]*LaundryService, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name_en, name_bn, type, description, icon, is_active, created_at, updated_at
		FROM services
		WHERE is_active = TRUE
		ORDER BY type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*LaundryService
	for rows.Next() {
		var s LaundryService
		err := rows.Scan(
			&s.ID, &s.NameEN, &s.NameBN, &s.Type, &s.Description,
			&s.Icon, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		services = append(services, &s)
	}

	return services, rows.Err()
}

func (r *repository) ListPricing(ctx context.Context) ([]*Pricing, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, clothing_item_id, service_type, category, price, is_active, created_at, updated_at
		FROM pricing
		WHERE is_active = TRUE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pricing []*Pricing
	for rows.Next() {
		var p Pricing
		err := rows.Scan(
			&p.ID, &p.ClothingItemID, &p.ServiceType, &p.Category,
			&p.Price, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		pricing = append(pricing, &p)
	}

	return pricing, rows.Err()
}

func (r *repository) FindPrice(ctx context.Context, clothingItemID string, serviceType laundry.ServiceType, category laundry.Category) (int, error) {
	var price int
	err := r.db.QueryRowContext(ctx, `
		SELECT price
		FROM pricing
		WHERE clothing_item_id = $1 AND service_type = $2 AND category = $3 AND is_active = TRUE
	`, clothingItemID, serviceType, category).Scan(&price)
	if err == sql.ErrNoRows {
		return 0, ErrPriceNotFound
	}
	if err != nil {
		return 0, err
	}
	return price, nil
}

// Seed replaces the whole catalog inside one transaction. Existing rows are
// upserted by id so re-seeding is safe.
func (r *repository) Seed(ctx context.Context, items []*ClothingItem, services []*LaundryService, pricing []*Pricing) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, it := range items {
		var svcs []string
		for _, s := range it.AvailableServices {
			svcs = append(svcs, string(s))
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO clothing_items (id, name_en, name_bn, category, icon, available_services, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				name_en = EXCLUDED.name_en,
				name_bn = EXCLUDED.name_bn,
				category = EXCLUDED.category,
				icon = EXCLUDED.icon,
				available_services = EXCLUDED.available_services,
				is_active = EXCLUDED.is_active,
				updated_at = NOW()
		`, it.ID, it.NameEN, it.NameBN, it.Category, it.Icon, pq.Array(svcs), it.IsActive)
		if err != nil {
			return err
		}
	}

	for _, s := range services {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO services (id, name_en, name_bn, type, description, icon, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				name_en = EXCLUDED.name_en,
				name_bn = EXCLUDED.name_bn,
				type = EXCLUDED.type,
				description = EXCLUDED.description,
				icon = EXCLUDED.icon,
				is_active = EXCLUDED.is_active,
				updated_at = NOW()
		`, s.ID, s.NameEN, s.NameBN, s.Type, s.Description, s.Icon, s.IsActive)
		if err != nil {
			return err
		}
	}

	for _, p := range pricing {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO pricing (id, clothing_item_id, service_type, category, price, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				price = EXCLUDED.price,
				is_active = EXCLUDED.is_active,
				updated_at = NOW()
		`, p.ID, p.ClothingItemID, p.ServiceType, p.Category, p.Price, p.IsActive)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
