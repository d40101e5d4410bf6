package user

import (
	"context"
	"database/sql"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

type Repository interface {
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, phone string, role laundry.Role) (*User, error)
	CompleteSignup(ctx context.Context, phone, fullName, address string) (*User, error)
	UpdateProfile(ctx context.Context, id string, params UpdateProfileParams) (*User, error)
	ListByRole(ctx context.Context, role laundry.Role) ([]*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `id, full_name, phone_number, address, role, is_verified, created_at, updated_at`

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.FullName, &u.PhoneNumber, &u.Address,
		&u.Role, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByPhone(ctx context.Context, phone string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE phone_number = $1
	`, phone)
	return scanUser(row)
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *repository) Create(ctx context.Context, phone string, role laundry.Role) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (phone_number, role)
		VALUES ($1, $2)
		RETURNING `+userColumns+`
	`, phone, role)
	return scanUser(row)
}

func (r *repository) CompleteSignup(ctx context.Context, phone, fullName, address string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET full_name = $1, address = $2, is_verified = TRUE, updated_at = NOW()
		WHERE phone_number = $3
		RETURNING `+userColumns+`
	`, fullName, address, phone)
	return scanUser(row)
}

func (r *repository) UpdateProfile(ctx context.Context, id string, params UpdateProfileParams) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET full_name = COALESCE($1, full_name),
		    address = COALESCE($2, address),
		    updated_at = NOW()
		WHERE id = $3
		RETURNING `+userColumns+`
	`, params.FullName, params.Address, id)
	return scanUser(row)
}

func (r *repository) ListByRole(ctx context.Context, role laundry.Role) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = $1
		ORDER BY full_name
	`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		var u User
		err := rows.Scan(
			&u.ID, &u.FullName, &u.PhoneNumber, &u.Address,
			&u.Role, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, &u)
	}

	return users, rows.Err()
}
