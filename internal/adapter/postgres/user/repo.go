// Package user implements the staff user repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kayamedia/newsroom-backend/internal/adapter/postgres"
	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// Repo provides staff user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, name, password_hash, staff_role, active, created_at, updated_at`

const createUserSQL = `
INSERT INTO users (email, username, name, password_hash, staff_role)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns

const getUserByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getUserByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const listUsersSQL = `
SELECT ` + userColumns + `
FROM users
ORDER BY created_at
LIMIT $1 OFFSET $2`

const updateUserRoleSQL = `
UPDATE users
SET staff_role = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const setUserActiveSQL = `
UPDATE users
SET active = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

// Create inserts a new staff user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createUserSQL, u.Email, u.Username, u.Name, u.PasswordHash, u.StaffRole)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	return u, nil
}

// GetByEmail returns a user by email. The login lookup.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// List returns staff users in creation order.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listUsersSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateRole changes a user's staff role.
func (r *Repo) UpdateRole(ctx context.Context, userID uuid.UUID, role domain.StaffRole) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateUserRoleSQL, userID, role))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	return u, nil
}

// SetActive enables or disables a user account. Disabled accounts keep their
// rows so the audit trail stays resolvable.
func (r *Repo) SetActive(ctx context.Context, userID uuid.UUID, active bool) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, setUserActiveSQL, userID, active))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.Name, &u.PasswordHash,
		&u.StaffRole, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
