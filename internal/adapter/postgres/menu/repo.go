// Package menu implements the navigation menu repository using PostgreSQL.
package menu

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kayamedia/newsroom-backend/internal/adapter/postgres"
	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// Repo provides menu item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new menu repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const menuColumns = `id, label, url, parent_id, position, active, created_at, updated_at`

const createMenuItemSQL = `
INSERT INTO menu_items (label, url, parent_id, position, active)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + menuColumns

const getMenuItemByIDSQL = `
SELECT ` + menuColumns + `
FROM menu_items
WHERE id = $1`

const listMenuItemsSQL = `
SELECT ` + menuColumns + `
FROM menu_items
ORDER BY position`

const listActiveMenuItemsSQL = `
SELECT ` + menuColumns + `
FROM menu_items
WHERE active
ORDER BY position`

const deleteMenuItemSQL = `DELETE FROM menu_items WHERE id = $1`

// Create inserts a new menu item.
func (r *Repo) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createMenuItemSQL, item.Label, item.URL, item.ParentID, item.Position, item.Active)
	created, err := scanMenuItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "menu item", uuid.Nil)
	}
	return created, nil
}

// GetByID returns a menu item by primary key.
func (r *Repo) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanMenuItem(q.QueryRow(ctx, getMenuItemByIDSQL, itemID))
	if err != nil {
		return nil, postgres.MapError(err, "menu item", itemID)
	}
	return item, nil
}

// List returns all menu items as a flat list ordered by position.
func (r *Repo) List(ctx context.Context, activeOnly bool) ([]*domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := listMenuItemsSQL
	if activeOnly {
		query = listActiveMenuItemsSQL
	}

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := []*domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update applies the non-nil fields of params to a menu item.
func (r *Repo) Update(ctx context.Context, itemID uuid.UUID, params domain.MenuItemUpdateParams) (*domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Update("menu_items").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": itemID}).
		Suffix("RETURNING " + menuColumns).
		PlaceholderFormat(sq.Dollar)

	if params.Label != nil {
		builder = builder.Set("label", *params.Label)
	}
	if params.URL != nil {
		builder = builder.Set("url", *params.URL)
	}
	if params.ParentID != nil {
		builder = builder.Set("parent_id", *params.ParentID)
	}
	if params.Position != nil {
		builder = builder.Set("position", *params.Position)
	}
	if params.Active != nil {
		builder = builder.Set("active", *params.Active)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build menu item update query: %w", err)
	}

	item, err := scanMenuItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "menu item", itemID)
	}
	return item, nil
}

// Delete removes a menu item and, via cascade, its children.
func (r *Repo) Delete(ctx context.Context, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteMenuItemSQL, itemID)
	if err != nil {
		return postgres.MapError(err, "menu item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

func scanMenuItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(
		&item.ID, &item.Label, &item.URL, &item.ParentID,
		&item.Position, &item.Active, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
