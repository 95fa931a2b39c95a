// Package category implements the category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kayamedia/newsroom-backend/internal/adapter/postgres"
	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const categoryColumns = `id, name, slug, created_at, updated_at`

const createCategorySQL = `
INSERT INTO categories (name, slug)
VALUES ($1, $2)
RETURNING ` + categoryColumns

const getCategoryByIDSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1`

const listCategoriesSQL = `
SELECT ` + categoryColumns + `
FROM categories
ORDER BY name`

const deleteCategorySQL = `DELETE FROM categories WHERE id = $1`

// Create inserts a new category and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanCategory(q.QueryRow(ctx, createCategorySQL, c.Name, c.Slug))
	if err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}
	return created, nil
}

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(q.QueryRow(ctx, getCategoryByIDSQL, categoryID))
	if err != nil {
		return nil, postgres.MapError(err, "category", categoryID)
	}
	return c, nil
}

// List returns all categories ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Delete removes a category. The service checks for referencing stories
// first; a concurrent insert still surfaces as an FK error here.
func (r *Repo) Delete(ctx context.Context, categoryID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteCategorySQL, categoryID)
	if err != nil {
		return postgres.MapError(err, "category", categoryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
