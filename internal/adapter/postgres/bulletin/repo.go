// Package bulletin implements the bulletin repository using PostgreSQL.
// The running order lives in bulletin_stories; ReplaceStories rewrites it
// atomically and is expected to run inside a caller-managed transaction.
package bulletin

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kayamedia/newsroom-backend/internal/adapter/postgres"
	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// Repo provides bulletin persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bulletin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const bulletinColumns = `id, title, status, language, author_id, reviewer_id,
	scheduled_for, published_at, revision_returns_to, rejection_reason,
	version, created_at, updated_at`

const createBulletinSQL = `
INSERT INTO bulletins (title, language, author_id, scheduled_for)
VALUES ($1, $2, $3, $4)
RETURNING ` + bulletinColumns

const getBulletinByIDSQL = `
SELECT ` + bulletinColumns + `
FROM bulletins
WHERE id = $1`

const listBulletinStoriesSQL = `
SELECT bs.bulletin_id, bs.story_id, bs.position,
       s.id, s.title, s.slug, s.content, s.summary, s.status, s.priority, s.language,
       s.author_id, s.reviewer_id, s.assigned_to_id, s.category_id, s.published_at,
       s.original_story_id, s.revision_returns_to, s.rejection_reason,
       s.translations_skipped, s.version, s.created_at, s.updated_at
FROM bulletin_stories bs
JOIN stories s ON s.id = bs.story_id
WHERE bs.bulletin_id = $1
ORDER BY bs.position`

const updateBulletinWorkflowSQL = `
UPDATE bulletins
SET status = $3,
    reviewer_id = $4,
    rejection_reason = $5,
    revision_returns_to = $6,
    published_at = $7,
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + bulletinColumns

const bulletinVersionSQL = `SELECT version FROM bulletins WHERE id = $1`

const touchBulletinSQL = `
UPDATE bulletins
SET version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + bulletinColumns

const deleteBulletinSQL = `DELETE FROM bulletins WHERE id = $1`

const clearBulletinStoriesSQL = `DELETE FROM bulletin_stories WHERE bulletin_id = $1`

// Create inserts a new bulletin in DRAFT status.
func (r *Repo) Create(ctx context.Context, b *domain.Bulletin) (*domain.Bulletin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanBulletin(q.QueryRow(ctx, createBulletinSQL, b.Title, b.Language, b.AuthorID, b.ScheduledFor))
	if err != nil {
		return nil, postgres.MapError(err, "bulletin", uuid.Nil)
	}
	return created, nil
}

// GetByID returns a bulletin with its running order populated.
func (r *Repo) GetByID(ctx context.Context, bulletinID uuid.UUID) (*domain.Bulletin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBulletin(q.QueryRow(ctx, getBulletinByIDSQL, bulletinID))
	if err != nil {
		return nil, postgres.MapError(err, "bulletin", bulletinID)
	}

	b.Stories, err = r.listStories(ctx, bulletinID)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List returns bulletins matching the filter, newest first. The running
// order is not populated on list reads.
func (r *Repo) List(ctx context.Context, status *domain.BulletinStatus, language *string, limit, offset int) ([]*domain.Bulletin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(bulletinColumns).
		From("bulletins").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if status != nil {
		builder = builder.Where(sq.Eq{"status": *status})
	}
	if language != nil {
		builder = builder.Where(sq.Eq{"language": *language})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bulletin list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bulletins: %w", err)
	}
	defer rows.Close()

	bulletins := []*domain.Bulletin{}
	for rows.Next() {
		b, err := scanBulletin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bulletin row: %w", err)
		}
		bulletins = append(bulletins, b)
	}
	return bulletins, rows.Err()
}

// UpdateContent updates the mutable content fields. CAS on version.
func (r *Repo) UpdateContent(ctx context.Context, bulletinID uuid.UUID, expectedVersion int, params domain.BulletinUpdateParams) (*domain.Bulletin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Update("bulletins").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": bulletinID, "version": expectedVersion}).
		Suffix("RETURNING " + bulletinColumns).
		PlaceholderFormat(sq.Dollar)

	if params.Title != nil {
		builder = builder.Set("title", *params.Title)
	}
	if params.Language != nil {
		builder = builder.Set("language", *params.Language)
	}
	if params.ScheduledFor != nil {
		builder = builder.Set("scheduled_for", *params.ScheduledFor)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bulletin update query: %w", err)
	}

	b, err := scanBulletin(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, r.casError(ctx, err, bulletinID)
	}
	return b, nil
}

// UpdateWorkflow writes the full workflow column set with a CAS on version.
func (r *Repo) UpdateWorkflow(ctx context.Context, bulletinID uuid.UUID, expectedVersion int, state domain.BulletinWorkflowState) (*domain.Bulletin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateBulletinWorkflowSQL,
		bulletinID, expectedVersion,
		state.Status, state.ReviewerID, state.RejectionReason,
		state.RevisionReturnsTo, state.PublishedAt,
	)

	b, err := scanBulletin(row)
	if err != nil {
		return nil, r.casError(ctx, err, bulletinID)
	}
	return b, nil
}

// ReplaceStories rewrites the running order in one delete-and-insert pass
// and bumps the bulletin version with a CAS. Run inside RunInTx so a failed
// insert never leaves the order half-written.
func (r *Repo) ReplaceStories(ctx context.Context, bulletinID uuid.UUID, expectedVersion int, items []domain.ReorderItem) (*domain.Bulletin, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBulletin(q.QueryRow(ctx, touchBulletinSQL, bulletinID, expectedVersion))
	if err != nil {
		return nil, r.casError(ctx, err, bulletinID)
	}

	if _, err := q.Exec(ctx, clearBulletinStoriesSQL, bulletinID); err != nil {
		return nil, postgres.MapError(err, "bulletin", bulletinID)
	}

	if len(items) > 0 {
		builder := sq.Insert("bulletin_stories").
			Columns("bulletin_id", "story_id", "position").
			PlaceholderFormat(sq.Dollar)
		for _, it := range items {
			builder = builder.Values(bulletinID, it.StoryID, it.Position)
		}

		sql, args, err := builder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("build running order insert: %w", err)
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return nil, postgres.MapError(err, "bulletin", bulletinID)
		}
	}

	b.Stories, err = r.listStories(ctx, bulletinID)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a bulletin and, via cascade, its running order.
func (r *Repo) Delete(ctx context.Context, bulletinID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteBulletinSQL, bulletinID)
	if err != nil {
		return postgres.MapError(err, "bulletin", bulletinID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bulletin %s: %w", bulletinID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) listStories(ctx context.Context, bulletinID uuid.UUID) ([]domain.BulletinStory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listBulletinStoriesSQL, bulletinID)
	if err != nil {
		return nil, fmt.Errorf("list bulletin stories: %w", err)
	}
	defer rows.Close()

	items := []domain.BulletinStory{}
	for rows.Next() {
		var bs domain.BulletinStory
		var s domain.Story
		err := rows.Scan(
			&bs.BulletinID, &bs.StoryID, &bs.Position,
			&s.ID, &s.Title, &s.Slug, &s.Content, &s.Summary, &s.Status,
			&s.Priority, &s.Language, &s.AuthorID, &s.ReviewerID, &s.AssignedToID,
			&s.CategoryID, &s.PublishedAt, &s.OriginalStoryID, &s.RevisionReturnsTo,
			&s.RejectionReason, &s.TranslationsSkipped, &s.Version,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan bulletin story row: %w", err)
		}
		bs.Story = &s
		items = append(items, bs)
	}
	return items, rows.Err()
}

func (r *Repo) casError(ctx context.Context, err error, bulletinID uuid.UUID) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		return postgres.MapError(err, "bulletin", bulletinID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var version int
	if verErr := q.QueryRow(ctx, bulletinVersionSQL, bulletinID).Scan(&version); verErr != nil {
		return postgres.MapError(verErr, "bulletin", bulletinID)
	}
	return fmt.Errorf("bulletin %s: version mismatch: %w", bulletinID, domain.ErrConflict)
}

func scanBulletin(row pgx.Row) (*domain.Bulletin, error) {
	var b domain.Bulletin
	err := row.Scan(
		&b.ID, &b.Title, &b.Status, &b.Language, &b.AuthorID, &b.ReviewerID,
		&b.ScheduledFor, &b.PublishedAt, &b.RevisionReturnsTo,
		&b.RejectionReason, &b.Version, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
