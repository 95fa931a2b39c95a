// Package story implements the Story repository using PostgreSQL.
// Workflow fields are updated with a compare-and-swap on the version
// column so concurrent transitions against the same story cannot
// silently overwrite each other.
package story

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

// Repo provides story persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new story repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const storyColumns = `id, title, slug, content, summary, status, priority, language,
	author_id, reviewer_id, assigned_to_id, category_id, published_at,
	original_story_id, revision_returns_to, rejection_reason,
	translations_skipped, version, created_at, updated_at`

const createStorySQL = `
INSERT INTO stories (title, slug, content, summary, priority, language, author_id, category_id, original_story_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + storyColumns

const getStoryByIDSQL = `
SELECT ` + storyColumns + `
FROM stories
WHERE id = $1`

const getStoryBySlugSQL = `
SELECT ` + storyColumns + `
FROM stories
WHERE slug = $1`

const updateWorkflowSQL = `
UPDATE stories
SET status = $3,
    reviewer_id = $4,
    assigned_to_id = $5,
    rejection_reason = $6,
    revision_returns_to = $7,
    published_at = $8,
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + storyColumns

const storyVersionSQL = `SELECT version FROM stories WHERE id = $1`

const deleteStorySQL = `DELETE FROM stories WHERE id = $1`

const setTranslationsSkippedSQL = `
UPDATE stories
SET translations_skipped = $3, version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + storyColumns

// Create inserts a new story in DRAFT status and returns the persisted row.
func (r *Repo) Create(ctx context.Context, story *domain.Story) (*domain.Story, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createStorySQL,
		story.Title, story.Slug, story.Content, story.Summary,
		story.Priority, story.Language, story.AuthorID, story.CategoryID,
		story.OriginalStoryID,
	)

	created, err := scanStory(row)
	if err != nil {
		return nil, postgres.MapError(err, "story", story.ID)
	}
	return created, nil
}

// GetByID returns a story by primary key.
func (r *Repo) GetByID(ctx context.Context, storyID uuid.UUID) (*domain.Story, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	story, err := scanStory(q.QueryRow(ctx, getStoryByIDSQL, storyID))
	if err != nil {
		return nil, postgres.MapError(err, "story", storyID)
	}
	return story, nil
}

// GetBySlug returns a story by its unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Story, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	story, err := scanStory(q.QueryRow(ctx, getStoryBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "story", uuid.Nil)
	}
	return story, nil
}

// List returns stories matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.StoryFilter) ([]*domain.Story, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(storyColumns).
		From("stories").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.CategoryID != nil {
		builder = builder.Where(sq.Eq{"category_id": *filter.CategoryID})
	}
	if filter.AuthorID != nil {
		builder = builder.Where(sq.Eq{"author_id": *filter.AuthorID})
	}
	if filter.Language != nil {
		builder = builder.Where(sq.Eq{"language": *filter.Language})
	}
	if filter.Priority != nil {
		builder = builder.Where(sq.Eq{"priority": *filter.Priority})
	}
	if filter.Search != nil {
		builder = builder.Where(sq.ILike{"title": "%" + *filter.Search + "%"})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build story list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()

	return scanStories(rows)
}

// ListPublished returns PUBLISHED stories ordered by publish time, newest
// first. The consumption feed for affiliated stations.
func (r *Repo) ListPublished(ctx context.Context, language string, limit, offset int) ([]*domain.Story, error) {
	status := domain.StoryStatusPublished
	filter := domain.StoryFilter{Status: &status, Limit: limit, Offset: offset}
	if language != "" {
		filter.Language = &language
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(storyColumns).
		From("stories").
		Where(sq.Eq{"status": status}).
		OrderBy("published_at DESC").
		PlaceholderFormat(sq.Dollar)
	if filter.Language != nil {
		builder = builder.Where(sq.Eq{"language": *filter.Language})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build published story query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list published stories: %w", err)
	}
	defer rows.Close()

	return scanStories(rows)
}

// UpdateContent updates the mutable content fields. CAS on version.
func (r *Repo) UpdateContent(ctx context.Context, storyID uuid.UUID, expectedVersion int, params domain.StoryUpdateParams) (*domain.Story, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Update("stories").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": storyID, "version": expectedVersion}).
		Suffix("RETURNING " + storyColumns).
		PlaceholderFormat(sq.Dollar)

	if params.Title != nil {
		builder = builder.Set("title", *params.Title)
	}
	if params.Content != nil {
		builder = builder.Set("content", *params.Content)
	}
	if params.Summary != nil {
		builder = builder.Set("summary", *params.Summary)
	}
	if params.Priority != nil {
		builder = builder.Set("priority", *params.Priority)
	}
	if params.CategoryID != nil {
		builder = builder.Set("category_id", *params.CategoryID)
	}
	if params.Language != nil {
		builder = builder.Set("language", *params.Language)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build story update query: %w", err)
	}

	story, err := scanStory(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, r.casError(ctx, err, storyID)
	}
	return story, nil
}

// UpdateWorkflow writes the full workflow column set with a CAS on version.
// All six columns are written every call; nil clears. Returns
// domain.ErrConflict when the version check loses, domain.ErrNotFound when
// the story does not exist.
func (r *Repo) UpdateWorkflow(ctx context.Context, storyID uuid.UUID, expectedVersion int, state domain.StoryWorkflowState) (*domain.Story, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateWorkflowSQL,
		storyID, expectedVersion,
		state.Status, state.ReviewerID, state.AssignedToID,
		state.RejectionReason, state.RevisionReturnsTo, state.PublishedAt,
	)

	story, err := scanStory(row)
	if err != nil {
		return nil, r.casError(ctx, err, storyID)
	}
	return story, nil
}

// SetTranslationsSkipped flips the translations-skipped flag. CAS on version.
func (r *Repo) SetTranslationsSkipped(ctx context.Context, storyID uuid.UUID, expectedVersion int, skipped bool) (*domain.Story, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	story, err := scanStory(q.QueryRow(ctx, setTranslationsSkippedSQL, storyID, expectedVersion, skipped))
	if err != nil {
		return nil, r.casError(ctx, err, storyID)
	}
	return story, nil
}

// Delete removes a story. The service layer guarantees PUBLISHED stories
// never reach this.
func (r *Repo) Delete(ctx context.Context, storyID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteStorySQL, storyID)
	if err != nil {
		return postgres.MapError(err, "story", storyID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("story %s: %w", storyID, domain.ErrNotFound)
	}
	return nil
}

// ExistByIDs reports which of the given ids exist.
func (r *Repo) ExistByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]bool{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT id FROM stories WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("check story ids: %w", err)
	}
	defer rows.Close()

	exist := make(map[uuid.UUID]bool, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan story id: %w", err)
		}
		exist[id] = true
	}
	return exist, rows.Err()
}

// CountByCategory returns how many stories reference the given category.
func (r *Repo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx, `SELECT count(*) FROM stories WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stories by category: %w", err)
	}
	return count, nil
}

// casError disambiguates a no-row result on a CAS update: missing row is
// ErrNotFound, existing row with a different version is ErrConflict.
func (r *Repo) casError(ctx context.Context, err error, storyID uuid.UUID) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		return postgres.MapError(err, "story", storyID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var version int
	if verErr := q.QueryRow(ctx, storyVersionSQL, storyID).Scan(&version); verErr != nil {
		return postgres.MapError(verErr, "story", storyID)
	}
	return fmt.Errorf("story %s: version mismatch: %w", storyID, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanStory(row pgx.Row) (*domain.Story, error) {
	var s domain.Story
	err := row.Scan(
		&s.ID, &s.Title, &s.Slug, &s.Content, &s.Summary, &s.Status,
		&s.Priority, &s.Language, &s.AuthorID, &s.ReviewerID, &s.AssignedToID,
		&s.CategoryID, &s.PublishedAt, &s.OriginalStoryID, &s.RevisionReturnsTo,
		&s.RejectionReason, &s.TranslationsSkipped, &s.Version,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanStories(rows pgx.Rows) ([]*domain.Story, error) {
	stories := []*domain.Story{}
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan story row: %w", err)
		}
		stories = append(stories, s)
	}
	return stories, rows.Err()
}
