// Package translation implements the translation task repository using
// PostgreSQL. Status updates use a compare-and-swap on the version column.
package translation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kayamedia/newsroom-backend/internal/adapter/postgres"
	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// Repo provides translation task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new translation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const translationColumns = `id, original_story_id, target_language, status,
	assigned_to_id, reviewer_id, translated_story_id, rejection_reason,
	version, created_at, updated_at`

const createTranslationSQL = `
INSERT INTO translations (original_story_id, target_language)
VALUES ($1, $2)
RETURNING ` + translationColumns

const getTranslationByIDSQL = `
SELECT ` + translationColumns + `
FROM translations
WHERE id = $1`

const listTranslationsByStorySQL = `
SELECT ` + translationColumns + `
FROM translations
WHERE original_story_id = $1
ORDER BY target_language`

const listTranslationsByAssigneeSQL = `
SELECT ` + translationColumns + `
FROM translations
WHERE assigned_to_id = $1 AND status IN ('IN_PROGRESS', 'REJECTED')
ORDER BY created_at`

const updateTranslationWorkflowSQL = `
UPDATE translations
SET status = $3,
    assigned_to_id = $4,
    reviewer_id = $5,
    translated_story_id = $6,
    rejection_reason = $7,
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND version = $2
RETURNING ` + translationColumns

const translationVersionSQL = `SELECT version FROM translations WHERE id = $1`

const deleteTranslationSQL = `DELETE FROM translations WHERE id = $1`

// Create registers a new translation task in PENDING status. The unique
// constraint on (story, language) rejects duplicates as ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t *domain.Translation) (*domain.Translation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanTranslation(q.QueryRow(ctx, createTranslationSQL, t.OriginalStoryID, t.TargetLanguage))
	if err != nil {
		return nil, postgres.MapError(err, "translation", uuid.Nil)
	}
	return created, nil
}

// GetByID returns a translation task by primary key.
func (r *Repo) GetByID(ctx context.Context, translationID uuid.UUID) (*domain.Translation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTranslation(q.QueryRow(ctx, getTranslationByIDSQL, translationID))
	if err != nil {
		return nil, postgres.MapError(err, "translation", translationID)
	}
	return t, nil
}

// ListByStory returns all translation tasks for a story.
func (r *Repo) ListByStory(ctx context.Context, storyID uuid.UUID) ([]*domain.Translation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listTranslationsByStorySQL, storyID)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	return scanTranslations(rows)
}

// ListByAssignee returns the open tasks on a translator's worklist.
func (r *Repo) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]*domain.Translation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listTranslationsByAssigneeSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list assigned translations: %w", err)
	}
	defer rows.Close()

	return scanTranslations(rows)
}

// UpdateWorkflow writes the full workflow column set with a CAS on version.
func (r *Repo) UpdateWorkflow(ctx context.Context, translationID uuid.UUID, expectedVersion int, state domain.TranslationWorkflowState) (*domain.Translation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateTranslationWorkflowSQL,
		translationID, expectedVersion,
		state.Status, state.AssignedToID, state.ReviewerID,
		state.TranslatedStoryID, state.RejectionReason,
	)

	t, err := scanTranslation(row)
	if err != nil {
		return nil, r.casError(ctx, err, translationID)
	}
	return t, nil
}

// Delete removes a translation task. Only PENDING tasks reach this.
func (r *Repo) Delete(ctx context.Context, translationID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteTranslationSQL, translationID)
	if err != nil {
		return postgres.MapError(err, "translation", translationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("translation %s: %w", translationID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) casError(ctx context.Context, err error, translationID uuid.UUID) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		return postgres.MapError(err, "translation", translationID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var version int
	if verErr := q.QueryRow(ctx, translationVersionSQL, translationID).Scan(&version); verErr != nil {
		return postgres.MapError(verErr, "translation", translationID)
	}
	return fmt.Errorf("translation %s: version mismatch: %w", translationID, domain.ErrConflict)
}

func scanTranslation(row pgx.Row) (*domain.Translation, error) {
	var t domain.Translation
	err := row.Scan(
		&t.ID, &t.OriginalStoryID, &t.TargetLanguage, &t.Status,
		&t.AssignedToID, &t.ReviewerID, &t.TranslatedStoryID,
		&t.RejectionReason, &t.Version, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTranslations(rows pgx.Rows) ([]*domain.Translation, error) {
	translations := []*domain.Translation{}
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan translation row: %w", err)
		}
		translations = append(translations, t)
	}
	return translations, rows.Err()
}
