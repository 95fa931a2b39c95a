// Package audit implements the append-only audit log repository using
// PostgreSQL. Records are inserted in the same transaction as the mutation
// they describe and are never updated or deleted.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kayamedia/newsroom-backend/internal/adapter/postgres"
	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const auditColumns = `id, user_id, entity_type, entity_id, action, metadata, created_at`

const createAuditSQL = `
INSERT INTO audit_log (user_id, entity_type, entity_id, action, metadata)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + auditColumns

// Create appends one audit record.
func (r *Repo) Create(ctx context.Context, rec *domain.AuditRecord) (*domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	metadata := rec.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal audit metadata: %w", err)
	}

	row := q.QueryRow(ctx, createAuditSQL, rec.UserID, rec.EntityType, rec.EntityID, rec.Action, raw)
	created, err := scanAudit(row)
	if err != nil {
		return nil, postgres.MapError(err, "audit record", uuid.Nil)
	}
	return created, nil
}

// List returns audit records matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(auditColumns).
		From("audit_log").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.EntityType != nil {
		builder = builder.Where(sq.Eq{"entity_type": *filter.EntityType})
	}
	if filter.EntityID != nil {
		builder = builder.Where(sq.Eq{"entity_id": *filter.EntityID})
	}
	if filter.Action != nil {
		builder = builder.Where(sq.Eq{"action": *filter.Action})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	defer rows.Close()

	records := []*domain.AuditRecord{}
	for rows.Next() {
		rec, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanAudit(row pgx.Row) (*domain.AuditRecord, error) {
	var rec domain.AuditRecord
	var raw []byte
	err := row.Scan(&rec.ID, &rec.UserID, &rec.EntityType, &rec.EntityID, &rec.Action, &raw, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &rec.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal audit metadata: %w", err)
	}
	return &rec, nil
}
