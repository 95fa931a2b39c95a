package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is one append-only entry in the audit log. Records are never
// updated or deleted; read paths order by CreatedAt DESC.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Metadata   map[string]any
	CreatedAt  time.Time
}

// AuditFilter contains filtering/pagination parameters for audit queries.
type AuditFilter struct {
	UserID     *uuid.UUID
	EntityType *EntityType
	EntityID   *uuid.UUID
	Action     *AuditAction
	Limit      int
	Offset     int
}
