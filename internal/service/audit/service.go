// Package audit provides the append-only activity trail: every service
// writes through Log inside its mutation transaction, admins read through
// List.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
	"github.com/kayamedia/newsroom-backend/pkg/ctxutil"
)

//go:generate moq -out service_mock_test.go . auditRepo

type auditRepo interface {
	Create(ctx context.Context, rec *domain.AuditRecord) (*domain.AuditRecord, error)
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditRecord, error)
}

// Service provides audit trail operations. pageSize is the default List
// page; maxPageSize caps client-supplied limits.
type Service struct {
	records     auditRepo
	pageSize    int
	maxPageSize int
	log         *slog.Logger
}

// NewService creates a new Audit service.
func NewService(log *slog.Logger, records auditRepo, pageSize, maxPageSize int) *Service {
	return &Service{
		records:     records,
		pageSize:    pageSize,
		maxPageSize: maxPageSize,
		log:         log.With("service", "audit"),
	}
}

// Log appends one record to the trail. Callers invoke it inside their own
// transaction so the record commits with the change it describes.
func (s *Service) Log(ctx context.Context, record domain.AuditRecord) error {
	if record.UserID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}
	if !record.EntityType.IsValid() {
		return domain.NewValidationError("entity_type", "unknown entity type")
	}
	if !record.Action.IsValid() {
		return domain.NewValidationError("action", "unknown action")
	}

	if _, err := s.records.Create(ctx, &record); err != nil {
		return fmt.Errorf("create audit record: %w", err)
	}
	return nil
}

// ListInput holds filtering and pagination parameters for the audit trail.
type ListInput struct {
	UserID     *uuid.UUID
	EntityType *domain.EntityType
	EntityID   *uuid.UUID
	Action     *domain.AuditAction
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.EntityType != nil && !i.EntityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "unknown entity type"})
	}
	if i.Action != nil && !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "unknown action"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns audit records newest first. Admins only.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.AuditRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	roleStr, ok := ctxutil.StaffRoleFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !workflow.Can(domain.StaffRole(roleStr), workflow.ActionViewAudit, workflow.EditContext{}) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.pageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	records, err := s.records.List(ctx, domain.AuditFilter{
		UserID:     input.UserID,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		Action:     input.Action,
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}

	s.log.DebugContext(ctx, "audit trail read",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(records)),
	)

	return records, nil
}
