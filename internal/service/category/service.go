// Package category implements the flat story classification list.
package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
	"github.com/kayamedia/newsroom-backend/pkg/ctxutil"
)

//go:generate moq -out service_mock_test.go . categoryRepo storyRepo auditLogger txManager

type categoryRepo interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, categoryID uuid.UUID) error
}

type storyRepo interface {
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides category operations.
type Service struct {
	categories categoryRepo
	stories    storyRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(log *slog.Logger, categories categoryRepo, stories storyRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		categories: categories,
		stories:    stories,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "category"),
	}
}

func requireManager(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	roleStr, ok := ctxutil.StaffRoleFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !workflow.Can(domain.StaffRole(roleStr), workflow.ActionManageCategories, workflow.EditContext{}) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// slugify lowercases the name and replaces every non-alphanumeric run with
// a single dash. Category slugs have no uniqueness suffix; the unique
// index on the slug column rejects duplicates.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Create adds a category. Editors and above only.
func (s *Service) Create(ctx context.Context, name string) (*domain.Category, error) {
	userID, err := requireManager(ctx)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if len(name) > 100 {
		return nil, domain.NewValidationError("name", "max 100 characters")
	}

	var created *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.categories.Create(txCtx, &domain.Category{
			Name: name,
			Slug: slugify(name),
		})
		if createErr != nil {
			return fmt.Errorf("create category: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Metadata:   map[string]any{"name": created.Name},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", created.ID.String()),
	)

	return created, nil
}

// List returns all categories ordered by name. No authentication: the
// public story feed filters by category too.
func (s *Service) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Delete removes a category. A category still referenced by stories cannot
// be deleted.
func (s *Service) Delete(ctx context.Context, categoryID uuid.UUID) error {
	userID, err := requireManager(ctx)
	if err != nil {
		return err
	}
	if categoryID == uuid.Nil {
		return domain.NewValidationError("category_id", "required")
	}

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}

	count, err := s.stories.CountByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("count stories: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("category %q has %d stories: %w", category.Name, count, domain.ErrConflict)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.categories.Delete(txCtx, categoryID); deleteErr != nil {
			return fmt.Errorf("delete category: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &categoryID,
			Action:     domain.AuditActionDelete,
			Metadata:   map[string]any{"name": category.Name},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
	)

	return nil
}
