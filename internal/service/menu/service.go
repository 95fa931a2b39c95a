// Package menu implements the navigation tree shown on the station-facing
// site.
package menu

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

//go:generate moq -out service_mock_test.go . menuRepo auditLogger txManager

type menuRepo interface {
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.MenuItem, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.MenuItem, error)
	Update(ctx context.Context, itemID uuid.UUID, params domain.MenuItemUpdateParams) (*domain.MenuItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides menu operations.
type Service struct {
	items menuRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Menu service.
func NewService(log *slog.Logger, items menuRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		items: items,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "menu"),
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
	if !workflow.Can(domain.StaffRole(roleStr), workflow.ActionManageMenu, workflow.EditContext{}) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// CreateItemInput holds the parameters for creating a menu item.
type CreateItemInput struct {
	Label    string
	URL      string
	ParentID *uuid.UUID
	Position int
	Active   bool
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Label) == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	}
	if strings.TrimSpace(i.URL) == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	}
	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "must be a valid item id"})
	}
	if i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateItem adds a menu item. The tree is one level deep: a parent must
// itself be a root.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.MenuItem, error) {
	userID, err := requireManager(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := s.items.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("load parent: %w", err)
		}
		if parent.ParentID != nil {
			return nil, domain.NewValidationError("parent_id", "parent must be a top-level item")
		}
	}

	var created *domain.MenuItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.items.Create(txCtx, &domain.MenuItem{
			Label:    strings.TrimSpace(input.Label),
			URL:      strings.TrimSpace(input.URL),
			ParentID: input.ParentID,
			Position: input.Position,
			Active:   input.Active,
		})
		if createErr != nil {
			return fmt.Errorf("create menu item: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeMenuItem,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Metadata:   map[string]any{"label": created.Label},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "menu item created",
		slog.String("user_id", userID.String()),
		slog.String("item_id", created.ID.String()),
	)

	return created, nil
}

// UpdateItemInput holds the mutable fields of a menu item. Nil means
// "leave unchanged".
type UpdateItemInput struct {
	ItemID   uuid.UUID
	Label    *string
	URL      *string
	ParentID *uuid.UUID
	Position *int
	Active   *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Label == nil && i.URL == nil && i.ParentID == nil && i.Position == nil && i.Active == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Label != nil && strings.TrimSpace(*i.Label) == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	}
	if i.URL != nil && strings.TrimSpace(*i.URL) == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	}
	if i.Position != nil && *i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItem edits a menu item.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.MenuItem, error) {
	userID, err := requireManager(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if *input.ParentID == input.ItemID {
			return nil, domain.NewValidationError("parent_id", "item cannot be its own parent")
		}
		parent, err := s.items.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("load parent: %w", err)
		}
		if parent.ParentID != nil {
			return nil, domain.NewValidationError("parent_id", "parent must be a top-level item")
		}
	}

	var updated *domain.MenuItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.items.Update(txCtx, input.ItemID, domain.MenuItemUpdateParams{
			Label:    input.Label,
			URL:      input.URL,
			ParentID: input.ParentID,
			Position: input.Position,
			Active:   input.Active,
		})
		if updateErr != nil {
			return fmt.Errorf("update menu item: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeMenuItem,
			EntityID:   &input.ItemID,
			Action:     domain.AuditActionUpdate,
			Metadata:   map[string]any{"label": updated.Label},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "menu item updated",
		slog.String("user_id", userID.String()),
		slog.String("item_id", input.ItemID.String()),
	)

	return updated, nil
}

// DeleteItem removes a menu item. Children of the removed item are
// promoted to roots by the tree builder on the next read.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	userID, err := requireManager(ctx)
	if err != nil {
		return err
	}
	if itemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.items.Delete(txCtx, itemID); deleteErr != nil {
			return fmt.Errorf("delete menu item: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeMenuItem,
			EntityID:   &itemID,
			Action:     domain.AuditActionDelete,
			Metadata:   map[string]any{"label": item.Label},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "menu item deleted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
	)

	return nil
}

// Tree returns the active navigation tree for the public site.
func (s *Service) Tree(ctx context.Context) ([]*domain.MenuItem, error) {
	items, err := s.items.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return domain.BuildMenuTree(items), nil
}

// ListAll returns every item, inactive included, for the admin screen.
func (s *Service) ListAll(ctx context.Context) ([]*domain.MenuItem, error) {
	if _, err := requireManager(ctx); err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return domain.BuildMenuTree(items), nil
}
