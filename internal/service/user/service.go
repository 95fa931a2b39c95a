// Package user implements staff account administration.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
	"github.com/kayamedia/newsroom-backend/pkg/ctxutil"
)

//go:generate moq -out service_mock_test.go . userRepo auditLogger txManager

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role domain.StaffRole) (*domain.User, error)
	SetActive(ctx context.Context, userID uuid.UUID, active bool) (*domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides staff account operations. hashCost is the bcrypt cost
// used for new passwords.
type Service struct {
	users    userRepo
	audit    auditLogger
	tx       txManager
	hashCost int
	log      *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo, audit auditLogger, tx txManager, hashCost int) *Service {
	return &Service{
		users:    users,
		audit:    audit,
		tx:       tx,
		hashCost: hashCost,
		log:      log.With("service", "user"),
	}
}

type actor struct {
	ID   uuid.UUID
	Role domain.StaffRole
}

// requireAdmin resolves the acting admin from the context.
func (s *Service) requireAdmin(ctx context.Context) (actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return actor{}, domain.ErrUnauthorized
	}
	roleStr, ok := ctxutil.StaffRoleFromCtx(ctx)
	if !ok {
		return actor{}, domain.ErrUnauthorized
	}
	role := domain.StaffRole(roleStr)
	if !workflow.Can(role, workflow.ActionManageUsers, workflow.EditContext{}) {
		return actor{}, domain.ErrForbidden
	}
	return actor{ID: userID, Role: role}, nil
}

// canTouch gates operations involving an admin-level role: only a super
// admin may create, promote, demote, or disable ADMIN and SUPER_ADMIN
// accounts.
func (a actor) canTouch(targetRole domain.StaffRole) error {
	if targetRole.IsAdmin() && a.Role != domain.StaffRoleSuperAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// CreateUserInput holds the parameters for creating a staff account.
type CreateUserInput struct {
	Email     string
	Username  string
	Name      string
	Password  string
	StaffRole domain.StaffRole
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}
	if !i.StaffRole.IsValid() {
		errs = append(errs, domain.FieldError{Field: "staff_role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateUser provisions a new staff account.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := admin.canTouch(input.StaffRole); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Username:     strings.TrimSpace(input.Username),
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: string(hash),
		StaffRole:    input.StaffRole,
		Active:       true,
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.users.Create(txCtx, user)
		if createErr != nil {
			return fmt.Errorf("create user: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     admin.ID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Metadata: map[string]any{
				"email":      created.Email,
				"staff_role": created.StaffRole.String(),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("admin_id", admin.ID.String()),
		slog.String("user_id", created.ID.String()),
		slog.String("staff_role", created.StaffRole.String()),
	)

	return created, nil
}

// ChangeRoleInput holds the parameters for a role change.
type ChangeRoleInput struct {
	UserID    uuid.UUID
	StaffRole domain.StaffRole
}

// Validate checks all fields and collects all errors.
func (i ChangeRoleInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.StaffRole.IsValid() {
		errs = append(errs, domain.FieldError{Field: "staff_role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeRole updates a staff member's role. Promoting to or demoting from
// an admin role needs a super admin; admins cannot change their own role.
func (s *Service) ChangeRole(ctx context.Context, input ChangeRoleInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if admin.ID == input.UserID {
		return nil, fmt.Errorf("cannot change own role: %w", domain.ErrForbidden)
	}
	if err := admin.canTouch(input.StaffRole); err != nil {
		return nil, err
	}

	target, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := admin.canTouch(target.StaffRole); err != nil {
		return nil, err
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.users.UpdateRole(txCtx, input.UserID, input.StaffRole)
		if updateErr != nil {
			return fmt.Errorf("update role: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     admin.ID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &input.UserID,
			Action:     domain.AuditActionUpdate,
			Metadata: map[string]any{
				"from_role": target.StaffRole.String(),
				"to_role":   input.StaffRole.String(),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user role changed",
		slog.String("admin_id", admin.ID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("to_role", input.StaffRole.String()),
	)

	return updated, nil
}

// SetActive enables or disables a staff account. Disabling an account
// blocks sign-in; existing tokens expire on their own. Admins cannot
// disable themselves.
func (s *Service) SetActive(ctx context.Context, userID uuid.UUID, active bool) (*domain.User, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if admin.ID == userID && !active {
		return nil, fmt.Errorf("cannot disable own account: %w", domain.ErrForbidden)
	}

	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := admin.canTouch(target.StaffRole); err != nil {
		return nil, err
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.users.SetActive(txCtx, userID, active)
		if updateErr != nil {
			return fmt.Errorf("set active: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     admin.ID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &userID,
			Action:     domain.AuditActionUpdate,
			Metadata: map[string]any{
				"active": active,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user active flag changed",
		slog.String("admin_id", admin.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("active", active),
	)

	return updated, nil
}

// List returns staff accounts ordered by creation time.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns one staff account.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}
