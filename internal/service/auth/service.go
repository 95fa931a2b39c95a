// Package auth implements staff sign-in and token validation.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/pkg/ctxutil"
)

//go:generate moq -out service_mock_test.go . userRepo tokenManager

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(tokenString string) (uuid.UUID, string, error)
}

// Service provides authentication operations.
type Service struct {
	users  userRepo
	tokens tokenManager
	log    *slog.Logger
}

// NewService creates a new Auth service.
func NewService(log *slog.Logger, users userRepo, tokens tokenManager) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		log:    log.With("service", "auth"),
	}
}

// LoginInput holds credentials for a sign-in attempt.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginResult is a successful sign-in: the signed access token and the
// account it belongs to.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password both return ErrUnauthorized so the response does not
// reveal which accounts exist.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !user.Active {
		return nil, fmt.Errorf("account disabled: %w", domain.ErrForbidden)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.StaffRole.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("staff_role", user.StaffRole.String()),
	)

	return &LoginResult{AccessToken: token, User: user}, nil
}

// ValidateToken checks a bearer token and returns the user ID and staff
// role it carries. Used by the auth middleware on every request.
func (s *Service) ValidateToken(tokenString string) (uuid.UUID, string, error) {
	userID, role, err := s.tokens.ValidateAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("validate token: %w", domain.ErrUnauthorized)
	}
	return userID, role, nil
}

// Me returns the authenticated user's own account.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !user.Active {
		return nil, fmt.Errorf("account disabled: %w", domain.ErrForbidden)
	}

	return user, nil
}
