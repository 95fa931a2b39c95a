// Package translation implements translation task management: task
// creation, translator assignment, submission for review, and the review
// verdict. A task's "owner" in workflow terms is its assigned translator.
package translation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
	"github.com/kayamedia/newsroom-backend/pkg/ctxutil"
)

//go:generate moq -out service_mock_test.go . translationRepo storyRepo userRepo auditLogger txManager

type translationRepo interface {
	Create(ctx context.Context, t *domain.Translation) (*domain.Translation, error)
	GetByID(ctx context.Context, translationID uuid.UUID) (*domain.Translation, error)
	ListByStory(ctx context.Context, storyID uuid.UUID) ([]*domain.Translation, error)
	ListByAssignee(ctx context.Context, userID uuid.UUID) ([]*domain.Translation, error)
	UpdateWorkflow(ctx context.Context, translationID uuid.UUID, expectedVersion int, state domain.TranslationWorkflowState) (*domain.Translation, error)
	Delete(ctx context.Context, translationID uuid.UUID) error
}

type storyRepo interface {
	GetByID(ctx context.Context, storyID uuid.UUID) (*domain.Story, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides translation task operations.
type Service struct {
	translations translationRepo
	stories      storyRepo
	users        userRepo
	audit        auditLogger
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new Translation service.
func NewService(
	log *slog.Logger,
	translations translationRepo,
	stories storyRepo,
	users userRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		translations: translations,
		stories:      stories,
		users:        users,
		audit:        audit,
		tx:           tx,
		log:          log.With("service", "translation"),
	}
}

func actorFromCtx(ctx context.Context) (workflow.Actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return workflow.Actor{}, domain.ErrUnauthorized
	}
	roleStr, ok := ctxutil.StaffRoleFromCtx(ctx)
	if !ok {
		return workflow.Actor{}, domain.ErrUnauthorized
	}
	return workflow.Actor{ID: userID, Role: domain.StaffRole(roleStr)}, nil
}

func subjectOf(t *domain.Translation) workflow.Subject {
	var s workflow.Subject
	if t.AssignedToID != nil {
		s.OwnerID = *t.AssignedToID
	}
	if t.ReviewerID != nil {
		s.ReviewerID = *t.ReviewerID
	}
	return s
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
