// Package bulletin implements audio bulletin management: composing the
// running order, the review lifecycle, and the on-air publish check.
package bulletin

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
	"github.com/kayamedia/newsroom-backend/pkg/ctxutil"
)

//go:generate moq -out service_mock_test.go . bulletinRepo storyRepo userRepo auditLogger txManager

type bulletinRepo interface {
	Create(ctx context.Context, b *domain.Bulletin) (*domain.Bulletin, error)
	GetByID(ctx context.Context, bulletinID uuid.UUID) (*domain.Bulletin, error)
	List(ctx context.Context, status *domain.BulletinStatus, language *string, limit, offset int) ([]*domain.Bulletin, error)
	UpdateContent(ctx context.Context, bulletinID uuid.UUID, expectedVersion int, params domain.BulletinUpdateParams) (*domain.Bulletin, error)
	UpdateWorkflow(ctx context.Context, bulletinID uuid.UUID, expectedVersion int, state domain.BulletinWorkflowState) (*domain.Bulletin, error)
	ReplaceStories(ctx context.Context, bulletinID uuid.UUID, expectedVersion int, items []domain.ReorderItem) (*domain.Bulletin, error)
	Delete(ctx context.Context, bulletinID uuid.UUID) error
}

type storyRepo interface {
	ExistByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
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

// Service provides bulletin operations. maxStories caps the running order
// length; it comes from editorial configuration.
type Service struct {
	bulletins  bulletinRepo
	stories    storyRepo
	users      userRepo
	audit      auditLogger
	tx         txManager
	maxStories int
	log        *slog.Logger
}

// NewService creates a new Bulletin service.
func NewService(
	log *slog.Logger,
	bulletins bulletinRepo,
	stories storyRepo,
	users userRepo,
	audit auditLogger,
	tx txManager,
	maxStories int,
) *Service {
	return &Service{
		bulletins:  bulletins,
		stories:    stories,
		users:      users,
		audit:      audit,
		tx:         tx,
		maxStories: maxStories,
		log:        log.With("service", "bulletin"),
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

func subjectOf(b *domain.Bulletin) workflow.Subject {
	s := workflow.Subject{OwnerID: b.AuthorID}
	if b.ReviewerID != nil {
		s.ReviewerID = *b.ReviewerID
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
