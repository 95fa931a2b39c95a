// Package story implements the story lifecycle: drafting, review routing,
// approval, the publish gate, and archival. All status changes go through
// the workflow transition tables and leave an audit record in the same
// transaction as the write.
package story

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
	"github.com/kayamedia/newsroom-backend/pkg/ctxutil"
)

//go:generate moq -out service_mock_test.go . storyRepo translationRepo userRepo auditLogger txManager

type storyRepo interface {
	Create(ctx context.Context, story *domain.Story) (*domain.Story, error)
	GetByID(ctx context.Context, storyID uuid.UUID) (*domain.Story, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Story, error)
	List(ctx context.Context, filter domain.StoryFilter) ([]*domain.Story, error)
	ListPublished(ctx context.Context, language string, limit, offset int) ([]*domain.Story, error)
	UpdateContent(ctx context.Context, storyID uuid.UUID, expectedVersion int, params domain.StoryUpdateParams) (*domain.Story, error)
	UpdateWorkflow(ctx context.Context, storyID uuid.UUID, expectedVersion int, state domain.StoryWorkflowState) (*domain.Story, error)
	SetTranslationsSkipped(ctx context.Context, storyID uuid.UUID, expectedVersion int, skipped bool) (*domain.Story, error)
	Delete(ctx context.Context, storyID uuid.UUID) error
}

type translationRepo interface {
	ListByStory(ctx context.Context, storyID uuid.UUID) ([]*domain.Translation, error)
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

// Service provides story operations.
type Service struct {
	stories      storyRepo
	translations translationRepo
	users        userRepo
	audit        auditLogger
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new Story service.
func NewService(
	log *slog.Logger,
	stories storyRepo,
	translations translationRepo,
	users userRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		stories:      stories,
		translations: translations,
		users:        users,
		audit:        audit,
		tx:           tx,
		log:          log.With("service", "story"),
	}
}

// actorFromCtx builds the workflow actor from the authenticated request
// context.
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

func subjectOf(story *domain.Story) workflow.Subject {
	s := workflow.Subject{OwnerID: story.AuthorID}
	if story.ReviewerID != nil {
		s.ReviewerID = *story.ReviewerID
	}
	return s
}

// slugify derives a URL slug from a title and appends a short random
// suffix so retitled or same-titled stories never collide.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "story"
	}
	if len(slug) > 80 {
		slug = strings.Trim(slug[:80], "-")
	}
	return slug + "-" + uuid.New().String()[:8]
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
