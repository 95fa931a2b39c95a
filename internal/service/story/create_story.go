package story

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// CreateStory drafts a new story owned by the authenticated user.
func (s *Service) CreateStory(ctx context.Context, input CreateStoryInput) (*domain.Story, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	priority := input.Priority
	if priority == "" {
		priority = domain.StoryPriorityNormal
	}

	var story *domain.Story
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		story, createErr = s.stories.Create(txCtx, &domain.Story{
			Title:      title,
			Slug:       slugify(title),
			Content:    input.Content,
			Summary:    trimOrNil(input.Summary),
			Priority:   priority,
			Language:   strings.TrimSpace(input.Language),
			AuthorID:   actor.ID,
			CategoryID: input.CategoryID,
		})
		if createErr != nil {
			return fmt.Errorf("create story: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeStory,
			EntityID:   &story.ID,
			Action:     domain.AuditActionCreate,
			Metadata: map[string]any{
				"title": title,
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

	s.log.InfoContext(ctx, "story created",
		slog.String("user_id", actor.ID.String()),
		slog.String("story_id", story.ID.String()),
		slog.String("slug", story.Slug),
	)

	return story, nil
}
