package story

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
)

// DeleteStory removes a story. Published stories are never deleted, only
// archived.
func (s *Service) DeleteStory(ctx context.Context, input DeleteStoryInput) error {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	story, err := s.stories.GetByID(ctx, input.StoryID)
	if err != nil {
		return err
	}

	editCtx := workflow.EditContext{
		IsOwner: story.IsOwnedBy(actor.ID),
		Status:  story.Status.String(),
	}
	if !workflow.Can(actor.Role, workflow.ActionDeleteStory, editCtx) {
		return domain.ErrForbidden
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.stories.Delete(txCtx, input.StoryID); deleteErr != nil {
			return fmt.Errorf("delete story: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeStory,
			EntityID:   &story.ID,
			Action:     domain.AuditActionDelete,
			Metadata: map[string]any{
				"title":  story.Title,
				"status": story.Status.String(),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "story deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("story_id", story.ID.String()),
	)

	return nil
}
