package story

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
)

// UpdateStory edits story content. Owners edit their own drafts and
// revisions; editors may fix anything that is not live.
func (s *Service) UpdateStory(ctx context.Context, input UpdateStoryInput) (*domain.Story, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	story, err := s.stories.GetByID(ctx, input.StoryID)
	if err != nil {
		return nil, err
	}

	editCtx := workflow.EditContext{
		IsOwner: story.IsOwnedBy(actor.ID),
		Status:  story.Status.String(),
	}
	if !workflow.Can(actor.Role, workflow.ActionEditStory, editCtx) {
		return nil, domain.ErrForbidden
	}

	params := domain.StoryUpdateParams{
		Title:      trimOrNil(input.Title),
		Content:    input.Content,
		Summary:    input.Summary,
		Priority:   input.Priority,
		CategoryID: input.CategoryID,
		Language:   trimOrNil(input.Language),
	}

	var updated *domain.Story
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.stories.UpdateContent(txCtx, input.StoryID, input.Version, params)
		if updateErr != nil {
			return fmt.Errorf("update story: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeStory,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Metadata:   changedFields(params),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "story updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("story_id", updated.ID.String()),
		slog.Int("version", updated.Version),
	)

	return updated, nil
}

// changedFields records which fields an update touched, not their values:
// story bodies are too large for audit metadata.
func changedFields(params domain.StoryUpdateParams) map[string]any {
	fields := []string{}
	if params.Title != nil {
		fields = append(fields, "title")
	}
	if params.Content != nil {
		fields = append(fields, "content")
	}
	if params.Summary != nil {
		fields = append(fields, "summary")
	}
	if params.Priority != nil {
		fields = append(fields, "priority")
	}
	if params.CategoryID != nil {
		fields = append(fields, "category_id")
	}
	if params.Language != nil {
		fields = append(fields, "language")
	}
	return map[string]any{"fields": fields}
}
