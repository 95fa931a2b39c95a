package story

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/content"
	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
)

// Publish runs the readiness gate and, when every precondition holds,
// moves the story APPROVED -> PUBLISHED with the publish timestamp set.
// A blocked publish returns every unresolved issue at once.
func (s *Service) Publish(ctx context.Context, input PublishStoryInput) (*domain.Story, error) {
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

	from := story.Status
	edge, ok := workflow.StoryEdge(from, domain.StoryStatusPublished)
	if !ok {
		return nil, domain.NewTransitionError(from.String(), domain.StoryStatusPublished.String(), domain.ErrInvalidTransition, "")
	}
	if !edge.Permitted(actor, subjectOf(story)) {
		return nil, domain.NewTransitionError(from.String(), domain.StoryStatusPublished.String(), domain.ErrForbidden, "")
	}

	readiness, err := s.readiness(ctx, story, input.Checklist)
	if err != nil {
		return nil, err
	}
	if !readiness.CanPublish {
		return nil, &domain.PublishBlockedError{Issues: readiness.Issues}
	}

	now := time.Now().UTC()
	state := domain.StoryWorkflowState{
		Status:       domain.StoryStatusPublished,
		ReviewerID:   story.ReviewerID,
		AssignedToID: story.AssignedToID,
		PublishedAt:  &now,
	}

	var published *domain.Story
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		published, updateErr = s.stories.UpdateWorkflow(txCtx, story.ID, input.Version, state)
		if updateErr != nil {
			return fmt.Errorf("update workflow: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeStory,
			EntityID:   &story.ID,
			Action:     domain.AuditActionPublish,
			Metadata: map[string]any{
				"from": from.String(),
				"to":   domain.StoryStatusPublished.String(),
				"slug": story.Slug,
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

	s.log.InfoContext(ctx, "story published",
		slog.String("user_id", actor.ID.String()),
		slog.String("story_id", story.ID.String()),
		slog.String("slug", story.Slug),
	)

	return published, nil
}

// CheckPublishReadiness reports what still blocks a publish without
// mutating anything. The checklist flags come from the editor's current
// form state.
func (s *Service) CheckPublishReadiness(ctx context.Context, storyID uuid.UUID, checklist domain.PublishChecklist) (domain.PublishReadiness, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return domain.PublishReadiness{}, err
	}
	if storyID == uuid.Nil {
		return domain.PublishReadiness{}, domain.NewValidationError("story_id", "required")
	}

	story, err := s.stories.GetByID(ctx, storyID)
	if err != nil {
		return domain.PublishReadiness{}, err
	}

	return s.readiness(ctx, story, checklist)
}

// SkipTranslations marks a story as publishable without translations.
// Overriding the translation gate is a sub-editor decision.
func (s *Service) SkipTranslations(ctx context.Context, input SkipTranslationsInput) (*domain.Story, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !actor.Role.AtLeast(domain.StaffRoleSubEditor) {
		return nil, domain.ErrForbidden
	}

	var updated *domain.Story
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.stories.SetTranslationsSkipped(txCtx, input.StoryID, input.Version, input.Skipped)
		if updateErr != nil {
			return fmt.Errorf("set translations skipped: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeStory,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Metadata: map[string]any{
				"translations_skipped": input.Skipped,
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

	s.log.InfoContext(ctx, "story translation gate changed",
		slog.String("user_id", actor.ID.String()),
		slog.String("story_id", updated.ID.String()),
		slog.Bool("skipped", input.Skipped),
	)

	return updated, nil
}

func (s *Service) readiness(ctx context.Context, story *domain.Story, checklist domain.PublishChecklist) (domain.PublishReadiness, error) {
	translations, err := s.translations.ListByStory(ctx, story.ID)
	if err != nil {
		return domain.PublishReadiness{}, fmt.Errorf("list translations: %w", err)
	}

	values := make([]domain.Translation, len(translations))
	for i, tr := range translations {
		values[i] = *tr
	}

	plainText := content.PlainText(story.Content)
	return workflow.PublishReadiness(story, values, checklist, plainText), nil
}
