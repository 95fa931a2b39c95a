package translation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
)

// ChangeStatus executes one translation task transition: assignment,
// submission for review, approval, rejection, or rework.
func (s *Service) ChangeStatus(ctx context.Context, input ChangeStatusInput) (*domain.Translation, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	task, err := s.translations.GetByID(ctx, input.TranslationID)
	if err != nil {
		return nil, err
	}

	from := task.Status
	edge, ok := workflow.TranslationEdge(from, input.Target)
	if !ok {
		return nil, domain.NewTransitionError(from.String(), input.Target.String(), domain.ErrInvalidTransition, "")
	}

	// The assignment edge names the future owner; everyone else is judged
	// against the current task.
	subject := subjectOf(task)
	if edge.RequiresAssignee && task.AssignedToID == nil && input.AssigneeID != nil {
		subject.OwnerID = *input.AssigneeID
	}
	if !edge.Permitted(actor, subject) {
		return nil, domain.NewTransitionError(from.String(), input.Target.String(), domain.ErrForbidden, "")
	}

	state, reason, err := s.buildWorkflowState(ctx, task, input, edge)
	if err != nil {
		return nil, err
	}

	var updated *domain.Translation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.translations.UpdateWorkflow(txCtx, task.ID, input.Version, state)
		if updateErr != nil {
			return fmt.Errorf("update workflow: %w", updateErr)
		}

		metadata := map[string]any{
			"from": from.String(),
			"to":   input.Target.String(),
		}
		if reason != nil {
			metadata["reason"] = *reason
		}
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeTranslation,
			EntityID:   &task.ID,
			Action:     domain.AuditActionStatusChange,
			Metadata:   metadata,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "translation status changed",
		slog.String("user_id", actor.ID.String()),
		slog.String("translation_id", task.ID.String()),
		slog.String("from", from.String()),
		slog.String("to", input.Target.String()),
	)

	return updated, nil
}

func (s *Service) buildWorkflowState(
	ctx context.Context,
	task *domain.Translation,
	input ChangeStatusInput,
	edge workflow.Edge,
) (domain.TranslationWorkflowState, *string, error) {
	var zero domain.TranslationWorkflowState
	from, to := task.Status.String(), input.Target.String()

	assigneeID := task.AssignedToID
	if edge.RequiresAssignee {
		if input.AssigneeID != nil {
			assigneeID = input.AssigneeID
		}
		if assigneeID == nil {
			return zero, nil, domain.NewTransitionError(from, to, domain.ErrMissingField, "assigned_to_id")
		}
		if err := s.checkActiveUser(ctx, *assigneeID, "assigned_to_id"); err != nil {
			return zero, nil, err
		}
	}

	reviewerID := task.ReviewerID
	if edge.RequiresReviewer {
		if input.ReviewerID != nil {
			reviewerID = input.ReviewerID
		}
		if reviewerID == nil {
			return zero, nil, domain.NewTransitionError(from, to, domain.ErrMissingField, "reviewer_id")
		}
		if err := s.checkActiveUser(ctx, *reviewerID, "reviewer_id"); err != nil {
			return zero, nil, err
		}
	}

	translatedStoryID := task.TranslatedStoryID
	if edge.RequiresTranslatedStory {
		if input.TranslatedStoryID != nil {
			translatedStoryID = input.TranslatedStoryID
		}
		if translatedStoryID == nil {
			return zero, nil, domain.NewTransitionError(from, to, domain.ErrMissingField, "translated_story_id")
		}
		if err := s.checkTranslatedStory(ctx, task, *translatedStoryID); err != nil {
			return zero, nil, err
		}
	}

	var reason *string
	if edge.RequiresReason {
		reason = trimOrNil(input.Reason)
		if reason == nil {
			return zero, nil, domain.NewTransitionError(from, to, domain.ErrMissingField, "rejection_reason")
		}
	}

	return domain.TranslationWorkflowState{
		Status:            input.Target,
		AssignedToID:      assigneeID,
		ReviewerID:        reviewerID,
		TranslatedStoryID: translatedStoryID,
		RejectionReason:   reason,
	}, reason, nil
}

func (s *Service) checkActiveUser(ctx context.Context, userID uuid.UUID, field string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if !u.Active {
		return domain.NewValidationError(field, "account is disabled")
	}
	return nil
}

// checkTranslatedStory verifies the submitted story is a translated copy
// of this task's original, in the task's target language.
func (s *Service) checkTranslatedStory(ctx context.Context, task *domain.Translation, storyID uuid.UUID) error {
	story, err := s.stories.GetByID(ctx, storyID)
	if err != nil {
		return fmt.Errorf("load translated story: %w", err)
	}
	if story.OriginalStoryID == nil || *story.OriginalStoryID != task.OriginalStoryID {
		return domain.NewValidationError("translated_story_id", "story is not a translation of this task's original")
	}
	if story.Language != task.TargetLanguage {
		return domain.NewValidationError("translated_story_id", "story language does not match the task's target language")
	}
	return nil
}
