package story

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
)

// ChangeStatus executes one story status transition: edge lookup,
// permission check, companion data checks, then the write and an audit
// record in one transaction. PUBLISHED is not reachable here; Publish runs
// the readiness gate first.
func (s *Service) ChangeStatus(ctx context.Context, input ChangeStatusInput) (*domain.Story, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Target == domain.StoryStatusPublished {
		return nil, domain.NewValidationError("status", "publishing goes through the publish operation")
	}

	story, err := s.stories.GetByID(ctx, input.StoryID)
	if err != nil {
		return nil, err
	}

	from := story.Status
	edge, ok := workflow.StoryEdge(from, input.Target)
	if !ok {
		return nil, domain.NewTransitionError(from.String(), input.Target.String(), domain.ErrInvalidTransition, "")
	}
	if !edge.Permitted(actor, subjectOf(story)) {
		return nil, domain.NewTransitionError(from.String(), input.Target.String(), domain.ErrForbidden, "")
	}

	state, reason, err := s.buildWorkflowState(ctx, story, input, edge)
	if err != nil {
		return nil, err
	}

	var updated *domain.Story
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.stories.UpdateWorkflow(txCtx, story.ID, input.Version, state)
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
			EntityType: domain.EntityTypeStory,
			EntityID:   &story.ID,
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

	s.log.InfoContext(ctx, "story status changed",
		slog.String("user_id", actor.ID.String()),
		slog.String("story_id", story.ID.String()),
		slog.String("from", from.String()),
		slog.String("to", input.Target.String()),
	)

	return updated, nil
}

// buildWorkflowState resolves the companion data an edge requires and
// produces the full target column set. Reason is returned separately for
// the audit record.
func (s *Service) buildWorkflowState(
	ctx context.Context,
	story *domain.Story,
	input ChangeStatusInput,
	edge workflow.Edge,
) (domain.StoryWorkflowState, *string, error) {
	var zero domain.StoryWorkflowState
	from, to := story.Status.String(), input.Target.String()

	reviewerID := story.ReviewerID
	if edge.RequiresReviewer {
		if input.ReviewerID != nil {
			reviewerID = input.ReviewerID
		}
		if reviewerID == nil {
			return zero, nil, domain.NewTransitionError(from, to, domain.ErrMissingField, "reviewer_id")
		}
		if err := s.checkReviewer(ctx, *reviewerID); err != nil {
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

	if edge.ResumesRevision {
		if story.RevisionReturnsTo == nil || story.RevisionReturnsTo.String() != to {
			return zero, nil, domain.NewTransitionError(from, to, domain.ErrInvalidTransition,
				"story must resume at the stage that sent it back")
		}
	}

	state := domain.StoryWorkflowState{
		Status:          input.Target,
		ReviewerID:      reviewerID,
		AssignedToID:    story.AssignedToID,
		RejectionReason: reason,
		PublishedAt:     story.PublishedAt,
	}
	if edge.RecordsReturnStage != "" {
		stage := edge.RecordsReturnStage
		state.RevisionReturnsTo = &stage
	}
	return state, reason, nil
}

// checkReviewer verifies the requested reviewer is an active staff member
// above intern rank.
func (s *Service) checkReviewer(ctx context.Context, reviewerID uuid.UUID) error {
	reviewer, err := s.users.GetByID(ctx, reviewerID)
	if err != nil {
		return fmt.Errorf("load reviewer: %w", err)
	}
	if !reviewer.Active {
		return domain.NewValidationError("reviewer_id", "reviewer account is disabled")
	}
	if !reviewer.StaffRole.AtLeast(domain.StaffRoleJournalist) {
		return domain.NewValidationError("reviewer_id", "interns cannot review")
	}
	return nil
}
