package bulletin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
)

// ChangeStatus executes one bulletin status transition. Going on air
// (target PUBLISHED) additionally requires a non-empty running order with
// every story approved or already published.
func (s *Service) ChangeStatus(ctx context.Context, input ChangeStatusInput) (*domain.Bulletin, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	bulletin, err := s.bulletins.GetByID(ctx, input.BulletinID)
	if err != nil {
		return nil, err
	}

	from := bulletin.Status
	edge, ok := workflow.BulletinEdge(from, input.Target)
	if !ok {
		return nil, domain.NewTransitionError(from.String(), input.Target.String(), domain.ErrInvalidTransition, "")
	}
	if !edge.Permitted(actor, subjectOf(bulletin)) {
		return nil, domain.NewTransitionError(from.String(), input.Target.String(), domain.ErrForbidden, "")
	}

	state, reason, err := s.buildWorkflowState(ctx, bulletin, input, edge)
	if err != nil {
		return nil, err
	}

	if input.Target == domain.BulletinStatusPublished {
		if err := checkRunningOrder(bulletin); err != nil {
			return nil, err
		}
		now := time.Now().UTC()
		state.PublishedAt = &now
	}

	var updated *domain.Bulletin
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.bulletins.UpdateWorkflow(txCtx, bulletin.ID, input.Version, state)
		if updateErr != nil {
			return fmt.Errorf("update workflow: %w", updateErr)
		}

		action := domain.AuditActionStatusChange
		if input.Target == domain.BulletinStatusPublished {
			action = domain.AuditActionPublish
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
			EntityType: domain.EntityTypeBulletin,
			EntityID:   &bulletin.ID,
			Action:     action,
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

	s.log.InfoContext(ctx, "bulletin status changed",
		slog.String("user_id", actor.ID.String()),
		slog.String("bulletin_id", bulletin.ID.String()),
		slog.String("from", from.String()),
		slog.String("to", input.Target.String()),
	)

	return updated, nil
}

func (s *Service) buildWorkflowState(
	ctx context.Context,
	bulletin *domain.Bulletin,
	input ChangeStatusInput,
	edge workflow.Edge,
) (domain.BulletinWorkflowState, *string, error) {
	var zero domain.BulletinWorkflowState
	from, to := bulletin.Status.String(), input.Target.String()

	reviewerID := bulletin.ReviewerID
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
		if bulletin.RevisionReturnsTo == nil || bulletin.RevisionReturnsTo.String() != to {
			return zero, nil, domain.NewTransitionError(from, to, domain.ErrInvalidTransition,
				"bulletin must resume at the stage that sent it back")
		}
	}

	state := domain.BulletinWorkflowState{
		Status:          input.Target,
		ReviewerID:      reviewerID,
		RejectionReason: reason,
		PublishedAt:     bulletin.PublishedAt,
	}
	if edge.RecordsReturnStage != "" {
		stage := edge.RecordsReturnStage
		state.RevisionReturnsTo = &stage
	}
	return state, reason, nil
}

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

// checkRunningOrder gates going on air: at least one story, every story
// cleared for broadcast.
func checkRunningOrder(bulletin *domain.Bulletin) error {
	if len(bulletin.Stories) == 0 {
		return domain.NewValidationError("stories", "bulletin has no stories")
	}
	for _, bs := range bulletin.Stories {
		if bs.Story == nil {
			continue
		}
		switch bs.Story.Status {
		case domain.StoryStatusApproved, domain.StoryStatusPublished:
		default:
			return domain.NewValidationError("stories", fmt.Sprintf(
				"story %q is not cleared for broadcast (current status: %s)",
				bs.Story.Title, bs.Story.Status,
			))
		}
	}
	return nil
}
