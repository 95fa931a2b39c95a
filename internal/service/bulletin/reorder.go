package bulletin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
)

// Reorder rearranges a bulletin's running order. The requested items must
// be a permutation of the stories already in the bulletin; membership
// changes go through AddStory and RemoveStory. Every rule is checked
// before the first row is touched: a rejected reorder leaves the stored
// order exactly as it was.
func (s *Service) Reorder(ctx context.Context, input ReorderInput) (*domain.Bulletin, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.Items) > s.maxStories {
		return nil, domain.NewValidationError("items", fmt.Sprintf("max %d stories per bulletin", s.maxStories))
	}

	bulletin, err := s.bulletins.GetByID(ctx, input.BulletinID)
	if err != nil {
		return nil, err
	}

	editCtx := workflow.EditContext{
		IsOwner: bulletin.IsOwnedBy(actor.ID),
		Status:  bulletin.Status.String(),
	}
	if !workflow.Can(actor.Role, workflow.ActionReorderBulletin, editCtx) {
		return nil, domain.ErrForbidden
	}

	members := make(map[uuid.UUID]bool, len(bulletin.Stories))
	for _, bs := range bulletin.Stories {
		members[bs.StoryID] = true
	}
	for _, item := range input.Items {
		if !members[item.StoryID] {
			return nil, domain.NewValidationError("items", fmt.Sprintf("story %s is not in the bulletin", item.StoryID))
		}
	}
	// Items are duplicate-free at this point, so equal counts make the
	// request an exact permutation of the current membership.
	if len(input.Items) != len(members) {
		return nil, domain.NewValidationError("items", "running order must include every bulletin story")
	}

	var updated *domain.Bulletin
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var replaceErr error
		updated, replaceErr = s.bulletins.ReplaceStories(txCtx, bulletin.ID, input.Version, input.Items)
		if replaceErr != nil {
			return fmt.Errorf("replace running order: %w", replaceErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeBulletin,
			EntityID:   &bulletin.ID,
			Action:     domain.AuditActionReorder,
			Metadata: map[string]any{
				"story_count": len(input.Items),
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

	s.log.InfoContext(ctx, "bulletin reordered",
		slog.String("user_id", actor.ID.String()),
		slog.String("bulletin_id", bulletin.ID.String()),
		slog.Int("story_count", len(input.Items)),
	)

	return updated, nil
}
