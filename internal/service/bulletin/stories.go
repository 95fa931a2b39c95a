package bulletin

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
)

// AddStory appends a story to the end of a bulletin's running order.
func (s *Service) AddStory(ctx context.Context, input AddStoryInput) (*domain.Bulletin, error) {
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

	editCtx := workflow.EditContext{
		IsOwner: bulletin.IsOwnedBy(actor.ID),
		Status:  bulletin.Status.String(),
	}
	if !workflow.Can(actor.Role, workflow.ActionReorderBulletin, editCtx) {
		return nil, domain.ErrForbidden
	}

	for _, bs := range bulletin.Stories {
		if bs.StoryID == input.StoryID {
			return nil, fmt.Errorf("story %s: %w", input.StoryID, domain.ErrAlreadyExists)
		}
	}
	if len(bulletin.Stories)+1 > s.maxStories {
		return nil, domain.NewValidationError("story_id", fmt.Sprintf("max %d stories per bulletin", s.maxStories))
	}

	exist, err := s.stories.ExistByIDs(ctx, []uuid.UUID{input.StoryID})
	if err != nil {
		return nil, fmt.Errorf("check story: %w", err)
	}
	if !exist[input.StoryID] {
		return nil, domain.NewValidationError("story_id", fmt.Sprintf("story %s does not exist", input.StoryID))
	}

	items := runningOrder(bulletin)
	items = append(items, domain.ReorderItem{StoryID: input.StoryID, Position: len(items) + 1})

	updated, err := s.writeRunningOrder(ctx, actor, bulletin, input.Version, items, "added", input.StoryID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "story added to bulletin",
		slog.String("user_id", actor.ID.String()),
		slog.String("bulletin_id", bulletin.ID.String()),
		slog.String("story_id", input.StoryID.String()),
	)

	return updated, nil
}

// RemoveStory removes a story from a bulletin's running order and closes
// the position gap.
func (s *Service) RemoveStory(ctx context.Context, input RemoveStoryInput) (*domain.Bulletin, error) {
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

	editCtx := workflow.EditContext{
		IsOwner: bulletin.IsOwnedBy(actor.ID),
		Status:  bulletin.Status.String(),
	}
	if !workflow.Can(actor.Role, workflow.ActionReorderBulletin, editCtx) {
		return nil, domain.ErrForbidden
	}

	all := runningOrder(bulletin)
	items := make([]domain.ReorderItem, 0, len(all))
	for _, item := range all {
		if item.StoryID == input.StoryID {
			continue
		}
		items = append(items, domain.ReorderItem{StoryID: item.StoryID, Position: len(items) + 1})
	}
	if len(items) == len(all) {
		return nil, fmt.Errorf("story %s is not in the bulletin: %w", input.StoryID, domain.ErrNotFound)
	}

	updated, err := s.writeRunningOrder(ctx, actor, bulletin, input.Version, items, "removed", input.StoryID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "story removed from bulletin",
		slog.String("user_id", actor.ID.String()),
		slog.String("bulletin_id", bulletin.ID.String()),
		slog.String("story_id", input.StoryID.String()),
	)

	return updated, nil
}

// runningOrder returns the bulletin's stories as reorder items, sorted by
// position.
func runningOrder(b *domain.Bulletin) []domain.ReorderItem {
	items := make([]domain.ReorderItem, len(b.Stories))
	for i, bs := range b.Stories {
		items[i] = domain.ReorderItem{StoryID: bs.StoryID, Position: bs.Position}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	return items
}

// writeRunningOrder replaces the stored order and logs the audit row in
// one transaction.
func (s *Service) writeRunningOrder(
	ctx context.Context,
	actor workflow.Actor,
	bulletin *domain.Bulletin,
	expectedVersion int,
	items []domain.ReorderItem,
	change string,
	storyID uuid.UUID,
) (*domain.Bulletin, error) {
	var updated *domain.Bulletin
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var replaceErr error
		updated, replaceErr = s.bulletins.ReplaceStories(txCtx, bulletin.ID, expectedVersion, items)
		if replaceErr != nil {
			return fmt.Errorf("replace running order: %w", replaceErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeBulletin,
			EntityID:   &bulletin.ID,
			Action:     domain.AuditActionReorder,
			Metadata: map[string]any{
				"change":      change,
				"story_id":    storyID.String(),
				"story_count": len(items),
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
	return updated, nil
}
