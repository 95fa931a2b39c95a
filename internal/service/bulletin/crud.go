package bulletin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
)

// CreateBulletin drafts a new bulletin owned by the authenticated user.
func (s *Service) CreateBulletin(ctx context.Context, input CreateBulletinInput) (*domain.Bulletin, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)

	var bulletin *domain.Bulletin
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		bulletin, createErr = s.bulletins.Create(txCtx, &domain.Bulletin{
			Title:        title,
			Language:     strings.TrimSpace(input.Language),
			AuthorID:     actor.ID,
			ScheduledFor: input.ScheduledFor,
		})
		if createErr != nil {
			return fmt.Errorf("create bulletin: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeBulletin,
			EntityID:   &bulletin.ID,
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

	s.log.InfoContext(ctx, "bulletin created",
		slog.String("user_id", actor.ID.String()),
		slog.String("bulletin_id", bulletin.ID.String()),
	)

	return bulletin, nil
}

// GetBulletin returns a bulletin with its running order.
func (s *Service) GetBulletin(ctx context.Context, bulletinID uuid.UUID) (*domain.Bulletin, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	if bulletinID == uuid.Nil {
		return nil, domain.NewValidationError("bulletin_id", "required")
	}
	return s.bulletins.GetByID(ctx, bulletinID)
}

// ListBulletins returns bulletins for the editorial desk, newest first.
func (s *Service) ListBulletins(ctx context.Context, status *domain.BulletinStatus, language *string, limit, offset int) ([]*domain.Bulletin, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	return s.bulletins.List(ctx, status, language, limit, offset)
}

// ListPublished returns published bulletins for the public surface.
func (s *Service) ListPublished(ctx context.Context, language *string, limit, offset int) ([]*domain.Bulletin, error) {
	status := domain.BulletinStatusPublished
	return s.bulletins.List(ctx, &status, language, limit, offset)
}

// UpdateBulletin edits bulletin fields under the same ownership rules as
// story editing.
func (s *Service) UpdateBulletin(ctx context.Context, input UpdateBulletinInput) (*domain.Bulletin, error) {
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
	if !workflow.Can(actor.Role, workflow.ActionEditBulletin, editCtx) {
		return nil, domain.ErrForbidden
	}

	params := domain.BulletinUpdateParams{
		Title:        trimOrNil(input.Title),
		Language:     trimOrNil(input.Language),
		ScheduledFor: input.ScheduledFor,
	}

	var updated *domain.Bulletin
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.bulletins.UpdateContent(txCtx, input.BulletinID, input.Version, params)
		if updateErr != nil {
			return fmt.Errorf("update bulletin: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeBulletin,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "bulletin updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("bulletin_id", updated.ID.String()),
	)

	return updated, nil
}

// DeleteBulletin removes a bulletin. Published bulletins are archived, not
// deleted.
func (s *Service) DeleteBulletin(ctx context.Context, input DeleteBulletinInput) error {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	bulletin, err := s.bulletins.GetByID(ctx, input.BulletinID)
	if err != nil {
		return err
	}

	editCtx := workflow.EditContext{
		IsOwner: bulletin.IsOwnedBy(actor.ID),
		Status:  bulletin.Status.String(),
	}
	if !workflow.Can(actor.Role, workflow.ActionDeleteBulletin, editCtx) {
		return domain.ErrForbidden
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.bulletins.Delete(txCtx, bulletin.ID); deleteErr != nil {
			return fmt.Errorf("delete bulletin: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeBulletin,
			EntityID:   &bulletin.ID,
			Action:     domain.AuditActionDelete,
			Metadata: map[string]any{
				"title":  bulletin.Title,
				"status": bulletin.Status.String(),
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

	s.log.InfoContext(ctx, "bulletin deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("bulletin_id", bulletin.ID.String()),
	)

	return nil
}
