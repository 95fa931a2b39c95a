package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
)

// CreateTask registers a translation task for a story. One task per target
// language; duplicates are rejected.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Translation, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !workflow.Can(actor.Role, workflow.ActionAssignTranslator, workflow.EditContext{}) {
		return nil, domain.ErrForbidden
	}

	story, err := s.stories.GetByID(ctx, input.StoryID)
	if err != nil {
		return nil, err
	}

	lang := strings.TrimSpace(input.TargetLanguage)
	if lang == story.Language {
		return nil, domain.NewValidationError("target_language", "story is already in this language")
	}

	var task *domain.Translation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		task, createErr = s.translations.Create(txCtx, &domain.Translation{
			OriginalStoryID: story.ID,
			TargetLanguage:  lang,
		})
		if createErr != nil {
			return fmt.Errorf("create translation task: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeTranslation,
			EntityID:   &task.ID,
			Action:     domain.AuditActionCreate,
			Metadata: map[string]any{
				"story_id":        story.ID.String(),
				"target_language": lang,
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

	s.log.InfoContext(ctx, "translation task created",
		slog.String("user_id", actor.ID.String()),
		slog.String("translation_id", task.ID.String()),
		slog.String("target_language", lang),
	)

	return task, nil
}

// GetTask returns a translation task by id.
func (s *Service) GetTask(ctx context.Context, translationID uuid.UUID) (*domain.Translation, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	if translationID == uuid.Nil {
		return nil, domain.NewValidationError("translation_id", "required")
	}
	return s.translations.GetByID(ctx, translationID)
}

// ListByStory returns all translation tasks for a story.
func (s *Service) ListByStory(ctx context.Context, storyID uuid.UUID) ([]*domain.Translation, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	if storyID == uuid.Nil {
		return nil, domain.NewValidationError("story_id", "required")
	}
	return s.translations.ListByStory(ctx, storyID)
}

// MyTasks returns the authenticated user's open translation worklist.
func (s *Service) MyTasks(ctx context.Context) ([]*domain.Translation, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.translations.ListByAssignee(ctx, actor.ID)
}

// DeleteTask removes a translation task that has not started yet.
func (s *Service) DeleteTask(ctx context.Context, input DeleteTaskInput) error {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}
	if !workflow.Can(actor.Role, workflow.ActionAssignTranslator, workflow.EditContext{}) {
		return domain.ErrForbidden
	}

	task, err := s.translations.GetByID(ctx, input.TranslationID)
	if err != nil {
		return err
	}
	if task.Status != domain.TranslationStatusPending {
		return domain.NewValidationError("status", "only pending tasks can be deleted")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.translations.Delete(txCtx, task.ID); deleteErr != nil {
			return fmt.Errorf("delete translation task: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor.ID,
			EntityType: domain.EntityTypeTranslation,
			EntityID:   &task.ID,
			Action:     domain.AuditActionDelete,
			Metadata: map[string]any{
				"story_id":        task.OriginalStoryID.String(),
				"target_language": task.TargetLanguage,
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

	s.log.InfoContext(ctx, "translation task deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("translation_id", task.ID.String()),
	)

	return nil
}
