package story

import (
	"context"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
	"github.com/kayamedia/newsroom-backend/internal/workflow"
)

// GetStory returns a story by id. Any authenticated staff member may read
// any story.
func (s *Service) GetStory(ctx context.Context, storyID uuid.UUID) (*domain.Story, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	if storyID == uuid.Nil {
		return nil, domain.NewValidationError("story_id", "required")
	}
	return s.stories.GetByID(ctx, storyID)
}

// AvailableTransitions returns the statuses the authenticated user may move
// the story to from its current status. The editing UI renders exactly
// these as actions.
func (s *Service) AvailableTransitions(ctx context.Context, storyID uuid.UUID) ([]domain.StoryStatus, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if storyID == uuid.Nil {
		return nil, domain.NewValidationError("story_id", "required")
	}

	story, err := s.stories.GetByID(ctx, storyID)
	if err != nil {
		return nil, err
	}

	return workflow.StoryTargets(story.Status, actor, subjectOf(story)), nil
}
