package story

import (
	"context"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// ListStories returns stories matching the filter for the editorial desk.
func (s *Service) ListStories(ctx context.Context, filter domain.StoryFilter) ([]*domain.Story, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	return s.stories.List(ctx, filter)
}

// ListPublished returns the public feed of published stories, newest first.
// No authentication: this is the consumption surface for affiliated
// stations.
func (s *Service) ListPublished(ctx context.Context, language string, limit, offset int) ([]*domain.Story, error) {
	return s.stories.ListPublished(ctx, language, limit, offset)
}

// GetPublishedBySlug returns a single published story for public readers.
// Unpublished stories are reported as not found, never as forbidden, so
// the public surface leaks nothing about work in progress.
func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Story, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	story, err := s.stories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if story.Status != domain.StoryStatusPublished {
		return nil, domain.ErrNotFound
	}
	return story, nil
}
