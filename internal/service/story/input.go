package story

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// CreateStoryInput holds the parameters for drafting a story.
type CreateStoryInput struct {
	Title      string
	Content    string
	Summary    *string
	Priority   domain.StoryPriority
	Language   string
	CategoryID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateStoryInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 300 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if strings.TrimSpace(i.Language) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStoryInput holds the parameters for editing story content.
// Version is the version the client last read; the update fails with a
// conflict if the story moved on since.
type UpdateStoryInput struct {
	StoryID    uuid.UUID
	Version    int
	Title      *string
	Content    *string
	Summary    *string
	Priority   *domain.StoryPriority
	CategoryID *uuid.UUID
	Language   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateStoryInput) Validate() error {
	var errs []domain.FieldError

	if i.StoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "story_id", Message: "required"})
	}
	if i.Version < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if i.Title == nil && i.Content == nil && i.Summary == nil &&
		i.Priority == nil && i.CategoryID == nil && i.Language == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > 300 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
		}
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if i.Language != nil && strings.TrimSpace(*i.Language) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	if i.CategoryID != nil && *i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeStatusInput holds the parameters for a story status transition.
type ChangeStatusInput struct {
	StoryID    uuid.UUID
	Version    int
	Target     domain.StoryStatus
	ReviewerID *uuid.UUID // for transitions that route to a reviewer
	Reason     *string    // for transitions that send work back
}

// Validate checks all fields and collects all errors.
func (i ChangeStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.StoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "story_id", Message: "required"})
	}
	if i.Version < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if !i.Target.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.ReviewerID != nil && *i.ReviewerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reviewer_id", Message: "must be a valid user id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PublishStoryInput holds the parameters for publishing an approved story.
type PublishStoryInput struct {
	StoryID   uuid.UUID
	Version   int
	Checklist domain.PublishChecklist
}

// Validate checks all fields and collects all errors.
func (i PublishStoryInput) Validate() error {
	var errs []domain.FieldError
	if i.StoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "story_id", Message: "required"})
	}
	if i.Version < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SkipTranslationsInput marks a story as publishable without translations.
type SkipTranslationsInput struct {
	StoryID uuid.UUID
	Version int
	Skipped bool
}

// Validate checks all fields and collects all errors.
func (i SkipTranslationsInput) Validate() error {
	var errs []domain.FieldError
	if i.StoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "story_id", Message: "required"})
	}
	if i.Version < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteStoryInput holds the parameters for deleting a story.
type DeleteStoryInput struct {
	StoryID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteStoryInput) Validate() error {
	if i.StoryID == uuid.Nil {
		return domain.NewValidationError("story_id", "required")
	}
	return nil
}
