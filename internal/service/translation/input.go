package translation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// CreateTaskInput holds the parameters for registering a translation task.
type CreateTaskInput struct {
	StoryID        uuid.UUID
	TargetLanguage string
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.StoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "story_id", Message: "required"})
	}
	lang := strings.TrimSpace(i.TargetLanguage)
	if lang == "" {
		errs = append(errs, domain.FieldError{Field: "target_language", Message: "required"})
	}
	if len(lang) > 10 {
		errs = append(errs, domain.FieldError{Field: "target_language", Message: "max 10 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeStatusInput holds the parameters for a translation status transition.
type ChangeStatusInput struct {
	TranslationID     uuid.UUID
	Version           int
	Target            domain.TranslationStatus
	AssigneeID        *uuid.UUID // for the assignment transition
	ReviewerID        *uuid.UUID // for the submission transition
	TranslatedStoryID *uuid.UUID // for the submission transition
	Reason            *string    // for the rejection transition
}

// Validate checks all fields and collects all errors.
func (i ChangeStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.TranslationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "translation_id", Message: "required"})
	}
	if i.Version < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if !i.Target.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.AssigneeID != nil && *i.AssigneeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assigned_to_id", Message: "must be a valid user id"})
	}
	if i.ReviewerID != nil && *i.ReviewerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "reviewer_id", Message: "must be a valid user id"})
	}
	if i.TranslatedStoryID != nil && *i.TranslatedStoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "translated_story_id", Message: "must be a valid story id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteTaskInput holds the parameters for deleting a translation task.
type DeleteTaskInput struct {
	TranslationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteTaskInput) Validate() error {
	if i.TranslationID == uuid.Nil {
		return domain.NewValidationError("translation_id", "required")
	}
	return nil
}
