package bulletin

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// CreateBulletinInput holds the parameters for creating a bulletin.
type CreateBulletinInput struct {
	Title        string
	Language     string
	ScheduledFor *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateBulletinInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if strings.TrimSpace(i.Language) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBulletinInput holds the parameters for editing bulletin fields.
type UpdateBulletinInput struct {
	BulletinID   uuid.UUID
	Version      int
	Title        *string
	Language     *string
	ScheduledFor *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateBulletinInput) Validate() error {
	var errs []domain.FieldError

	if i.BulletinID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "bulletin_id", Message: "required"})
	}
	if i.Version < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if i.Title == nil && i.Language == nil && i.ScheduledFor == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > 200 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Language != nil && strings.TrimSpace(*i.Language) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeStatusInput holds the parameters for a bulletin status transition.
type ChangeStatusInput struct {
	BulletinID uuid.UUID
	Version    int
	Target     domain.BulletinStatus
	ReviewerID *uuid.UUID
	Reason     *string
}

// Validate checks all fields and collects all errors.
func (i ChangeStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.BulletinID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "bulletin_id", Message: "required"})
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

// ReorderInput holds the full requested running order of a bulletin.
type ReorderInput struct {
	BulletinID uuid.UUID
	Version    int
	Items      []domain.ReorderItem
}

// Validate checks the structural rules of a running order: positions are
// 1..N with no gaps or duplicates, and no story appears twice.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError

	if i.BulletinID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "bulletin_id", Message: "required"})
	}
	if i.Version < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one story required"})
	}

	seenStories := make(map[uuid.UUID]bool, len(i.Items))
	seenPositions := make(map[int]bool, len(i.Items))
	for _, item := range i.Items {
		if item.StoryID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "items", Message: "story id required"})
			continue
		}
		if seenStories[item.StoryID] {
			errs = append(errs, domain.FieldError{Field: "items", Message: "duplicate story " + item.StoryID.String()})
		}
		seenStories[item.StoryID] = true

		if item.Position < 1 || item.Position > len(i.Items) {
			errs = append(errs, domain.FieldError{Field: "items", Message: "positions must run 1..N"})
		} else if seenPositions[item.Position] {
			errs = append(errs, domain.FieldError{Field: "items", Message: "duplicate position"})
		}
		seenPositions[item.Position] = true
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddStoryInput holds the parameters for appending a story to a bulletin.
type AddStoryInput struct {
	BulletinID uuid.UUID
	Version    int
	StoryID    uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddStoryInput) Validate() error {
	var errs []domain.FieldError

	if i.BulletinID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "bulletin_id", Message: "required"})
	}
	if i.Version < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if i.StoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "story_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemoveStoryInput holds the parameters for removing a story from a bulletin.
type RemoveStoryInput struct {
	BulletinID uuid.UUID
	Version    int
	StoryID    uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemoveStoryInput) Validate() error {
	var errs []domain.FieldError

	if i.BulletinID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "bulletin_id", Message: "required"})
	}
	if i.Version < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if i.StoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "story_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteBulletinInput holds the parameters for deleting a bulletin.
type DeleteBulletinInput struct {
	BulletinID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteBulletinInput) Validate() error {
	if i.BulletinID == uuid.Nil {
		return domain.NewValidationError("bulletin_id", "required")
	}
	return nil
}
