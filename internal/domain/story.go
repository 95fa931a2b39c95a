package domain

import (
	"time"

	"github.com/google/uuid"
)

// Story is a text news item with its full editorial state.
// Version is a monotonic counter used for compare-and-swap updates;
// every successful mutation increments it.
type Story struct {
	ID                  uuid.UUID
	Title               string
	Slug                string
	Content             string // rich text (HTML)
	Summary             *string
	Status              StoryStatus
	Priority            StoryPriority
	Language            string
	AuthorID            uuid.UUID
	ReviewerID          *uuid.UUID
	AssignedToID        *uuid.UUID
	CategoryID          uuid.UUID
	PublishedAt         *time.Time
	OriginalStoryID     *uuid.UUID // set on stories that are translated copies
	RevisionReturnsTo   *ReviewStage
	RejectionReason     *string
	TranslationsSkipped bool
	Version             int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsOwnedBy reports whether the given user authored the story.
func (s *Story) IsOwnedBy(userID uuid.UUID) bool {
	return s.AuthorID == userID
}

// IsReviewer reports whether the given user is the assigned reviewer.
func (s *Story) IsReviewer(userID uuid.UUID) bool {
	return s.ReviewerID != nil && *s.ReviewerID == userID
}

// StoryUpdateParams holds the mutable content fields of a story.
// Nil pointer means "leave unchanged".
type StoryUpdateParams struct {
	Title      *string
	Content    *string
	Summary    *string
	Priority   *StoryPriority
	CategoryID *uuid.UUID
	Language   *string
}

// StoryWorkflowState is the full set of workflow columns written on every
// status transition. All fields are written as given; a nil pointer clears
// the column.
type StoryWorkflowState struct {
	Status            StoryStatus
	ReviewerID        *uuid.UUID
	AssignedToID      *uuid.UUID
	RejectionReason   *string
	RevisionReturnsTo *ReviewStage
	PublishedAt       *time.Time
}

// StoryFilter contains filtering/pagination parameters for story lists.
type StoryFilter struct {
	Status     *StoryStatus
	CategoryID *uuid.UUID
	AuthorID   *uuid.UUID
	Language   *string
	Priority   *StoryPriority
	Search     *string
	Limit      int
	Offset     int
}

// PublishChecklist holds the manual pre-publish confirmations supplied by
// the approving editor. translationsVerified is derived, not submitted.
type PublishChecklist struct {
	ContentReviewed     bool
	AudioQualityChecked bool
}

// PublishReadiness is the result of the publish precondition check.
// Issues is human-readable and empty exactly when CanPublish is true.
type PublishReadiness struct {
	CanPublish bool
	Issues     []string
}
