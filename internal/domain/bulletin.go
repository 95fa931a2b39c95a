package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bulletin is an audio news bulletin composed of an ordered list of stories.
type Bulletin struct {
	ID                uuid.UUID
	Title             string
	Status            BulletinStatus
	Language          string
	AuthorID          uuid.UUID
	ReviewerID        *uuid.UUID
	ScheduledFor      *time.Time
	PublishedAt       *time.Time
	RevisionReturnsTo *ReviewStage
	RejectionReason   *string
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Stories is the ordered story list; populated by read paths that
	// join bulletin_stories, nil otherwise.
	Stories []BulletinStory
}

// IsOwnedBy reports whether the given user authored the bulletin.
func (b *Bulletin) IsOwnedBy(userID uuid.UUID) bool {
	return b.AuthorID == userID
}

// IsReviewer reports whether the given user is the assigned reviewer.
func (b *Bulletin) IsReviewer(userID uuid.UUID) bool {
	return b.ReviewerID != nil && *b.ReviewerID == userID
}

// BulletinWorkflowState is the full set of workflow columns written on
// every bulletin status transition. A nil pointer clears the column.
type BulletinWorkflowState struct {
	Status            BulletinStatus
	ReviewerID        *uuid.UUID
	RejectionReason   *string
	RevisionReturnsTo *ReviewStage
	PublishedAt       *time.Time
}

// BulletinStory is one position in a bulletin's running order.
type BulletinStory struct {
	BulletinID uuid.UUID
	StoryID    uuid.UUID
	Position   int

	// Story is populated by read paths that join stories, nil otherwise.
	Story *Story
}

// ReorderItem pairs a story with its requested position in the running order.
type ReorderItem struct {
	StoryID  uuid.UUID
	Position int
}

// BulletinUpdateParams holds the mutable content fields of a bulletin.
// Nil pointer means "leave unchanged".
type BulletinUpdateParams struct {
	Title        *string
	Language     *string
	ScheduledFor *time.Time
}
