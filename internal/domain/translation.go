package domain

import (
	"time"

	"github.com/google/uuid"
)

// Translation is a tracked translation task for a story into one target
// language. TranslatedStoryID stays nil until the translator submits a
// translated story copy.
type Translation struct {
	ID                uuid.UUID
	OriginalStoryID   uuid.UUID
	TargetLanguage    string
	Status            TranslationStatus
	AssignedToID      *uuid.UUID
	ReviewerID        *uuid.UUID
	TranslatedStoryID *uuid.UUID
	RejectionReason   *string
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TranslationWorkflowState is the full set of workflow columns written on
// every translation status transition. A nil pointer clears the column.
type TranslationWorkflowState struct {
	Status            TranslationStatus
	AssignedToID      *uuid.UUID
	ReviewerID        *uuid.UUID
	TranslatedStoryID *uuid.UUID
	RejectionReason   *string
}

// IsAssignee reports whether the given user is the assigned translator.
func (t *Translation) IsAssignee(userID uuid.UUID) bool {
	return t.AssignedToID != nil && *t.AssignedToID == userID
}

// IsReviewer reports whether the given user is the assigned reviewer.
func (t *Translation) IsReviewer(userID uuid.UUID) bool {
	return t.ReviewerID != nil && *t.ReviewerID == userID
}
