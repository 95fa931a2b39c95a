// Package workflow is the single source of truth for editorial lifecycle
// rules: which status transitions exist, which roles may take them, what
// companion data each transition needs, and what blocks a publish.
//
// Everything here is pure: no I/O, no clocks, no storage. Unknown
// role/status combinations always fail closed.
package workflow

import (
	"github.com/google/uuid"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// Actor identifies the user requesting a transition or action.
type Actor struct {
	ID   uuid.UUID
	Role domain.StaffRole
}

// Subject carries the entity facts a permission decision depends on.
// Owner is the story/bulletin author or the translation's assigned
// translator; Reviewer is the assigned reviewer, uuid.Nil if none.
type Subject struct {
	OwnerID    uuid.UUID
	ReviewerID uuid.UUID
}

// IsOwner reports whether the actor owns the subject.
func (s Subject) IsOwner(a Actor) bool {
	return s.OwnerID != uuid.Nil && s.OwnerID == a.ID
}

// IsReviewer reports whether the actor is the subject's assigned reviewer.
func (s Subject) IsReviewer(a Actor) bool {
	return s.ReviewerID != uuid.Nil && s.ReviewerID == a.ID
}

// Edge is one permitted status transition. The permission fields are OR-ed:
// the edge is allowed for the owner (OwnerAllowed), the assigned reviewer
// (ReviewerAllowed), or any role at or above MinRole. An edge with none of
// the three set is unreachable.
type Edge struct {
	// Permission gates.
	OwnerAllowed    bool
	ReviewerAllowed bool
	MinRole         domain.StaffRole // empty: no role qualifies by rank alone

	// Companion data required by the transition.
	RequiresReviewer        bool // reviewer_id must be supplied
	RequiresAssignee        bool // assigned_to_id must be present after the transition
	RequiresReason          bool // rejection_reason must be supplied
	RequiresTranslatedStory bool // translated_story_id must be supplied

	// Revision bookkeeping.
	RecordsReturnStage domain.ReviewStage // non-empty: remember origin on entering NEEDS_REVISION
	ResumesRevision    bool               // edge consumes the recorded return stage
}

// Permitted reports whether the actor may take this edge on the subject.
// Fails closed for invalid roles.
func (e Edge) Permitted(a Actor, s Subject) bool {
	if !a.Role.IsValid() {
		return false
	}
	if e.OwnerAllowed && s.IsOwner(a) {
		return true
	}
	if e.ReviewerAllowed && s.IsReviewer(a) {
		return true
	}
	if e.MinRole != "" && a.Role.AtLeast(e.MinRole) {
		return true
	}
	return false
}
