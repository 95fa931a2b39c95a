package workflow

import "github.com/kayamedia/newsroom-backend/internal/domain"

// storyEdges is the story transition table: (from, to) → Edge.
// Absent pairs are invalid transitions.
var storyEdges = map[domain.StoryStatus]map[domain.StoryStatus]Edge{
	domain.StoryStatusDraft: {
		domain.StoryStatusInReview: {
			OwnerAllowed:     true,
			MinRole:          domain.StaffRoleEditor,
			RequiresReviewer: true,
		},
		domain.StoryStatusArchived: {
			OwnerAllowed: true,
			MinRole:      domain.StaffRoleEditor,
		},
	},
	domain.StoryStatusInReview: {
		domain.StoryStatusNeedsRevision: {
			ReviewerAllowed:    true,
			MinRole:            domain.StaffRoleEditor,
			RequiresReason:     true,
			RecordsReturnStage: domain.ReviewStageReview,
		},
		domain.StoryStatusPendingApproval: {
			ReviewerAllowed: true,
			MinRole:         domain.StaffRoleEditor,
		},
	},
	domain.StoryStatusNeedsRevision: {
		// The author resubmits to the stage that sent the story back;
		// the executor checks the recorded return stage matches.
		domain.StoryStatusInReview: {
			OwnerAllowed:    true,
			ResumesRevision: true,
		},
		domain.StoryStatusPendingApproval: {
			OwnerAllowed:    true,
			ResumesRevision: true,
		},
	},
	domain.StoryStatusPendingApproval: {
		domain.StoryStatusApproved: {
			MinRole: domain.StaffRoleSubEditor,
		},
		domain.StoryStatusNeedsRevision: {
			MinRole:            domain.StaffRoleSubEditor,
			RequiresReason:     true,
			RecordsReturnStage: domain.ReviewStageApproval,
		},
	},
	domain.StoryStatusApproved: {
		domain.StoryStatusPublished: {
			MinRole: domain.StaffRoleSubEditor,
		},
		domain.StoryStatusArchived: {
			MinRole: domain.StaffRoleEditor,
		},
	},
	domain.StoryStatusPublished: {
		domain.StoryStatusArchived: {
			MinRole: domain.StaffRoleEditor,
		},
	},
	// ARCHIVED is terminal.
}

// bulletinEdges is the bulletin transition table. Bulletins skip the
// PENDING_APPROVAL stage: the reviewer pass and the sub-editor approval
// happen on the same IN_REVIEW item.
var bulletinEdges = map[domain.BulletinStatus]map[domain.BulletinStatus]Edge{
	domain.BulletinStatusDraft: {
		domain.BulletinStatusInReview: {
			OwnerAllowed:     true,
			MinRole:          domain.StaffRoleEditor,
			RequiresReviewer: true,
		},
		domain.BulletinStatusArchived: {
			OwnerAllowed: true,
			MinRole:      domain.StaffRoleEditor,
		},
	},
	domain.BulletinStatusInReview: {
		domain.BulletinStatusNeedsRevision: {
			ReviewerAllowed:    true,
			MinRole:            domain.StaffRoleEditor,
			RequiresReason:     true,
			RecordsReturnStage: domain.ReviewStageReview,
		},
		domain.BulletinStatusApproved: {
			MinRole: domain.StaffRoleSubEditor,
		},
	},
	domain.BulletinStatusNeedsRevision: {
		domain.BulletinStatusInReview: {
			OwnerAllowed:    true,
			ResumesRevision: true,
		},
	},
	domain.BulletinStatusApproved: {
		domain.BulletinStatusPublished: {
			MinRole: domain.StaffRoleSubEditor,
		},
		domain.BulletinStatusArchived: {
			MinRole: domain.StaffRoleEditor,
		},
	},
	domain.BulletinStatusPublished: {
		domain.BulletinStatusArchived: {
			MinRole: domain.StaffRoleEditor,
		},
	},
}

// translationEdges is the translation transition table. "Owner" here is
// the assigned translator. The NEEDS_REVIEW pass is mandatory: there is no
// edge into APPROVED except from NEEDS_REVIEW.
var translationEdges = map[domain.TranslationStatus]map[domain.TranslationStatus]Edge{
	domain.TranslationStatusPending: {
		domain.TranslationStatusInProgress: {
			OwnerAllowed:     true,
			MinRole:          domain.StaffRoleEditor,
			RequiresAssignee: true,
		},
	},
	domain.TranslationStatusInProgress: {
		domain.TranslationStatusNeedsReview: {
			OwnerAllowed:            true,
			RequiresReviewer:        true,
			RequiresTranslatedStory: true,
		},
	},
	domain.TranslationStatusNeedsReview: {
		domain.TranslationStatusApproved: {
			ReviewerAllowed: true,
			MinRole:         domain.StaffRoleSubEditor,
		},
		domain.TranslationStatusRejected: {
			ReviewerAllowed: true,
			MinRole:         domain.StaffRoleSubEditor,
			RequiresReason:  true,
		},
	},
	domain.TranslationStatusRejected: {
		domain.TranslationStatusInProgress: {
			OwnerAllowed: true,
			MinRole:      domain.StaffRoleEditor,
		},
	},
	// APPROVED is terminal.
}

// StoryEdge looks up the story transition table.
func StoryEdge(from, to domain.StoryStatus) (Edge, bool) {
	e, ok := storyEdges[from][to]
	return e, ok
}

// BulletinEdge looks up the bulletin transition table.
func BulletinEdge(from, to domain.BulletinStatus) (Edge, bool) {
	e, ok := bulletinEdges[from][to]
	return e, ok
}

// TranslationEdge looks up the translation transition table.
func TranslationEdge(from, to domain.TranslationStatus) (Edge, bool) {
	e, ok := translationEdges[from][to]
	return e, ok
}

// StoryTargets returns the statuses reachable from the given status for the
// actor on the subject, in no particular order. Used by the API to offer
// only valid actions.
func StoryTargets(from domain.StoryStatus, a Actor, s Subject) []domain.StoryStatus {
	var targets []domain.StoryStatus
	for to, edge := range storyEdges[from] {
		if edge.Permitted(a, s) {
			targets = append(targets, to)
		}
	}
	return targets
}

// BulletinTargets returns the statuses reachable from the given status for
// the actor on the subject.
func BulletinTargets(from domain.BulletinStatus, a Actor, s Subject) []domain.BulletinStatus {
	var targets []domain.BulletinStatus
	for to, edge := range bulletinEdges[from] {
		if edge.Permitted(a, s) {
			targets = append(targets, to)
		}
	}
	return targets
}

// TranslationTargets returns the statuses reachable from the given status
// for the actor on the subject.
func TranslationTargets(from domain.TranslationStatus, a Actor, s Subject) []domain.TranslationStatus {
	var targets []domain.TranslationStatus
	for to, edge := range translationEdges[from] {
		if edge.Permitted(a, s) {
			targets = append(targets, to)
		}
	}
	return targets
}
