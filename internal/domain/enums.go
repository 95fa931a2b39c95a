package domain

// StoryStatus represents the editorial lifecycle position of a story.
type StoryStatus string

const (
	StoryStatusDraft           StoryStatus = "DRAFT"
	StoryStatusInReview        StoryStatus = "IN_REVIEW"
	StoryStatusNeedsRevision   StoryStatus = "NEEDS_REVISION"
	StoryStatusPendingApproval StoryStatus = "PENDING_APPROVAL"
	StoryStatusApproved        StoryStatus = "APPROVED"
	StoryStatusPublished       StoryStatus = "PUBLISHED"
	StoryStatusArchived        StoryStatus = "ARCHIVED"
)

func (s StoryStatus) String() string { return string(s) }

func (s StoryStatus) IsValid() bool {
	switch s {
	case StoryStatusDraft, StoryStatusInReview, StoryStatusNeedsRevision,
		StoryStatusPendingApproval, StoryStatusApproved, StoryStatusPublished,
		StoryStatusArchived:
		return true
	}
	return false
}

// BulletinStatus represents the editorial lifecycle position of a bulletin.
type BulletinStatus string

const (
	BulletinStatusDraft         BulletinStatus = "DRAFT"
	BulletinStatusInReview      BulletinStatus = "IN_REVIEW"
	BulletinStatusNeedsRevision BulletinStatus = "NEEDS_REVISION"
	BulletinStatusApproved      BulletinStatus = "APPROVED"
	BulletinStatusPublished     BulletinStatus = "PUBLISHED"
	BulletinStatusArchived      BulletinStatus = "ARCHIVED"
)

func (s BulletinStatus) String() string { return string(s) }

func (s BulletinStatus) IsValid() bool {
	switch s {
	case BulletinStatusDraft, BulletinStatusInReview, BulletinStatusNeedsRevision,
		BulletinStatusApproved, BulletinStatusPublished, BulletinStatusArchived:
		return true
	}
	return false
}

// TranslationStatus represents the lifecycle position of a translation task.
type TranslationStatus string

const (
	TranslationStatusPending     TranslationStatus = "PENDING"
	TranslationStatusInProgress  TranslationStatus = "IN_PROGRESS"
	TranslationStatusNeedsReview TranslationStatus = "NEEDS_REVIEW"
	TranslationStatusRejected    TranslationStatus = "REJECTED"
	TranslationStatusApproved    TranslationStatus = "APPROVED"
)

func (s TranslationStatus) String() string { return string(s) }

func (s TranslationStatus) IsValid() bool {
	switch s {
	case TranslationStatusPending, TranslationStatusInProgress,
		TranslationStatusNeedsReview, TranslationStatusRejected,
		TranslationStatusApproved:
		return true
	}
	return false
}

// StoryPriority represents the urgency of a story.
type StoryPriority string

const (
	StoryPriorityLow      StoryPriority = "LOW"
	StoryPriorityNormal   StoryPriority = "NORMAL"
	StoryPriorityHigh     StoryPriority = "HIGH"
	StoryPriorityBreaking StoryPriority = "BREAKING"
)

func (p StoryPriority) String() string { return string(p) }

func (p StoryPriority) IsValid() bool {
	switch p {
	case StoryPriorityLow, StoryPriorityNormal, StoryPriorityHigh, StoryPriorityBreaking:
		return true
	}
	return false
}

// StaffRole represents the authorization level of a staff member.
// Roles form a strict ladder; Tier gives the numeric rank for comparisons.
type StaffRole string

const (
	StaffRoleIntern     StaffRole = "INTERN"
	StaffRoleJournalist StaffRole = "JOURNALIST"
	StaffRoleSubEditor  StaffRole = "SUB_EDITOR"
	StaffRoleEditor     StaffRole = "EDITOR"
	StaffRoleAdmin      StaffRole = "ADMIN"
	StaffRoleSuperAdmin StaffRole = "SUPERADMIN"
)

func (r StaffRole) String() string { return string(r) }

func (r StaffRole) IsValid() bool {
	switch r {
	case StaffRoleIntern, StaffRoleJournalist, StaffRoleSubEditor,
		StaffRoleEditor, StaffRoleAdmin, StaffRoleSuperAdmin:
		return true
	}
	return false
}

// Tier returns the numeric rank of the role. Unknown roles rank below
// INTERN so permission checks fail closed.
func (r StaffRole) Tier() int {
	switch r {
	case StaffRoleIntern:
		return 1
	case StaffRoleJournalist:
		return 2
	case StaffRoleSubEditor:
		return 3
	case StaffRoleEditor:
		return 4
	case StaffRoleAdmin:
		return 5
	case StaffRoleSuperAdmin:
		return 6
	}
	return 0
}

// AtLeast reports whether r ranks at or above other.
func (r StaffRole) AtLeast(other StaffRole) bool {
	return r.Tier() >= other.Tier() && r.Tier() > 0
}

// IsAdmin reports whether the role is ADMIN or SUPERADMIN.
func (r StaffRole) IsAdmin() bool {
	return r == StaffRoleAdmin || r == StaffRoleSuperAdmin
}

// ReviewStage identifies the stage a revised entity returns to when its
// author resubmits. Recorded when NEEDS_REVISION is entered.
type ReviewStage string

const (
	ReviewStageReview   ReviewStage = "IN_REVIEW"
	ReviewStageApproval ReviewStage = "PENDING_APPROVAL"
)

func (s ReviewStage) String() string { return string(s) }

func (s ReviewStage) IsValid() bool {
	return s == ReviewStageReview || s == ReviewStageApproval
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeStory       EntityType = "STORY"
	EntityTypeBulletin    EntityType = "BULLETIN"
	EntityTypeTranslation EntityType = "TRANSLATION"
	EntityTypeUser        EntityType = "USER"
	EntityTypeCategory    EntityType = "CATEGORY"
	EntityTypeMenuItem    EntityType = "MENU_ITEM"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeStory, EntityTypeBulletin, EntityTypeTranslation,
		EntityTypeUser, EntityTypeCategory, EntityTypeMenuItem:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate       AuditAction = "CREATE"
	AuditActionUpdate       AuditAction = "UPDATE"
	AuditActionDelete       AuditAction = "DELETE"
	AuditActionStatusChange AuditAction = "STATUS_CHANGE"
	AuditActionPublish      AuditAction = "PUBLISH"
	AuditActionReorder      AuditAction = "REORDER"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionStatusChange, AuditActionPublish, AuditActionReorder:
		return true
	}
	return false
}
