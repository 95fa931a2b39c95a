package workflow

import "github.com/kayamedia/newsroom-backend/internal/domain"

// Action is a capability checked outside the transition tables: content
// CRUD, assignment, and admin surfaces.
type Action string

const (
	ActionCreateStory      Action = "create_story"
	ActionEditStory        Action = "edit_story"
	ActionDeleteStory      Action = "delete_story"
	ActionCreateBulletin   Action = "create_bulletin"
	ActionEditBulletin     Action = "edit_bulletin"
	ActionDeleteBulletin   Action = "delete_bulletin"
	ActionReorderBulletin  Action = "reorder_bulletin"
	ActionAssignTranslator Action = "assign_translator"
	ActionManageUsers      Action = "manage_users"
	ActionManageMenu       Action = "manage_menu"
	ActionManageCategories Action = "manage_categories"
	ActionViewAudit        Action = "view_audit"
)

// EditContext carries the per-entity facts a CRUD capability depends on.
// Status is the story/bulletin status as a string so one context serves
// both entity kinds.
type EditContext struct {
	IsOwner bool
	Status  string
}

// Can is the capability predicate: may a role perform action in ctx?
// It is exhaustive over the Action enum and fails closed for unknown
// actions and invalid roles.
func Can(role domain.StaffRole, action Action, ctx EditContext) bool {
	if !role.IsValid() {
		return false
	}

	switch action {
	case ActionCreateStory, ActionCreateBulletin:
		// Everyone on staff drafts content, interns included.
		return true

	case ActionEditStory, ActionEditBulletin:
		if editable(ctx.Status) && ctx.IsOwner {
			return true
		}
		// Editors may fix anything that is not live.
		return role.AtLeast(domain.StaffRoleEditor) && !published(ctx.Status)

	case ActionDeleteStory, ActionDeleteBulletin:
		// Published content is never deleted, only archived; interns
		// never delete anything.
		if published(ctx.Status) || role == domain.StaffRoleIntern {
			return false
		}
		if ctx.IsOwner && ctx.Status == domain.StoryStatusDraft.String() {
			return true
		}
		return role.AtLeast(domain.StaffRoleEditor)

	case ActionReorderBulletin:
		if published(ctx.Status) {
			return false
		}
		return ctx.IsOwner || role.AtLeast(domain.StaffRoleEditor)

	case ActionAssignTranslator:
		return role.AtLeast(domain.StaffRoleSubEditor)

	case ActionManageMenu, ActionManageCategories:
		return role.AtLeast(domain.StaffRoleEditor)

	case ActionManageUsers, ActionViewAudit:
		return role.IsAdmin()
	}

	return false
}

// editable reports whether the status permits author edits: authors touch
// their own DRAFT or NEEDS_REVISION content only.
func editable(status string) bool {
	return status == domain.StoryStatusDraft.String() ||
		status == domain.StoryStatusNeedsRevision.String()
}

func published(status string) bool {
	return status == domain.StoryStatusPublished.String() ||
		status == domain.StoryStatusArchived.String()
}
