package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// MenuItem is one node of the navigation tree. ParentID is nil for roots.
type MenuItem struct {
	ID        uuid.UUID
	Label     string
	URL       string
	ParentID  *uuid.UUID
	Position  int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Children is populated by BuildMenuTree, nil otherwise.
	Children []*MenuItem
}

// MenuItemUpdateParams holds the mutable fields of a menu item.
// Nil pointer means "leave unchanged".
type MenuItemUpdateParams struct {
	Label    *string
	URL      *string
	ParentID *uuid.UUID
	Position *int
	Active   *bool
}

// BuildMenuTree arranges a flat item list into a forest ordered by Position.
// Items referencing a missing parent are promoted to roots rather than
// dropped, so a broken reference stays visible.
func BuildMenuTree(items []*MenuItem) []*MenuItem {
	byID := make(map[uuid.UUID]*MenuItem, len(items))
	for _, it := range items {
		it.Children = nil
		byID[it.ID] = it
	}

	var roots []*MenuItem
	for _, it := range items {
		if it.ParentID == nil {
			roots = append(roots, it)
			continue
		}
		parent, ok := byID[*it.ParentID]
		if !ok {
			roots = append(roots, it)
			continue
		}
		parent.Children = append(parent.Children, it)
	}

	sortMenuLevel(roots)
	for _, it := range items {
		sortMenuLevel(it.Children)
	}
	return roots
}

func sortMenuLevel(level []*MenuItem) {
	sort.SliceStable(level, func(i, j int) bool {
		return level[i].Position < level[j].Position
	})
}
