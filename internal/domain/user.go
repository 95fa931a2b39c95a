package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff member. StaffRole is the single permission key
// for every workflow transition.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Name         string
	PasswordHash string
	StaffRole    StaffRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category is a flat story classification (politics, sport, weather...).
type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
