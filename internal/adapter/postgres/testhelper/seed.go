package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// SeedUser inserts a staff user with a unique email/username and returns its id.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.StaffRole) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO users (id, email, username, name, password_hash, staff_role)
		VALUES ($1, $2, $3, $4, 'x', $5)`,
		id,
		fmt.Sprintf("%s@test.local", id),
		fmt.Sprintf("user-%s", id),
		"Test User",
		role,
	)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}
	return id
}

// SeedCategory inserts a category with a unique slug and returns its id.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO categories (id, name, slug) VALUES ($1, 'Test Category', $2)`,
		id, fmt.Sprintf("cat-%s", id),
	)
	if err != nil {
		t.Fatalf("testhelper: seed category: %v", err)
	}
	return id
}

// SeedStory inserts a story in the given status and returns its id.
// The slug is unique per call.
func SeedStory(t *testing.T, pool *pgxpool.Pool, authorID, categoryID uuid.UUID, status domain.StoryStatus) uuid.UUID {
	t.Helper()

	id := uuid.New()
	var publishedAt *time.Time
	if status == domain.StoryStatusPublished {
		now := time.Now().UTC()
		publishedAt = &now
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO stories (id, title, slug, content, status, author_id, category_id, published_at)
		VALUES ($1, 'Test Story', $2, '<p>body</p>', $3, $4, $5, $6)`,
		id, fmt.Sprintf("story-%s", id), status, authorID, categoryID, publishedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed story: %v", err)
	}
	return id
}

// SeedBulletin inserts a bulletin in the given status and returns its id.
func SeedBulletin(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, status domain.BulletinStatus) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO bulletins (id, title, status, author_id) VALUES ($1, 'Morning Bulletin', $2, $3)`,
		id, status, authorID,
	)
	if err != nil {
		t.Fatalf("testhelper: seed bulletin: %v", err)
	}
	return id
}
