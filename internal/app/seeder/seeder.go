// Package seeder populates a fresh database with staff accounts,
// categories and menu entries from a YAML fixture. It is intended to be
// run offline, not as part of the main server.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kayamedia/newsroom-backend/internal/domain"
)

// UserSeedRepo is the subset of the user repository the seeder needs.
type UserSeedRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CategorySeedRepo is the subset of the category repository the seeder needs.
type CategorySeedRepo interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}

// MenuSeedRepo is the subset of the menu repository the seeder needs.
type MenuSeedRepo interface {
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.MenuItem, error)
}

// Result counts what a run did per section.
type Result struct {
	UsersCreated      int
	UsersSkipped      int
	CategoriesCreated int
	CategoriesSkipped int
	MenuCreated       int
	MenuSkipped       int
}

// Seeder applies a fixture to the database. Runs are idempotent: entries
// that already exist (by email, slug or label) are skipped, never updated.
type Seeder struct {
	users      UserSeedRepo
	categories CategorySeedRepo
	menu       MenuSeedRepo
	hashCost   int
	dryRun     bool
	log        *slog.Logger
}

// New creates a Seeder.
func New(log *slog.Logger, users UserSeedRepo, categories CategorySeedRepo, menu MenuSeedRepo, hashCost int, dryRun bool) *Seeder {
	return &Seeder{
		users:      users,
		categories: categories,
		menu:       menu,
		hashCost:   hashCost,
		dryRun:     dryRun,
		log:        log.With("component", "seeder"),
	}
}

// Run applies the fixture sections in order: users, categories, menu.
func (s *Seeder) Run(ctx context.Context, fixture *Fixture) (Result, error) {
	var result Result

	if err := fixture.Validate(); err != nil {
		return result, err
	}

	if err := s.seedUsers(ctx, fixture.Users, &result); err != nil {
		return result, err
	}
	if err := s.seedCategories(ctx, fixture.Categories, &result); err != nil {
		return result, err
	}
	if err := s.seedMenu(ctx, fixture.Menu, &result); err != nil {
		return result, err
	}

	s.log.InfoContext(ctx, "seed complete",
		slog.Int("users_created", result.UsersCreated),
		slog.Int("categories_created", result.CategoriesCreated),
		slog.Int("menu_created", result.MenuCreated),
	)
	return result, nil
}

func (s *Seeder) seedUsers(ctx context.Context, users []UserFixture, result *Result) error {
	for _, u := range users {
		email := strings.ToLower(strings.TrimSpace(u.Email))

		_, err := s.users.GetByEmail(ctx, email)
		if err == nil {
			s.log.DebugContext(ctx, "user exists", slog.String("email", email))
			result.UsersSkipped++
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("seed user %s: %w", email, err)
		}

		role := domain.StaffRole(u.StaffRole)
		if !role.IsValid() {
			return fmt.Errorf("seed user %s: unknown role %q", email, u.StaffRole)
		}

		if s.dryRun {
			result.UsersCreated++
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.hashCost)
		if err != nil {
			return fmt.Errorf("seed user %s: hash password: %w", email, err)
		}

		if _, err := s.users.Create(ctx, &domain.User{
			Email:        email,
			Username:     u.Username,
			Name:         u.Name,
			PasswordHash: string(hash),
			StaffRole:    role,
			Active:       true,
		}); err != nil {
			return fmt.Errorf("seed user %s: %w", email, err)
		}

		s.log.InfoContext(ctx, "user created",
			slog.String("email", email),
			slog.String("staff_role", role.String()),
		)
		result.UsersCreated++
	}
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context, names []string, result *Result) error {
	existing, err := s.categories.List(ctx)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[strings.ToLower(c.Name)] = true
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if seen[strings.ToLower(name)] {
			result.CategoriesSkipped++
			continue
		}
		if s.dryRun {
			result.CategoriesCreated++
			continue
		}

		if _, err := s.categories.Create(ctx, &domain.Category{
			Name: name,
			Slug: slugify(name),
		}); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}

		s.log.InfoContext(ctx, "category created", slog.String("name", name))
		result.CategoriesCreated++
	}
	return nil
}

func (s *Seeder) seedMenu(ctx context.Context, items []MenuItemFixture, result *Result) error {
	existing, err := s.menu.List(ctx, false)
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	seen := make(map[string]*uuid.UUID, len(existing))
	for _, item := range existing {
		id := item.ID
		seen[strings.ToLower(item.Label)] = &id
	}

	for _, item := range items {
		parentID, err := s.seedMenuItem(ctx, item, nil, seen, result)
		if err != nil {
			return err
		}
		for _, child := range item.Children {
			if _, err := s.seedMenuItem(ctx, child, parentID, seen, result); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedMenuItem(ctx context.Context, item MenuItemFixture, parentID *uuid.UUID, seen map[string]*uuid.UUID, result *Result) (*uuid.UUID, error) {
	if id, ok := seen[strings.ToLower(item.Label)]; ok {
		result.MenuSkipped++
		return id, nil
	}
	if s.dryRun {
		result.MenuCreated++
		return nil, nil
	}

	active := true
	if item.Active != nil {
		active = *item.Active
	}

	created, err := s.menu.Create(ctx, &domain.MenuItem{
		Label:    item.Label,
		URL:      item.URL,
		ParentID: parentID,
		Position: item.Position,
		Active:   active,
	})
	if err != nil {
		return nil, fmt.Errorf("seed menu item %q: %w", item.Label, err)
	}

	s.log.InfoContext(ctx, "menu item created", slog.String("label", item.Label))
	result.MenuCreated++
	seen[strings.ToLower(item.Label)] = &created.ID
	return &created.ID, nil
}

// slugify lowercases the name and collapses non-alphanumeric runs into
// single dashes.
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
