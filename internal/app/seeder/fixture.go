package seeder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is the YAML document the seeder loads. It declares the staff
// accounts, categories and menu entries a fresh installation starts with.
type Fixture struct {
	Users      []UserFixture     `yaml:"users"`
	Categories []string          `yaml:"categories"`
	Menu       []MenuItemFixture `yaml:"menu"`
}

// UserFixture declares one staff account.
type UserFixture struct {
	Email     string `yaml:"email"`
	Username  string `yaml:"username"`
	Name      string `yaml:"name"`
	Password  string `yaml:"password"`
	StaffRole string `yaml:"staff_role"`
}

// MenuItemFixture declares one menu entry. Children nest one level deep.
type MenuItemFixture struct {
	Label    string            `yaml:"label"`
	URL      string            `yaml:"url"`
	Position int               `yaml:"position"`
	Active   *bool             `yaml:"active"`
	Children []MenuItemFixture `yaml:"children"`
}

// LoadFixture parses the seed fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed fixture: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("seed fixture: parse %s: %w", path, err)
	}

	return &fixture, nil
}

// Validate checks the fixture for entries the seeder cannot apply.
func (f *Fixture) Validate() error {
	for i, u := range f.Users {
		if u.Email == "" || u.Username == "" || u.Password == "" {
			return fmt.Errorf("seed fixture: users[%d]: email, username and password are required", i)
		}
		if u.StaffRole == "" {
			return fmt.Errorf("seed fixture: users[%d]: staff_role is required", i)
		}
	}
	for i, c := range f.Categories {
		if c == "" {
			return fmt.Errorf("seed fixture: categories[%d]: name is required", i)
		}
	}
	var checkMenu func(items []MenuItemFixture, depth int, path string) error
	checkMenu = func(items []MenuItemFixture, depth int, path string) error {
		for i, item := range items {
			where := fmt.Sprintf("%s[%d]", path, i)
			if item.Label == "" || item.URL == "" {
				return fmt.Errorf("seed fixture: %s: label and url are required", where)
			}
			if depth >= 2 && len(item.Children) > 0 {
				return fmt.Errorf("seed fixture: %s: menu nests at most one level", where)
			}
			if err := checkMenu(item.Children, depth+1, where+".children"); err != nil {
				return err
			}
		}
		return nil
	}
	return checkMenu(f.Menu, 1, "menu")
}
