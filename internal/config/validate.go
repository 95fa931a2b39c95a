package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Editorial.validate(); err != nil {
		return fmt.Errorf("editorial: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (e *EditorialConfig) validate() error {
	if e.DefaultLanguage == "" {
		return fmt.Errorf("default_language must not be empty")
	}
	if e.MaxBulletinSize <= 0 {
		return fmt.Errorf("max_bulletin_size must be > 0 (got %d)", e.MaxBulletinSize)
	}
	if e.ListPageSize <= 0 {
		return fmt.Errorf("list_page_size must be > 0 (got %d)", e.ListPageSize)
	}
	if e.MaxListPageSize < e.ListPageSize {
		return fmt.Errorf("max_list_page_size (%d) must be >= list_page_size (%d)",
			e.MaxListPageSize, e.ListPageSize)
	}
	if e.AuditPageSize <= 0 {
		return fmt.Errorf("audit_page_size must be > 0 (got %d)", e.AuditPageSize)
	}
	return nil
}
