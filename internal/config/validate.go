package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.Locker.validate(); err != nil {
		return fmt.Errorf("locker: %w", err)
	}

	if c.Rebrickable.PageSize < 1 || c.Rebrickable.PageSize > 100 {
		return fmt.Errorf("rebrickable.page_size must be between 1 and 100 (got %d)", c.Rebrickable.PageSize)
	}

	return nil
}

func (c *LockerConfig) validate() error {
	for _, name := range c.SubstrateList() {
		switch name {
		case "file", "keystore", "memory":
		default:
			return fmt.Errorf("unknown substrate %q (valid: file, keystore, memory)", name)
		}
	}
	if len(c.SubstrateList()) == 0 {
		return fmt.Errorf("substrates must name at least one backend")
	}
	return nil
}

// SubstrateList parses the ranked substrate string into backend names,
// preserving order and skipping empty entries.
func (c *LockerConfig) SubstrateList() []string {
	parts := strings.Split(c.Substrates, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}
