package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Wiki.validate(); err != nil {
		return fmt.Errorf("wiki: %w", err)
	}

	return nil
}

func (w *WikiConfig) validate() error {
	if w.LockTTL <= 0 {
		return fmt.Errorf("lock_ttl must be > 0 (got %v)", w.LockTTL)
	}
	if w.LockRefreshWindow <= 0 {
		return fmt.Errorf("lock_refresh_window must be > 0 (got %v)", w.LockRefreshWindow)
	}
	if w.LockRefreshWindow >= w.LockTTL {
		return fmt.Errorf("lock_refresh_window (%v) must be shorter than lock_ttl (%v)",
			w.LockRefreshWindow, w.LockTTL)
	}
	if w.AttachmentDir == "" {
		return fmt.Errorf("attachment_dir must not be empty")
	}
	return nil
}
