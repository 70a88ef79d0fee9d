package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Classifier.validate(); err != nil {
		return fmt.Errorf("classifier: %w", err)
	}

	if err := c.Notifications.validate(); err != nil {
		return fmt.Errorf("notifications: %w", err)
	}

	return nil
}

func (c *ClassifierConfig) validate() error {
	if c.DelayedCutoffHour < 0 || c.DelayedCutoffHour > 23 {
		return fmt.Errorf("delayed_cutoff_hour must be in 0..23 (got %d)", c.DelayedCutoffHour)
	}
	if c.TickInterval < time.Second {
		return fmt.Errorf("tick_interval must be at least 1s (got %v)", c.TickInterval)
	}

	loc, err := time.LoadLocation(strings.TrimSpace(c.Timezone))
	if err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	c.Location = loc

	return nil
}

func (n *NotificationsConfig) validate() error {
	epoch, err := time.Parse(time.RFC3339, strings.TrimSpace(n.EpochRaw))
	if err != nil {
		return fmt.Errorf("epoch %q: %w", n.EpochRaw, err)
	}
	n.Epoch = epoch

	if n.OverdueAfter <= 0 {
		return fmt.Errorf("overdue_after must be > 0 (got %v)", n.OverdueAfter)
	}

	return nil
}
