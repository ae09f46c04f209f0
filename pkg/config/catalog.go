package config

import (
	"fmt"
	"time"
)

// CatalogConfig describes where the seed catalog is loaded from and how its numbers are written.
type CatalogConfig struct {
	Source           string        `koanf:"source"`
	Timeout          time.Duration `koanf:"timeout"`
	DecimalSeparator string        `koanf:"decimalseparator"`
	GroupSeparator   string        `koanf:"groupseparator"`
}

const (
	defaultCatalogTimeout   = 10 * time.Second
	defaultDecimalSeparator = "."
	defaultGroupSeparator   = ","
)

func (c *CatalogConfig) String() string {
	return newSection("Catalog").
		field("source", redactURL(c.Source)).
		field("timeout", c.Timeout).
		field("decimalseparator", fmt.Sprintf("%q", c.DecimalSeparator)).
		field("groupseparator", fmt.Sprintf("%q", c.GroupSeparator)).
		String()
}

// Validate fills in defaults. An empty source means the inventory starts empty.
func (c *CatalogConfig) Validate() error {
	if c.Timeout <= 0 {
		c.Timeout = defaultCatalogTimeout
	}
	if c.DecimalSeparator == "" {
		c.DecimalSeparator = defaultDecimalSeparator
	}
	if c.GroupSeparator == "" {
		c.GroupSeparator = defaultGroupSeparator
	}
	if len([]rune(c.DecimalSeparator)) != 1 {
		return fmt.Errorf("catalog decimal separator must be a single character: %q", c.DecimalSeparator)
	}
	if c.DecimalSeparator == c.GroupSeparator {
		return fmt.Errorf("catalog decimal and group separators must differ: %q", c.DecimalSeparator)
	}
	return nil
}
