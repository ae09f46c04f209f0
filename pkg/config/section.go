// Package config holds the configuration blocks shared by the inventory binaries.
package config

import (
	"fmt"
	"net/url"
	"strings"
)

// section renders one configuration block for the startup log.
type section struct {
	b strings.Builder
}

func newSection(title string) *section {
	s := &section{}
	fmt.Fprintf(&s.b, "\n--- %s ---\n", title)
	return s
}

func (s *section) field(key string, value any) *section {
	fmt.Fprintf(&s.b, "  %s: %v\n", key, value)
	return s
}

func (s *section) String() string {
	return s.b.String()
}

// redactURL hides the password of a URL with credentials. Unparseable input is returned as is.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	return u.Redacted()
}
