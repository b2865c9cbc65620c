package definition

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	displayPolicyOnce sync.Once
	displayPolicy     *bluemonday.Policy
)

// sanitizeDisplay strips markup from display metadata. Titles, labels,
// and placeholders come from arbitrary documents and end up in terminal
// or host UI output unescaped.
func sanitizeDisplay(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(displaySanitizer().Sanitize(trimmed))
}

func displaySanitizer() *bluemonday.Policy {
	displayPolicyOnce.Do(func() {
		displayPolicy = bluemonday.StrictPolicy()
	})
	return displayPolicy
}
