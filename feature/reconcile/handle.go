package reconcile

import (
	"regexp"
	"strings"
)

var (
	handleInvalid  = regexp.MustCompile(`[^a-z0-9_\s-]+`)
	handleCollapse = regexp.MustCompile(`[-\s]+`)
)

// Handle derives the URL slug for a product from its title and SKU.
// Appending the SKU keeps handles unique even when titles repeat.
// The result is lower-case, trimmed, stripped of anything outside
// [a-z0-9_\s-], collapsed to single hyphens and capped at 200
// characters.
func Handle(title, sku string) string {
	h := strings.ToLower(strings.TrimSpace(title + "-" + sku))
	h = handleInvalid.ReplaceAllString(h, "")
	h = handleCollapse.ReplaceAllString(h, "-")
	if len(h) > 200 {
		h = h[:200]
	}
	return h
}
