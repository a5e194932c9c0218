package render

import (
	"regexp"
	"testing"
)

// extractAttrValue returns the double-quoted value of attr in markup.
func extractAttrValue(t *testing.T, markup, attr string) string {
	t.Helper()
	re := regexp.MustCompile(`\s` + regexp.QuoteMeta(attr) + `="([^"]*)"`)
	m := re.FindStringSubmatch(markup)
	if m == nil {
		t.Fatalf("no %s attribute in %q", attr, markup)
	}
	return m[1]
}
