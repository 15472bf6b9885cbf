// ABOUTME: Canonical technology name normalization via a fixed alias table
// ABOUTME: Joins the same technology across sources under one lower-cased name

package normalize

import "strings"

// aliases maps common shorthand to canonical technology names. Unknown
// names pass through unchanged after trim and lowercase.
var aliases = map[string]string{
	"js":     "javascript",
	"nodejs": "node.js",
	"node":   "node.js",
	"py":     "python",
	"rb":     "ruby",
	"ts":     "typescript",
	"golang": "go",
	"k8s":    "kubernetes",
	"pg":     "postgresql",
	"postgres": "postgresql",
}

// Name canonicalizes a single raw technology name.
func Name(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return key
}

// Names canonicalizes a list of raw technology names, preserving order.
func Names(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		out = append(out, Name(r))
	}
	return out
}
