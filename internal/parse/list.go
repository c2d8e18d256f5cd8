// Package parse holds small input parsers shared across services.
package parse

import "strings"

// List splits a comma-separated string into its elements: each element is
// trimmed of surrounding whitespace, empty elements are dropped, order is
// preserved, and duplicates are kept.
func List(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
