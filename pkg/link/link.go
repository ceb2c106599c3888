// Package link normalizes in-page navigation targets.
package link

import "strings"

// NormalizeLink turns a fragment reference into an element id: it strips
// one leading '#' and lowercases the rest ("#About" -> "about",
// "##test" -> "#test").
func NormalizeLink(target string) string {
	return strings.ToLower(strings.TrimPrefix(target, "#"))
}
