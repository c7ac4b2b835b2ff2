// Package text provides the line-joining helper for writing
// multi-line string values as a list of lines.
package text

import "strings"

// Join joins lines with a single newline between each adjacent pair.
//
// Join() returns "". Join("a") returns "a". Join is pure: it neither
// inspects nor normalizes its arguments, so embedded newlines pass
// through untouched, and repeated calls with the same lines return
// the same value.
func Join(lines ...string) string {
	return strings.Join(lines, "\n")
}
