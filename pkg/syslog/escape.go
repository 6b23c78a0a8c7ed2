package syslog

import "strings"

// unescaper resolves the escape sequences RFC 5424 section 6 defines for
// PARAM-VALUE and MSG content. Resolution is a single left-to-right pass, so
// a backslash consumed by one sequence cannot start another.
var unescaper = strings.NewReplacer(
	`\\`, `\`,
	`\"`, `"`,
	`\]`, `]`,
)

// Unescape resolves RFC 5424 escape sequences in s.
func Unescape(s string) string {
	return unescaper.Replace(s)
}
