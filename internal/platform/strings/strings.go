// Package strings provides small string helpers shared across services
package strings

import (
	std "strings"
	"unicode/utf8"
)

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// Clip returns at most n runes of s. Used when quoting message subjects in
// logs and reports so arbitrarily long sender-controlled text stays short
func Clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// ClipEllipsis clips s to n runes and appends "..." when anything was cut
func ClipEllipsis(s string, n int) string {
	c := Clip(s, n)
	if c == s {
		return c
	}
	return c + "..."
}

// Blank reports whether s is empty or whitespace only
func Blank(s string) bool { return std.TrimSpace(s) == "" }
