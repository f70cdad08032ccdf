// Package insight classifies email sentences into actionable findings:
// to-do items, deadline mentions, and name mentions
package insight

import "mailsift/internal/core/sentence"

// DefaultMaxBodyRunes caps how much of a message body is analyzed.
// Bodies longer than this are truncated before segmentation
const DefaultMaxBodyRunes = 100_000

// Extract applies the size guard and segments the surviving text in one
// step: the guarded prefix split into ordered sentences, plus whether the
// body was truncated
func Extract(body string, max int) ([]string, bool) {
	body, truncated := Guard(body, max)
	return sentence.Split(body), truncated
}

// Guard enforces the input size cap on a message body.
// It returns the body, truncated to max runes when necessary, and whether
// truncation happened. A non-positive max falls back to DefaultMaxBodyRunes
func Guard(body string, max int) (string, bool) {
	if max <= 0 {
		max = DefaultMaxBodyRunes
	}
	if len(body) <= max {
		// fewer bytes than max means fewer runes than max
		return body, false
	}
	rs := []rune(body)
	if len(rs) <= max {
		return body, false
	}
	return string(rs[:max]), true
}
