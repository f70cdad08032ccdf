// Package sentence splits prose into sentences while tolerating the
// abbreviation patterns common in email text
package sentence

import (
	"strings"
	"unicode"
)

// Split breaks text at whitespace that follows a sentence terminator
// (period, question mark, exclamation mark), except when the terminator
// belongs to an abbreviation:
//
//   - a title like "Dr." or "Ms.": uppercase letter, lowercase letter, period
//   - a dotted acronym like "U.S.": word char, period, word char, then the
//     terminator position
//
// Pieces are trimmed and empty pieces are dropped. Text without any
// terminator comes back as a single sentence
func Split(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	rs := []rune(trimmed)
	var out []string
	start := 0
	for i := 1; i < len(rs); i++ {
		if !unicode.IsSpace(rs[i]) {
			continue
		}
		if !isTerminator(rs[i-1]) {
			continue
		}
		if titleAbbrevBefore(rs, i) || dottedAcronymBefore(rs, i) {
			continue
		}
		if s := strings.TrimSpace(string(rs[start:i])); s != "" {
			out = append(out, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(rs[start:])); s != "" {
		out = append(out, s)
	}
	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// titleAbbrevBefore reports whether the three runes before position i look
// like "Dr." / "Mr." / "Ms.": an uppercase letter, a lowercase letter, a period
func titleAbbrevBefore(rs []rune, i int) bool {
	if i < 3 {
		return false
	}
	return unicode.IsUpper(rs[i-3]) && unicode.IsLower(rs[i-2]) && rs[i-1] == '.'
}

// dottedAcronymBefore reports whether the four runes before position i match
// the "U.S." shape: word char, period, word char, then any rune at i-1
func dottedAcronymBefore(rs []rune, i int) bool {
	if i < 4 {
		return false
	}
	return isWord(rs[i-4]) && rs[i-3] == '.' && isWord(rs[i-2])
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
