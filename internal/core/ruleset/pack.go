// Package ruleset loads and compiles the classifier rules from the embedded
// rules.json. It prepares the to-do trigger, deadline keyword, and deadline
// date regexes used by the insight classifier
package ruleset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

//go:embed rules.json
var embedded []byte

type rawPack struct {
	Version          int      `json:"version"`
	TodoTriggers     []string `json:"todo_triggers"`
	DeadlineKeywords []string `json:"deadline_keywords"`
	DeadlineDates    []string `json:"deadline_date_patterns"`
}

// Pack represents the compiled rule set for the insight classifier
type Pack struct {
	Version int

	// Todo matches any to-do trigger phrase
	Todo *regexp.Regexp

	// DeadlineKeywords matches the keyword/phrase rule group
	DeadlineKeywords *regexp.Regexp

	// DeadlineDates matches the literal date shape rule group
	DeadlineDates *regexp.Regexp

	// Raw rule lists, kept for introspection and tests
	TodoTriggers     []string
	KeywordRules     []string
	DatePatternRules []string
}

// Load returns the compiled pack from the embedded rules.json
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("ruleset: parse rules.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("ruleset: unsupported rules.json version %d (want 1)", rp.Version)
	}
	if len(rp.TodoTriggers) == 0 || len(rp.DeadlineKeywords) == 0 || len(rp.DeadlineDates) == 0 {
		return nil, fmt.Errorf("ruleset: rules.json is missing rule groups")
	}

	p := &Pack{
		Version:          rp.Version,
		TodoTriggers:     rp.TodoTriggers,
		KeywordRules:     rp.DeadlineKeywords,
		DatePatternRules: rp.DeadlineDates,
	}

	// To-do triggers are literal phrases; quote them before compilation
	alts := make([]string, 0, len(rp.TodoTriggers))
	for _, t := range rp.TodoTriggers {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		alts = append(alts, bounded(regexp.QuoteMeta(t)))
	}
	re, err := regexp.Compile("(?i)(?:" + strings.Join(alts, "|") + ")")
	if err != nil {
		return nil, fmt.Errorf("ruleset: compile todo triggers: %w", err)
	}
	p.Todo = re

	// Deadline keywords may carry a small [0-9] shorthand; expand it and keep
	// the rest of the entry as a regex fragment
	alts = alts[:0]
	for _, k := range rp.DeadlineKeywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		k = strings.ReplaceAll(k, "[0-9]", `\d`)
		alts = append(alts, bounded(k))
	}
	re, err = regexp.Compile("(?i)(?:" + strings.Join(alts, "|") + ")")
	if err != nil {
		return nil, fmt.Errorf("ruleset: compile deadline keywords: %w", err)
	}
	p.DeadlineKeywords = re

	// Date shapes are full regex fragments with their own anchoring
	re, err = regexp.Compile("(?i)(?:" + strings.Join(rp.DeadlineDates, "|") + ")")
	if err != nil {
		return nil, fmt.Errorf("ruleset: compile deadline date patterns: %w", err)
	}
	p.DeadlineDates = re

	return p, nil
}

// bounded wraps a rule fragment in word boundaries. The left edge always gets
// one; the right edge only when the fragment ends in a word character, so that
// triggers ending in punctuation ("task:") still match before whitespace
func bounded(frag string) string {
	out := `\b` + frag
	rs := []rune(frag)
	last := rs[len(rs)-1]
	if last == '_' || unicode.IsLetter(last) || unicode.IsDigit(last) || last == '?' || last == '}' || last == ')' {
		// quantifiers and groups end patterns whose final matched rune is a
		// word character, so they take the boundary too
		out += `\b`
	}
	return out
}
