package insight

import (
	"regexp"
	"strings"

	"mailsift/internal/core/ruleset"
	"mailsift/internal/core/sentence"
)

// Classifier applies the compiled rule pack to sentence sequences.
// Each method is independent and side-effect free; a Classifier is safe
// for concurrent use
type Classifier struct {
	pack *ruleset.Pack
}

// New builds a Classifier over a compiled rule pack
func New(pack *ruleset.Pack) *Classifier {
	return &Classifier{pack: pack}
}

// Todos returns, in order, every sentence containing a to-do trigger phrase
func (c *Classifier) Todos(sentences []string) []string {
	var out []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if c.pack.Todo.MatchString(s) {
			out = append(out, s)
		}
	}
	return out
}

// TodosText segments raw body text and classifies the result
func (c *Classifier) TodosText(body string) []string {
	return c.Todos(sentence.Split(body))
}

// Deadlines returns, in order, every sentence mentioning a deadline.
// The keyword group is tested first; only when it misses is the date-shape
// group consulted, so a sentence is recorded at most once
func (c *Classifier) Deadlines(sentences []string) []string {
	var out []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if c.pack.DeadlineKeywords.MatchString(s) {
			out = append(out, s)
			continue
		}
		if c.pack.DeadlineDates.MatchString(s) {
			out = append(out, s)
		}
	}
	return out
}

// DeadlinesText segments raw body text and classifies the result
func (c *Classifier) DeadlinesText(body string) []string {
	return c.Deadlines(sentence.Split(body))
}

// Mentions returns, in order, every sentence containing name as a bounded,
// case-insensitive token. A name that is blank after trimming yields no
// matches
func (c *Classifier) Mentions(sentences []string, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	if err != nil {
		return nil
	}
	var out []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if re.MatchString(s) {
			out = append(out, s)
		}
	}
	return out
}

// MentionsText segments raw body text and classifies the result
func (c *Classifier) MentionsText(body, name string) []string {
	return c.Mentions(sentence.Split(body), name)
}
