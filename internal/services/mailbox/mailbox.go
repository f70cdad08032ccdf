// Package mailbox reads locally exported messages into analyzer input.
// Two sources are supported: a JSON export file and a directory of
// plain-text message files. Broken items are skipped with a reason rather
// than failing the whole read
package mailbox

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mailsift/internal/core/textprep"
	"mailsift/internal/services/insights/domain"
)

// Skip records one message that could not be read
type Skip struct {
	Ref    string
	Reason string
}

type exportMessage struct {
	ID         string `json:"id"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	ReceivedAt string `json:"received_at"`
}

// ReadJSON loads a JSON export file of the form
// [{id, subject, body, received_at}] and returns cleaned analyzer input.
// Items missing an id or failing to decode are skipped, not fatal
func ReadJSON(path string) ([]domain.MessageInput, []Skip, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read export %s: %w", path, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil, fmt.Errorf("parse export %s: %w", path, err)
	}

	cleaner := textprep.New()
	var out []domain.MessageInput
	var skips []Skip
	for i, item := range items {
		var m exportMessage
		if err := json.Unmarshal(item, &m); err != nil {
			skips = append(skips, Skip{Ref: fmt.Sprintf("item %d", i), Reason: err.Error()})
			continue
		}
		if strings.TrimSpace(m.ID) == "" {
			skips = append(skips, Skip{Ref: fmt.Sprintf("item %d", i), Reason: "missing id"})
			continue
		}
		out = append(out, domain.MessageInput{
			Ref:     m.ID,
			Subject: m.Subject,
			Body:    cleaner.Clean(StripHTML(m.Body)),
		})
	}
	return out, skips, nil
}

// ReadDir loads every regular file in dir as one message. The file name
// (without extension) becomes both ref and subject. Unreadable files are
// skipped, not fatal
func ReadDir(dir string) ([]domain.MessageInput, []Skip, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	cleaner := textprep.New()
	var out []domain.MessageInput
	var skips []Skip
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			skips = append(skips, Skip{Ref: name, Reason: err.Error()})
			continue
		}
		ref := strings.TrimSuffix(name, filepath.Ext(name))
		out = append(out, domain.MessageInput{
			Ref:     ref,
			Subject: ref,
			Body:    cleaner.Clean(StripHTML(string(raw))),
		})
	}
	return out, skips, nil
}
