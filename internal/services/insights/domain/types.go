// Package domain defines the core types and contracts for the insights service
package domain

// MessageInput is one message handed to the analyzer.
// Ref is an opaque caller-supplied identifier carried through to every match
type MessageInput struct {
	Ref     string
	Subject string
	Body    string
}

// Match ties one classified sentence back to the message it came from
type Match struct {
	Ref      string `json:"ref"`
	Subject  string `json:"subject"`
	Sentence string `json:"sentence"`
}

// Report aggregates classifier output across a batch of messages.
// Matches appear in input order, messages first, sentence order within
type Report struct {
	Todos     []Match `json:"todos"`
	Deadlines []Match `json:"deadlines"`
	Mentions  []Match `json:"mentions"`

	Messages  int `json:"messages"`
	Skipped   int `json:"skipped"`
	Truncated int `json:"truncated"`
}

// AnalyzeInput is a batch analysis request.
// Zero MaxBodyRunes and Workers fall back to service configuration
type AnalyzeInput struct {
	Name         string
	MaxBodyRunes int
	Workers      int
	Messages     []MessageInput
}
