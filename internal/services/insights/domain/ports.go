package domain

import "context"

// AnalyzerPort is the service contract for running a scan
type AnalyzerPort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (Report, error)
}

// RecorderPort persists finished scans and lists them back
type RecorderPort interface {
	EnsureSchema(ctx context.Context) error
	SaveScan(ctx context.Context, name string, rep Report) (string, error)
	RecentScans(ctx context.Context, limit int) ([]ScanSummary, error)
}

// ScanSummary is one persisted scan row
type ScanSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Messages  int    `json:"messages"`
	Skipped   int    `json:"skipped"`
	Truncated int    `json:"truncated"`
	Todos     int    `json:"todos"`
	Deadlines int    `json:"deadlines"`
	Mentions  int    `json:"mentions"`
	CreatedAt string `json:"created_at"`
}
