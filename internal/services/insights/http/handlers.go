// Package http provides the http transport for the insights service
package http

import (
	stdhttp "net/http"
	"strconv"

	perr "mailsift/internal/platform/errors"
	phttp "mailsift/internal/platform/net/http"
	"mailsift/internal/services/insights/domain"
)

// Register mounts insights endpoints on the given router.
// rec may be nil when no database is configured; persist requests then fail
func Register(r phttp.Router, svc domain.AnalyzerPort, rec domain.RecorderPort) {
	if svc == nil {
		panic("insights http requires a non nil analyzer")
	}
	h := &handlers{svc: svc, rec: rec}
	phttp.PostJSON[domain.ScanRequest](r, "/insights/scan", h.scan)
	phttp.GetJSON(r, "/insights/scans/recent", h.recent)
}

type handlers struct {
	svc domain.AnalyzerPort
	rec domain.RecorderPort
}

// @Summary Run the classifiers over a batch of messages
// @Tags Insights
// @Accept json
// @Produce json
// @Param payload body domain.ScanRequest true "Messages to scan"
// @Success 200 {object} domain.ScanResponse "ok"
// @Router /insights/scan [post]
func (h *handlers) scan(r *stdhttp.Request, in domain.ScanRequest) (any, error) {
	msgs := make([]domain.MessageInput, 0, len(in.Messages))
	for _, m := range in.Messages {
		msgs = append(msgs, domain.MessageInput{Ref: m.Ref, Subject: m.Subject, Body: m.Body})
	}

	rep, err := h.svc.Analyze(r.Context(), domain.AnalyzeInput{
		Name:         in.Name,
		MaxBodyRunes: in.MaxBodyLength,
		Workers:      in.Workers,
		Messages:     msgs,
	})
	if err != nil {
		return nil, err
	}

	out := domain.ScanResponse{Report: rep}
	if in.Persist {
		if h.rec == nil {
			return nil, perr.InvalidArgf("persistence is not configured")
		}
		id, err := h.rec.SaveScan(r.Context(), in.Name, rep)
		if err != nil {
			return nil, err
		}
		out.ScanID = id
	}
	return out, nil
}

// @Summary List recently persisted scans
// @Tags Insights
// @Produce json
// @Param limit query int false "max rows, default 50"
// @Success 200 {array} domain.ScanSummary "ok"
// @Router /insights/scans/recent [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	if h.rec == nil {
		return nil, perr.InvalidArgf("persistence is not configured")
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.InvalidArgf("limit must be an integer")
		}
		limit = n
	}
	return h.rec.RecentScans(r.Context(), limit)
}
