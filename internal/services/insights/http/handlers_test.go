package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"mailsift/internal/core/ruleset"
	"mailsift/internal/platform/config"
	phttp "mailsift/internal/platform/net/http"
	"mailsift/internal/services/insights/domain"
	inshttp "mailsift/internal/services/insights/http"
	"mailsift/internal/services/insights/service"
)

type fakeRecorder struct {
	saved    []domain.Report
	scans    []domain.ScanSummary
	lastName string
}

func (f *fakeRecorder) EnsureSchema(context.Context) error { return nil }

func (f *fakeRecorder) SaveScan(_ context.Context, name string, rep domain.Report) (string, error) {
	f.lastName = name
	f.saved = append(f.saved, rep)
	return "scan-123", nil
}

func (f *fakeRecorder) RecentScans(context.Context, int) ([]domain.ScanSummary, error) {
	return f.scans, nil
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Status     string          `json:"status"`
	Error      string          `json:"error,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

func newTestServer(t *testing.T, rec domain.RecorderPort) *httptest.Server {
	t.Helper()
	pack, err := ruleset.Load()
	if err != nil {
		t.Fatalf("ruleset.Load: %v", err)
	}
	svc := service.New(pack, service.Config{})

	srv := phttp.NewServer(config.New())
	srv.Router().Route("/api/v1", func(r phttp.Router) {
		inshttp.Register(r, svc, rec)
	})
	ts := httptest.NewServer(srv.Router().Mux())
	t.Cleanup(ts.Close)
	return ts
}

func postScan(t *testing.T, ts *httptest.Server, payload string) (*stdhttp.Response, envelope) {
	t.Helper()
	resp, err := stdhttp.Post(ts.URL+"/api/v1/insights/scan", "application/json",
		bytes.NewBufferString(payload))
	if err != nil {
		t.Fatalf("POST scan: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp, env
}

func TestScanHappyPath(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, env := postScan(t, ts, `{
		"name": "John",
		"messages": [
			{"ref": "m1", "subject": "standup", "body": "Can you review the logs? John is out Friday."}
		]
	}`)
	if resp.StatusCode != stdhttp.StatusOK || env.Status != "OK" {
		t.Fatalf("status = %d %q (%s)", resp.StatusCode, env.Status, env.Error)
	}

	var out domain.ScanResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if out.ScanID != "" {
		t.Fatalf("unexpected scan id %q", out.ScanID)
	}
	if out.Report.Messages != 1 || len(out.Report.Todos) != 1 || len(out.Report.Mentions) != 1 {
		t.Fatalf("report = %+v", out.Report)
	}
	if out.Report.Todos[0].Ref != "m1" {
		t.Fatalf("todo ref = %q", out.Report.Todos[0].Ref)
	}
}

func TestScanRejectsEmptyMessages(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, env := postScan(t, ts, `{"name": "John", "messages": []}`)
	if resp.StatusCode == stdhttp.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if env.Error == "" {
		t.Fatal("expected an error message")
	}
}

func TestScanPersistsWhenRequested(t *testing.T) {
	rec := &fakeRecorder{}
	ts := newTestServer(t, rec)

	resp, env := postScan(t, ts, `{
		"name": "John",
		"persist": true,
		"messages": [{"ref": "m1", "body": "Please complete the report."}]
	}`)
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("status = %d (%s)", resp.StatusCode, env.Error)
	}

	var out domain.ScanResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if out.ScanID != "scan-123" {
		t.Fatalf("scan id = %q", out.ScanID)
	}
	if len(rec.saved) != 1 || rec.lastName != "John" {
		t.Fatalf("recorder saw %d saves, name %q", len(rec.saved), rec.lastName)
	}
}

func TestScanPersistWithoutRecorderFails(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, env := postScan(t, ts, `{
		"persist": true,
		"messages": [{"ref": "m1", "body": "Please complete the report."}]
	}`)
	if resp.StatusCode != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if env.Error == "" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRecentScans(t *testing.T) {
	rec := &fakeRecorder{scans: []domain.ScanSummary{
		{ID: "id-1", Name: "John", Messages: 3, Todos: 2},
	}}
	ts := newTestServer(t, rec)

	resp, err := stdhttp.Get(ts.URL + "/api/v1/insights/scans/recent?limit=5")
	if err != nil {
		t.Fatalf("GET recent: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	var out []domain.ScanSummary
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(out) != 1 || out[0].ID != "id-1" {
		t.Fatalf("out = %+v", out)
	}
}

func TestRecentScansRejectsBadLimit(t *testing.T) {
	ts := newTestServer(t, &fakeRecorder{})

	resp, err := stdhttp.Get(ts.URL + "/api/v1/insights/scans/recent?limit=nope")
	if err != nil {
		t.Fatalf("GET recent: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
