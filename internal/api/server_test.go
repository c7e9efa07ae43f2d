package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/recruitkit/cvparse/internal/config"
	"github.com/recruitkit/cvparse/internal/llm"
	"github.com/recruitkit/cvparse/internal/merge"
	"github.com/recruitkit/cvparse/internal/parse"
	"github.com/recruitkit/cvparse/internal/pipeline"
	"github.com/recruitkit/cvparse/internal/store"
	"github.com/recruitkit/cvparse/internal/vocab"
)

const testAPIKey = "test-api-key"

// newTestServer builds a server wired for heuristics-only parsing: the LLM
// client has no credential, so extraction degrades without touching the
// network. Workers are not started; queued jobs stay queued.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	cfg := config.Config{
		APIKey:         testAPIKey,
		MaxUploadBytes: 10 << 20,
		MaxQueueSize:   4,
		WorkerCount:    1,
		JobTTL:         time.Hour,
	}

	llmClient := llm.NewClient("http://localhost:0", "", "test-model", time.Second)
	vocabCtx := vocab.NewContext(vocab.NewStore([]string{"python", "go", "docker"}))
	parser := parse.NewParser(vocabCtx, llm.NewExtractor(llmClient, log), merge.PreferModel, log)
	records := store.NewClient("http://localhost:0", "")
	orch := pipeline.NewOrchestrator(cfg, parser, records, log)

	return NewServer(orch, parser, records, llmClient, log, cfg)
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	return req
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.WriteString(fw, content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/stats/llm", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no header: expected 401, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/stats/llm", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	if rec := doRequest(s, req); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: expected 401, got %d", rec.Code)
	}
}

func TestParseResumeUpload(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartBody(t, "resume.txt", "Jane Doe\njane@doe.io\nSkills: Python, Docker")
	req := authed(httptest.NewRequest(http.MethodPost, "/api/parse/resume", body))
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(s, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Resume struct {
			Name   string   `json:"name"`
			Email  string   `json:"email"`
			Skills []string `json:"skills"`
		} `json:"resume"`
		Model parse.ModelOutcome `json:"model"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Resume.Name != "Jane Doe" {
		t.Errorf("expected Jane Doe, got %q", resp.Resume.Name)
	}
	if resp.Resume.Email != "jane@doe.io" {
		t.Errorf("expected email, got %q", resp.Resume.Email)
	}
	if resp.Model.Used {
		t.Error("expected model unused without credential")
	}
	if resp.Model.FailReason != string(llm.ReasonAuth) {
		t.Errorf("expected auth fail reason, got %q", resp.Model.FailReason)
	}
}

func TestParseResumeUpload_UnsupportedType(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartBody(t, "resume.exe", "binary")
	req := authed(httptest.NewRequest(http.MethodPost, "/api/parse/resume", body))
	req.Header.Set("Content-Type", contentType)

	if rec := doRequest(s, req); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestParseResumeUpload_EmptyText(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartBody(t, "resume.txt", "   \n  \n")
	req := authed(httptest.NewRequest(http.MethodPost, "/api/parse/resume", body))
	req.Header.Set("Content-Type", contentType)

	if rec := doRequest(s, req); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}

func TestParseJob(t *testing.T) {
	s := newTestServer(t)

	payload := `{"text": "Senior Backend Engineer\n\n5+ years of experience with Python."}`
	req := authed(httptest.NewRequest(http.MethodPost, "/api/parse/job", strings.NewReader(payload)))
	req.Header.Set("Content-Type", "application/json")

	rec := doRequest(s, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Job struct {
			Title      string   `json:"title"`
			SkillsHard []string `json:"skills_hard"`
			Experience struct {
				MinYears *int `json:"min_years"`
			} `json:"experience"`
		} `json:"job"`
		Model parse.ModelOutcome `json:"model"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Job.Title != "Senior Backend Engineer" {
		t.Errorf("expected title, got %q", resp.Job.Title)
	}
	if resp.Job.Experience.MinYears == nil || *resp.Job.Experience.MinYears != 5 {
		t.Errorf("expected min years 5, got %v", resp.Job.Experience.MinYears)
	}
	if resp.Model.Used {
		t.Error("expected model unused without credential")
	}
}

func TestParseJob_MissingText(t *testing.T) {
	s := newTestServer(t)

	req := authed(httptest.NewRequest(http.MethodPost, "/api/parse/job", strings.NewReader(`{"text":""}`)))
	req.Header.Set("Content-Type", "application/json")
	if rec := doRequest(s, req); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestIngestResume(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartBody(t, "resume.txt", "Jane Doe\njane@doe.io")
	req := authed(httptest.NewRequest(http.MethodPost, "/api/ingest/resume", body))
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(s, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		JobID   string `json:"job_id"`
		Status  string `json:"status"`
		PollURL string `json:"poll_url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.JobID) != 26 {
		t.Errorf("expected ULID job id, got %q", resp.JobID)
	}
	if resp.Status != string(pipeline.StatusQueued) {
		t.Errorf("expected queued, got %q", resp.Status)
	}
	if resp.PollURL != "/api/ingest/"+resp.JobID+"/status" {
		t.Errorf("unexpected poll url %q", resp.PollURL)
	}

	// Workers are not running, so the status endpoint reports the job
	// exactly as submitted.
	statusRec := doRequest(s, authed(httptest.NewRequest(http.MethodGet, resp.PollURL, nil)))
	if statusRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", statusRec.Code)
	}
	var snap struct {
		ID     string `json:"job_id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(statusRec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.ID != resp.JobID || snap.Status != string(pipeline.StatusQueued) {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestIngestStatus_NotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, authed(httptest.NewRequest(http.MethodGet, "/api/ingest/nope/status", nil)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestLLMStats(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, authed(httptest.NewRequest(http.MethodGet, "/api/stats/llm", nil)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Model string `json:"model"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Model != "test-model" {
		t.Errorf("expected test-model, got %q", resp.Model)
	}
}

func TestLLMStats_NoClient(t *testing.T) {
	s := newTestServer(t)
	s.llmClient = nil

	rec := doRequest(s, authed(httptest.NewRequest(http.MethodGet, "/api/stats/llm", nil)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"../../etc/passwd", "passwd"},
		{"dir/resume.pdf", "resume.pdf"},
		{"", "unnamed"},
		{".", "unnamed"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
