package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func chatReply(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestClientComplete_Success(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply(`{"name":"Jane"}`)))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model", 5*time.Second)
	out, err := c.Complete(context.Background(), "parse this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"name":"Jane"}` {
		t.Errorf("expected reply content, got %q", out)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotBody.Temperature != 0 {
		t.Errorf("expected temperature 0, got %v", gotBody.Temperature)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" {
		t.Errorf("expected system+user messages, got %+v", gotBody.Messages)
	}
}

func TestClientComplete_MissingAPIKey(t *testing.T) {
	c := NewClient("http://localhost:0", "", "m", time.Second)
	_, err := c.Complete(context.Background(), "x")
	if err != ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestClientComplete_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m", time.Second)
	_, err := c.Complete(context.Background(), "x")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	f := classify(err)
	if f.Reason != ReasonStatus {
		t.Errorf("expected status failure, got %q", f.Reason)
	}
}

func TestClientComplete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(chatReply("{}")))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m", 20*time.Millisecond)
	_, err := c.Complete(context.Background(), "x")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	f := classify(err)
	if f.Reason != ReasonTimeout {
		t.Errorf("expected timeout failure, got %q (%v)", f.Reason, err)
	}
}

func TestClientComplete_APIErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"type":"invalid_request","message":"bad model"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m", time.Second)
	_, err := c.Complete(context.Background(), "x")
	if err == nil || !strings.Contains(err.Error(), "bad model") {
		t.Fatalf("expected api error surfaced, got %v", err)
	}
}

func TestClientComplete_RecordsStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply("{}")))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "m", time.Second)
	if _, err := c.Complete(context.Background(), "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap := c.StatsSnapshot(); snap.Count != 1 {
		t.Errorf("expected 1 recorded sample, got %d", snap.Count)
	}
}
