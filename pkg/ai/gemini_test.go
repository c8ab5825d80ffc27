package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stationprep/consult-assistant/pkg/config"
)

func newGeminiTestClient(baseURL string) *GeminiClient {
	return NewGeminiClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: baseURL})
}

func TestGenerateJSON_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "test-model:generateContent") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}

		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if _, ok := req["systemInstruction"]; !ok {
			t.Fatal("systemInstruction missing")
		}
		genCfg, ok := req["generationConfig"].(map[string]interface{})
		if !ok || genCfg["responseMimeType"] != "application/json" {
			t.Fatalf("schema constraint not sent: %v", req["generationConfig"])
		}

		io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"{\"answer\":42}"}]}}]}`)
	}))
	defer ts.Close()

	client := newGeminiTestClient(ts.URL)
	raw, parsed, err := client.GenerateJSON(context.Background(), "be terse", []string{"question"}, "test-model", map[string]interface{}{"type": "object"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if raw != `{"answer":42}` {
		t.Fatalf("raw text %q", raw)
	}
	if parsed["answer"] != float64(42) {
		t.Fatalf("parsed %v", parsed)
	}
}

func TestGenerateJSON_MalformedModelOutputIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Sure! Here is the JSON you asked for:"}]}}]}`)
	}))
	defer ts.Close()

	client := newGeminiTestClient(ts.URL)
	raw, parsed, err := client.GenerateJSON(context.Background(), "", []string{"question"}, "test-model", nil)
	if err != nil {
		t.Fatalf("malformed output must not error: %v", err)
	}
	if raw == "" {
		t.Fatal("raw text lost")
	}
	if len(parsed) != 0 {
		t.Fatalf("parsed should be empty, got %v", parsed)
	}
}

func TestGenerateJSON_UpstreamStatusPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := newGeminiTestClient(ts.URL)
	_, _, err := client.GenerateJSON(context.Background(), "", []string{"q"}, "test-model", nil)
	if err == nil {
		t.Fatal("expected error on 429")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("status missing from error: %v", err)
	}
}

func TestStreamGenerate_DeliversChunksInOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":streamGenerateContent") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("alt") != "sse" {
			t.Fatal("alt=sse missing")
		}

		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"Hello \"}]}}]}\n\n")
		io.WriteString(w, ": keepalive comment\n\n")
		io.WriteString(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"world\"}]}}]}\n\n")
		io.WriteString(w, "data: [DONE]\n\n")
	}))
	defer ts.Close()

	client := newGeminiTestClient(ts.URL)

	var chunks []string
	err := client.StreamGenerate(context.Background(), "persona", []string{"user: hi"}, "test-model", func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	if err != nil {
		t.Fatalf("stream failed: %v", err)
	}
	if strings.Join(chunks, "") != "Hello world" {
		t.Fatalf("got chunks %v", chunks)
	}
}

func TestStreamGenerate_CallbackErrorAborts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"a\"}]}}]}\n\n")
		io.WriteString(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"b\"}]}}]}\n\n")
	}))
	defer ts.Close()

	client := newGeminiTestClient(ts.URL)

	var calls int
	err := client.StreamGenerate(context.Background(), "", []string{"q"}, "test-model", func(chunk string) error {
		calls++
		return io.ErrClosedPipe
	})
	if err != io.ErrClosedPipe {
		t.Fatalf("expected callback error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("callback invoked %d times after abort", calls)
	}
}
