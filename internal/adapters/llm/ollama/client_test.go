package ollama_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moonpath/tarotd/internal/adapters/llm/ollama"
)

func collect(t *testing.T, client *ollama.Client) []string {
	t.Helper()
	var got []string
	err := client.StreamInterpretation(context.Background(), "system", "prompt", func(fragment string) error {
		got = append(got, fragment)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return got
}

func newTestClient(srv *httptest.Server) *ollama.Client {
	return ollama.NewClient(srv.Client(), srv.URL, "test-model", slog.Default())
}

func TestStreamInterpretation_FragmentsInOrder(t *testing.T) {
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/generate" {
			t.Errorf("expected /api/generate, got %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)

		w.Header().Set("Content-Type", "application/x-ndjson")
		_, _ = io.WriteString(w, `{"response":"Hello"}`+"\n")
		_, _ = io.WriteString(w, `{"response":" world"}`+"\n")
		_, _ = io.WriteString(w, `{"done":true}`+"\n")
	}))
	defer srv.Close()

	got := collect(t, newTestClient(srv))

	if len(got) != 2 || got[0] != "Hello" || got[1] != " world" {
		t.Errorf("unexpected fragments: %v", got)
	}
	if gotReq["model"] != "test-model" {
		t.Errorf("request model: %v", gotReq["model"])
	}
	if gotReq["stream"] != true {
		t.Errorf("request stream flag: %v", gotReq["stream"])
	}
	if gotReq["system"] != "system" {
		t.Errorf("request system: %v", gotReq["system"])
	}
}

func TestStreamInterpretation_MalformedChunksSkipped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"response":"one"}`+"\n")
		_, _ = io.WriteString(w, "not json at all\n")
		_, _ = io.WriteString(w, `{"response":"two"}`+"\n")
		_, _ = io.WriteString(w, `{"done":true}`+"\n")
	}))
	defer srv.Close()

	got := collect(t, newTestClient(srv))

	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("unexpected fragments: %v", got)
	}
}

func TestStreamInterpretation_EmptyResponsesNotEmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"response":""}`+"\n")
		_, _ = io.WriteString(w, `{"response":"only"}`+"\n")
		_, _ = io.WriteString(w, `{"response":"","done":true}`+"\n")
	}))
	defer srv.Close()

	got := collect(t, newTestClient(srv))

	if len(got) != 1 || got[0] != "only" {
		t.Errorf("unexpected fragments: %v", got)
	}
}

func TestStreamInterpretation_ErrorRecordYieldsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"error":"model not found"}`+"\n")
	}))
	defer srv.Close()

	got := collect(t, newTestClient(srv))

	if len(got) != 1 || got[0] != ollama.FallbackMessage {
		t.Errorf("expected only the fallback sentence, got %v", got)
	}
}

func TestStreamInterpretation_Non200YieldsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"boom"}`)
	}))
	defer srv.Close()

	got := collect(t, newTestClient(srv))

	if len(got) != 1 || got[0] != ollama.FallbackMessage {
		t.Errorf("expected only the fallback sentence, got %v", got)
	}
}

func TestStreamInterpretation_ConnectFailureYieldsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := ollama.NewClient(&http.Client{}, srv.URL, "test-model", slog.Default())
	got := collect(t, client)

	if len(got) != 1 || got[0] != ollama.FallbackMessage {
		t.Errorf("expected only the fallback sentence, got %v", got)
	}
}

func TestStreamInterpretation_TimeoutYieldsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	client := ollama.NewClient(&http.Client{Timeout: 50 * time.Millisecond}, srv.URL, "test-model", slog.Default())
	got := collect(t, client)

	if len(got) != 1 || got[0] != ollama.FallbackMessage {
		t.Errorf("expected only the fallback sentence, got %v", got)
	}
}

func TestStreamInterpretation_FallbackAfterPartialStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"response":"partial"}`+"\n")
		_, _ = io.WriteString(w, `{"error":"went sideways"}`+"\n")
	}))
	defer srv.Close()

	got := collect(t, newTestClient(srv))

	if len(got) != 2 || got[0] != "partial" || got[1] != ollama.FallbackMessage {
		t.Errorf("expected partial fragment then fallback, got %v", got)
	}
}

func TestStreamInterpretation_CleanCloseWithoutDone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"response":"all there is"}`+"\n")
	}))
	defer srv.Close()

	got := collect(t, newTestClient(srv))

	if len(got) != 1 || got[0] != "all there is" {
		t.Errorf("unexpected fragments: %v", got)
	}
}

func TestStreamInterpretation_EmitErrorAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		for range 5 {
			_, _ = io.WriteString(w, `{"response":"x"}`+"\n")
		}
		_, _ = io.WriteString(w, `{"done":true}`+"\n")
	}))
	defer srv.Close()

	consumerGone := errors.New("consumer gone")
	emitted := 0
	err := newTestClient(srv).StreamInterpretation(context.Background(), "s", "p", func(string) error {
		emitted++
		return consumerGone
	})

	if !errors.Is(err, consumerGone) {
		t.Fatalf("expected emit error to propagate, got %v", err)
	}
	if emitted != 1 {
		t.Errorf("expected streaming to stop after first emit, got %d", emitted)
	}
}
