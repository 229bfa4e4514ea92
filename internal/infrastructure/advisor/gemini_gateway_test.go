package advisor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"wetrade/internal/domain/entities"
	"wetrade/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *GeminiGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gw, err := NewGeminiGateway(context.Background(), Config{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		Model:     "gemini-test",
		ChatModel: "gemini-chat-test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return gw
}

func TestNewGeminiGateway(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		gw, err := NewGeminiGateway(context.Background(), Config{})
		if !errors.Is(err, ErrMissingGeminiAPIKey) || gw != nil {
			t.Fatalf("expected ErrMissingGeminiAPIKey, got %v", err)
		}
	})

	t.Run("mock mode needs no key", func(t *testing.T) {
		gw, err := NewGeminiGateway(context.Background(), Config{Mock: true})
		if err != nil || gw == nil || !gw.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", gw, err)
		}
	})
}

func TestGeminiGateway_NotConfigured(t *testing.T) {
	var gw *GeminiGateway
	if _, err := gw.Appraise(context.Background(), interfaces.AppraisalPrompt{}); !errors.Is(err, interfaces.ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
	if _, err := gw.Chat(context.Background(), "", "hi"); !errors.Is(err, interfaces.ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
}

func TestGeminiGateway_MockAppraise(t *testing.T) {
	gw, _ := NewGeminiGateway(context.Background(), Config{Mock: true})

	a, err := gw.Appraise(context.Background(), interfaces.AppraisalPrompt{Instruction: "PS5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := gw.Appraise(context.Background(), interfaces.AppraisalPrompt{Instruction: "PS5"})
	if a.Text != b.Text {
		t.Fatalf("mock appraisal should be deterministic")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(a.Text), &payload); err != nil {
		t.Fatalf("mock reply is not json: %v", err)
	}
	for _, key := range []string{"estimatedMarketValue", "maxLoanOffer", "confidenceScore", "analysis"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("mock reply missing %s", key)
		}
	}
	if len(a.Sources) != 1 {
		t.Fatalf("expected one mock source")
	}
}

func TestGeminiGateway_Appraise(t *testing.T) {
	var body string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-test:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("unexpected api key header %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"candidates": [{
				"content": {"role": "model", "parts": [
					{"text": "thinking...", "thought": true},
					{"text": "{\"estimatedMarketValue\": 800000, "},
					{"text": "\"maxLoanOffer\": 560000, \"confidenceScore\": 0.9, \"analysis\": \"ok\"}"}
				]},
				"groundingMetadata": {"groundingChunks": [
					{"web": {"uri": "https://jumia.com.ng/s23", "title": "Jumia"}},
					{"retrievedContext": {"uri": "ignored"}}
				]}
			}]
		}`)
	})

	reply, err := gw.Appraise(context.Background(), interfaces.AppraisalPrompt{
		Instruction:       "value this",
		SystemInstruction: "You are the WeTrade AI Market Analyst.",
		Image:             &entities.InlineImage{MIMEType: "image/png", Data: []byte{0x89, 0x50}},
		Schema:            []interfaces.SchemaField{{Name: "estimatedMarketValue", Type: "number"}, {Name: "analysis", Type: "string"}},
		SearchGrounding:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Text != `{"estimatedMarketValue": 800000, "maxLoanOffer": 560000, "confidenceScore": 0.9, "analysis": "ok"}` {
		t.Fatalf("unexpected text %q", reply.Text)
	}
	if len(reply.Sources) != 1 || reply.Sources[0].URI != "https://jumia.com.ng/s23" || reply.Sources[0].Title != "Jumia" {
		t.Fatalf("unexpected sources %+v", reply.Sources)
	}
	for _, want := range []string{"googleSearch", "application/json", "value this", "WeTrade AI Market Analyst", "image/png"} {
		if !strings.Contains(body, want) {
			t.Fatalf("request body missing %q: %s", want, body)
		}
	}
}

func TestGeminiGateway_ErrorClassification(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		transient bool
	}{
		{"server error", http.StatusServiceUnavailable, true},
		{"rate limited", http.StatusTooManyRequests, true},
		{"bad request", http.StatusBadRequest, false},
		{"forbidden", http.StatusForbidden, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, `{"error": {"code": `+strconv.Itoa(tc.status)+`, "message": "nope", "status": "ERR"}}`)
			})

			_, err := gw.Appraise(context.Background(), interfaces.AppraisalPrompt{Instruction: "x"})
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := errors.Is(err, interfaces.ErrGatewayTransient); got != tc.transient {
				t.Fatalf("transient = %v, want %v (err=%v)", got, tc.transient, err)
			}
			if calls.Load() == 0 {
				t.Fatalf("server was not called")
			}
		})
	}
}

func TestGeminiGateway_Chat(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-chat-test:generateContent") {
			t.Errorf("chat should use the chat model, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates": [{"content": {"parts": [{"text": "Hello from WeTrade"}]}}]}`)
	})

	got, err := gw.Chat(context.Background(), "You are the WeTrade Assistant.", "hi")
	if err != nil || got != "Hello from WeTrade" {
		t.Fatalf("unexpected reply %q err=%v", got, err)
	}
}

func TestClassify_PassesContextErrors(t *testing.T) {
	if err := classify(context.DeadlineExceeded); !errors.Is(err, context.DeadlineExceeded) || errors.Is(err, interfaces.ErrGatewayTransient) {
		t.Fatalf("deadline must pass through untouched, got %v", err)
	}
}
