package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChat_NoAPIKeyUsesFallback(t *testing.T) {
	client := &Client{}
	got, err := client.Chat(context.Background(), "Tell me about BHP", "")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got != FallbackResponse("Tell me about BHP") {
		t.Fatalf("offline answer must come from the canned fallback")
	}
	// Same prompt, same answer.
	again, _ := client.Chat(context.Background(), "Tell me about BHP", "")
	if again != got {
		t.Fatalf("fallback must be deterministic")
	}
}

func TestFallbackResponse_Routing(t *testing.T) {
	if !strings.Contains(FallbackResponse("analysis of BHP please"), "BHP Group Limited") {
		t.Fatalf("BHP prompt must hit the BHP answer")
	}
	if !strings.Contains(FallbackResponse("give me a Market Overview"), "Major Indices") {
		t.Fatalf("market overview prompt must hit the overview answer")
	}
	if !strings.Contains(FallbackResponse("anything else"), "Portfolio Investment Advice") {
		t.Fatalf("other prompts must hit the general answer")
	}
}

func TestChat_SendsRequestAndReadsChoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("path=%s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("authorization=%q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "llama3-70b-8192" {
			t.Fatalf("model=%q want default", req.Model)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Fatalf("messages=%+v", req.Messages)
		}
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "hello there"}}]}`))
	}))
	defer srv.Close()

	client := &Client{BaseURL: srv.URL, APIKey: "test-key", HTTP: srv.Client()}
	got, err := client.Chat(context.Background(), "hi", "")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got != "hello there" {
		t.Fatalf("answer=%q", got)
	}
}

func TestChat_ModelOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "mixtral-8x7b" {
			t.Fatalf("model=%q want override", req.Model)
		}
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer srv.Close()

	client := &Client{BaseURL: srv.URL, APIKey: "test-key", Model: "llama3-8b", HTTP: srv.Client()}
	if _, err := client.Chat(context.Background(), "hi", "mixtral-8x7b"); err != nil {
		t.Fatalf("chat: %v", err)
	}
}

func TestChat_UpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid key"}`))
	}))
	defer srv.Close()

	client := &Client{BaseURL: srv.URL, APIKey: "bad-key", HTTP: srv.Client()}
	_, err := client.Chat(context.Background(), "hi", "")
	if err == nil {
		t.Fatalf("expected error for 401")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Fatalf("err=%v want status in message", err)
	}
}
