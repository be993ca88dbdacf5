package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIInvoke_Success(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"disclaimer":"educational"}`}},
			},
		})
	}))
	defer srv.Close()

	client := NewOpenAIClientWithBaseURL("sk-test", "gpt-4", srv.URL)
	got, err := client.Invoke(context.Background(), "system policy", "user question", 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"disclaimer":"educational"}` {
		t.Errorf("unexpected content %q", got)
	}

	if captured["model"] != "gpt-4" {
		t.Errorf("model not sent: %v", captured["model"])
	}
	if rf, ok := captured["response_format"].(map[string]any); !ok || rf["type"] != "json_object" {
		t.Errorf("JSON response format not requested: %v", captured["response_format"])
	}
	msgs, _ := captured["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system+user messages, got %v", msgs)
	}
}

func TestOpenAIInvoke_BackendErrorIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewOpenAIClientWithBaseURL("bad-key", "gpt-4", srv.URL)
	_, err := client.Invoke(context.Background(), "s", "u", 0)
	if err == nil {
		t.Fatal("expected error")
	}

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %T: %v", err, err)
	}
	if perr.Provider != "openai" {
		t.Errorf("unexpected provider %q", perr.Provider)
	}
}

func TestOpenAIInvoke_NoChoicesIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewOpenAIClientWithBaseURL("sk-test", "gpt-4", srv.URL)
	if _, err := client.Invoke(context.Background(), "s", "u", 0); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
