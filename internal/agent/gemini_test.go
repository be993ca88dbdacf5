package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiInvoke_Success(t *testing.T) {
	var captured geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-1.5-pro:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query: %s", r.URL.RawQuery)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": `{"red_flags":[]}`}}}},
			},
		})
	}))
	defer srv.Close()

	client := NewGeminiClientWithBaseURL("test-key", "gemini-1.5-pro", srv.URL)
	got, err := client.Invoke(context.Background(), "system policy", "user question", 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"red_flags":[]}` {
		t.Errorf("unexpected response text %q", got)
	}

	if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != "system policy" {
		t.Errorf("system instruction not sent: %+v", captured.SystemInstruction)
	}
	if len(captured.Contents) != 1 || captured.Contents[0].Parts[0].Text != "user question" {
		t.Errorf("user content not sent: %+v", captured.Contents)
	}
	if captured.GenerationConfig.Temperature != 0.1 {
		t.Errorf("temperature not pinned: %v", captured.GenerationConfig.Temperature)
	}
	if captured.GenerationConfig.ResponseMIMEType != "application/json" {
		t.Errorf("JSON response mode not requested: %q", captured.GenerationConfig.ResponseMIMEType)
	}
}

func TestGeminiInvoke_JoinsMultipleParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "first"}, {"text": "second"}}}},
			},
		})
	}))
	defer srv.Close()

	client := NewGeminiClientWithBaseURL("k", "m", srv.URL)
	got, err := client.Invoke(context.Background(), "s", "u", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first\nsecond" {
		t.Errorf("expected joined parts, got %q", got)
	}
}

func TestGeminiInvoke_Non200IsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGeminiClientWithBaseURL("k", "m", srv.URL)
	_, err := client.Invoke(context.Background(), "s", "u", 0)
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %T: %v", err, err)
	}
	if perr.Provider != "gemini" {
		t.Errorf("unexpected provider %q", perr.Provider)
	}
}

func TestGeminiInvoke_EmptyCandidatesIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	client := NewGeminiClientWithBaseURL("k", "m", srv.URL)
	if _, err := client.Invoke(context.Background(), "s", "u", 0); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
