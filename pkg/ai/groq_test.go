package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnquangdev/meetscribe/pkg/config"
)

func TestComplete_Success(t *testing.T) {
	// Mock Groq server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/openai/v1/chat/completions") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", auth)
		}
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "a concise summary"}},
			},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	out, err := client.Complete(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if out != "a concise summary" {
		t.Fatalf("unexpected content %q", out)
	}
}

func TestComplete_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.Complete(context.Background(), "summarize this"); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.Complete(context.Background(), "summarize this"); err == nil {
		t.Fatal("expected error on empty choices")
	}
}

func TestParseDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake-audio-bytes"))

	mime, data, err := ParseDataURI("data:audio/webm;base64," + payload)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if mime != "audio/webm" {
		t.Fatalf("unexpected mime %q", mime)
	}
	if string(data) != "fake-audio-bytes" {
		t.Fatalf("unexpected payload %q", data)
	}
}

func TestParseDataURI_Malformed(t *testing.T) {
	cases := []string{
		"",
		"http://example.com/audio.mp3",
		"data:audio/webm;base64",
		"data:audio/webm,unencoded",
		"data:;base64,AAAA",
		"data:audio/webm;base64,not-base-64!!!",
	}
	for _, uri := range cases {
		if _, _, err := ParseDataURI(uri); err == nil {
			t.Errorf("expected error for %q", uri)
		}
	}
}
