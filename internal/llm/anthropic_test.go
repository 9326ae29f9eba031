package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minjae-lab/infogram/internal/model"
)

func anthropicReply(text string) anthropicResponse {
	return anthropicResponse{
		ID:   "msg_test",
		Type: "message",
		Role: "assistant",
		Content: []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}{
			{Type: "text", Text: text},
		},
		Model: defaultAnthropicModel,
	}
}

func TestAnthropicProvider_Label_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("Expected path /v1/messages, got %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("Expected api key header, got %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("Expected anthropic-version header")
		}

		_ = json.NewEncoder(w).Encode(anthropicReply(`{"items": [{"index": 0, "label": "실업률"}]}`))
	}))
	defer server.Close()

	provider, err := NewAnthropicProvider(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.Label(context.Background(), LabelRequest{
		Claims: []model.NumericClaim{{Value: 3.5, Unit: "%", Raw: "3.5%"}},
	})
	if err != nil {
		t.Fatalf("Label failed: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Label != "실업률" {
		t.Errorf("Unexpected items: %+v", resp.Items)
	}
}

func TestAnthropicProvider_Label_ProseWrappedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(anthropicReply(
			`요청하신 결과입니다: {"items": [{"index": 0, "label": "예산"}]} 확인 바랍니다.`))
	}))
	defer server.Close()

	provider, err := NewAnthropicProvider(Config{APIKey: "test-key", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.Label(context.Background(), LabelRequest{
		Claims: []model.NumericClaim{{Value: 5, Unit: "조원", Raw: "5조원"}},
	})
	if err != nil {
		t.Fatalf("Label failed: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Label != "예산" {
		t.Errorf("Expected JSON extracted from prose, got %+v", resp.Items)
	}
}

func TestAnthropicProvider_Label_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "authentication_error", "message": "invalid api key"}}`))
	}))
	defer server.Close()

	provider, err := NewAnthropicProvider(Config{APIKey: "bad-key", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Label(context.Background(), LabelRequest{
		Claims: []model.NumericClaim{{Value: 1, Unit: "%"}},
	})
	if err == nil {
		t.Fatal("Expected error for API failure")
	}
}

func TestAnthropicProvider_RequiresAPIKey(t *testing.T) {
	if _, err := NewAnthropicProvider(Config{}); err == nil {
		t.Fatal("Expected error for missing API key")
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"items": []}`, `{"items": []}`},
		{`앞말 {"items": []} 뒷말`, `{"items": []}`},
		{`no json here`, `no json here`},
	}

	for _, tt := range tests {
		if got := extractJSONObject(tt.in); got != tt.want {
			t.Errorf("extractJSONObject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewProvider(t *testing.T) {
	if p, err := NewProvider(Config{Provider: ""}); err != nil || p != nil {
		t.Errorf("Expected (nil, nil) for empty provider, got (%v, %v)", p, err)
	}

	if _, err := NewProvider(Config{Provider: "bard"}); err == nil {
		t.Error("Expected error for unknown provider")
	}

	p, err := NewProvider(Config{Provider: "ollama", Model: "llama3.1"})
	if err != nil {
		t.Fatalf("Expected ollama provider, got %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Expected name ollama, got %q", p.Name())
	}

	p, err = NewProvider(Config{Provider: "claude", APIKey: "k"})
	if err != nil {
		t.Fatalf("Expected anthropic provider for claude alias, got %v", err)
	}
	if p.Name() != "anthropic" {
		t.Errorf("Expected name anthropic, got %q", p.Name())
	}
}
