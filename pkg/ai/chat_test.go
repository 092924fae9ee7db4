package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

const summaryJSON = `{"title":"Sprint sync","topics":[],"action_items":[],"overall_summary":"ok","decisions":[]}`

func chatServer(t *testing.T, wantPath string, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, wantPath, r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)
		assert.Contains(t, req.Messages[len(req.Messages)-1].Content, "deploy on friday")
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func completion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []any{map[string]any{"message": map[string]string{"content": content}}},
	})
	return string(b)
}

func TestGroqGenerateSummary(t *testing.T) {
	ts := chatServer(t, "/openai/v1/chat/completions", http.StatusOK, completion(summaryJSON))
	defer ts.Close()

	g := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL, Model: "llama"})
	out, err := g.GenerateSummary(context.Background(), "we deploy on friday")
	require.NoError(t, err)
	assert.Equal(t, summaryJSON, out)
	assert.Equal(t, "groq", g.Name())
}

func TestOpenAIGenerateSummary(t *testing.T) {
	ts := chatServer(t, "/chat/completions", http.StatusOK, completion(summaryJSON))
	defer ts.Close()

	c := NewOpenAIClient(config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL, Model: "gpt-4o-mini"})
	out, err := c.GenerateSummary(context.Background(), "we deploy on friday")
	require.NoError(t, err)
	assert.Equal(t, summaryJSON, out)
}

func TestChatErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
		wantErr    error
	}{
		{name: "auth", status: http.StatusUnauthorized, body: `{"error":{"message":"Incorrect API key provided"}}`, wantStatus: 401, wantMsg: "Incorrect API key provided"},
		{name: "quota", status: http.StatusTooManyRequests, body: `{"error":{"message":"quota exceeded"}}`, wantStatus: 429, wantMsg: "quota exceeded"},
		{name: "plain body", status: http.StatusBadGateway, body: "upstream down", wantStatus: 502, wantMsg: "upstream down"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := chatServer(t, "/chat/completions", tt.status, tt.body)
			defer ts.Close()

			c := NewOpenAIClient(config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})
			_, err := c.GenerateSummary(context.Background(), "we deploy on friday")
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestMissingKeySkipsRequest(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer ts.Close()

	t.Setenv("GROQ_API_KEY", "")
	clients := []ChatClient{
		NewGroqClient(&config.GroqConfig{BaseURL: ts.URL}),
		NewOpenAIClient(config.OpenAIConfig{BaseURL: ts.URL}),
		NewGeminiClient(config.GeminiConfig{BaseURL: ts.URL}),
	}
	for _, c := range clients {
		_, err := c.GenerateSummary(context.Background(), "notes")
		assert.ErrorIs(t, err, ErrAPIKeyMissing, c.Name())
	}
	assert.False(t, called)
}

func TestGeminiGenerateSummary(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.True(t, strings.HasSuffix(req.Contents[0].Parts[0].Text, "we deploy on friday"))
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{"parts": []any{map[string]string{"text": summaryJSON}}},
			}},
		})
	}))
	defer ts.Close()

	g := NewGeminiClient(config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL, Model: "gemini-test"})
	out, err := g.GenerateSummary(context.Background(), "we deploy on friday")
	require.NoError(t, err)
	assert.Equal(t, summaryJSON, out)
}

func TestNewChatClient(t *testing.T) {
	tests := []struct {
		provider string
		want     string
		wantNil  bool
		wantErr  bool
	}{
		{provider: config.ProviderNone, wantNil: true},
		{provider: config.ProviderGroq, want: "groq"},
		{provider: config.ProviderOpenAI, want: "openai"},
		{provider: config.ProviderGemini, want: "gemini"},
		{provider: "bard", wantErr: true},
	}
	for _, tt := range tests {
		cfg := &config.Config{Summarizer: config.SummarizerConfig{Provider: tt.provider}}
		c, err := NewChatClient(cfg)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		if tt.wantNil {
			assert.Nil(t, c)
			continue
		}
		assert.Equal(t, tt.want, c.Name())
	}
}
