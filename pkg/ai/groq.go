package ai

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// GroqClient is a minimal client for Groq chat completions.
type GroqClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	var apiKey, base, model string
	if cfg != nil {
		apiKey, base, model = cfg.APIKey, cfg.BaseURL, cfg.Model
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}
	if base == "" {
		base = os.Getenv("GROQ_API_URL")
		if base == "" {
			base = "https://api.groq.com"
		}
	}
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	return &GroqClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name identifies the provider in results and metrics.
func (g *GroqClient) Name() string { return config.ProviderGroq }

// GenerateSummary sends the meeting text to Groq and returns the assistant content
func (g *GroqClient) GenerateSummary(ctx context.Context, text string) (string, error) {
	reqBody := ChatRequest{
		Model:          g.model,
		Messages:       []ChatMessage{{Role: "user", Content: summaryPrompt(text)}},
		Temperature:    0.3,
		MaxTokens:      4000,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}
	return chatCompletion(ctx, g.client, "groq", g.baseURL+"/openai/v1/chat/completions", g.apiKey, reqBody)
}
