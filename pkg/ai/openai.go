package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

const openAITimeout = 10 * time.Minute

// OpenAIClient talks to the chat-completions and Whisper endpoints.
type OpenAIClient struct {
	apiKey       string
	baseURL      string
	model        string
	whisperModel string
	client       *http.Client
}

// NewOpenAIClient creates an OpenAI client from config.
func NewOpenAIClient(cfg config.OpenAIConfig) *OpenAIClient {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.openai.com/v1"
	}
	return &OpenAIClient{
		apiKey:       cfg.APIKey,
		baseURL:      strings.TrimRight(base, "/"),
		model:        cfg.Model,
		whisperModel: cfg.WhisperModel,
		client:       &http.Client{Timeout: openAITimeout},
	}
}

// Name identifies the provider in results and metrics.
func (c *OpenAIClient) Name() string { return config.ProviderOpenAI }

// GenerateSummary asks the chat model for a JSON summary.
func (c *OpenAIClient) GenerateSummary(ctx context.Context, text string) (string, error) {
	reqBody := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: summaryInstruction},
			{Role: "user", Content: text},
		},
		Temperature:    0.2,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}
	return chatCompletion(ctx, c.client, "openai", c.baseURL+"/chat/completions", c.apiKey, reqBody)
}

// WhisperTranscriber adapts OpenAIClient to the Transcriber interface.
type WhisperTranscriber struct {
	*OpenAIClient
}

// NewWhisperTranscriber creates a Whisper-backed transcriber.
func NewWhisperTranscriber(cfg config.OpenAIConfig) *WhisperTranscriber {
	return &WhisperTranscriber{OpenAIClient: NewOpenAIClient(cfg)}
}

// Transcribe uploads audio as multipart form data and returns the text.
func (w *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if w.apiKey == "" {
		return "", fmt.Errorf("whisper: %w", ErrAPIKeyMissing)
	}
	if filename == "" {
		filename = "audio.webm"
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create multipart file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("copy audio data: %w", err)
	}
	if err := writer.WriteField("model", w.whisperModel); err != nil {
		return "", fmt.Errorf("write model field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/audio/transcriptions", body)
	if err != nil {
		return "", fmt.Errorf("create transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+w.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("whisper request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", decodeAPIError("whisper", resp)
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}
	return strings.TrimSpace(payload.Text), nil
}
