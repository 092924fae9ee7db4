package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrAPIKeyMissing is returned before any request when a provider has no key.
	ErrAPIKeyMissing = errors.New("api key missing")
	// ErrEmptyResponse is returned when a provider answers without content.
	ErrEmptyResponse = errors.New("empty response")
	// ErrTranscriberDisabled is returned when no transcription provider is configured.
	ErrTranscriberDisabled = errors.New("transcription provider disabled")
)

// APIError is a non-2xx answer from a remote provider.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// decodeAPIError reads the provider error envelope {"error":{"message":...}}
// and falls back to the raw body.
func decodeAPIError(provider string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		msg = envelope.Error.Message
	}
	return &APIError{Provider: provider, StatusCode: resp.StatusCode, Message: msg}
}
