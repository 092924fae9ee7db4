package ai

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/jobcontext"
)

// AssemblyAITranscriber uploads audio with the official SDK and waits for
// the finished transcript.
type AssemblyAITranscriber struct {
	client   *aai.Client
	language string
	logger   *zap.Logger

	apiKey          string
	baseURL         string
	initialInterval time.Duration
	maxElapsed      time.Duration
}

// AssemblyAIOption customizes the transcriber.
type AssemblyAIOption func(*AssemblyAITranscriber)

// WithAssemblyAIBaseURL points the SDK client at another host.
func WithAssemblyAIBaseURL(baseURL string) AssemblyAIOption {
	return func(t *AssemblyAITranscriber) { t.baseURL = baseURL }
}

// WithUploadBackoff overrides the upload retry intervals.
func WithUploadBackoff(initial, maxElapsed time.Duration) AssemblyAIOption {
	return func(t *AssemblyAITranscriber) {
		t.initialInterval = initial
		t.maxElapsed = maxElapsed
	}
}

// NewAssemblyAITranscriber creates a transcriber using the provided config.
// If the key is empty, falls back to the ASSEMBLYAI_API_KEY environment variable.
func NewAssemblyAITranscriber(cfg config.AssemblyAIConfig, logger *zap.Logger, opts ...AssemblyAIOption) (*AssemblyAITranscriber, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("assemblyai: %w", ErrAPIKeyMissing)
	}

	t := &AssemblyAITranscriber{
		language:        cfg.LanguageCode,
		logger:          logger,
		apiKey:          apiKey,
		initialInterval: 2 * time.Second,
		maxElapsed:      30 * time.Second,
	}
	if t.language == "" {
		t.language = "ko"
	}
	for _, opt := range opts {
		opt(t)
	}

	clientOpts := []aai.ClientOption{aai.WithAPIKey(apiKey)}
	if t.baseURL != "" {
		clientOpts = append(clientOpts, aai.WithBaseURL(t.baseURL))
	}
	t.client = aai.NewClientWithOptions(clientOpts...)
	return t, nil
}

// Transcribe uploads audio, retrying transient upload failures with
// exponential backoff, then transcribes the uploaded file.
func (t *AssemblyAITranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("assemblyai: empty audio")
	}

	var uploadURL string
	uploadFn := func() error {
		if t.logger != nil {
			t.logger.Info("📤 Uploading file to AssemblyAI",
				zap.String("filename", filename),
				zap.Int("bytes", len(audio)),
			)
		}
		u, err := t.client.Upload(ctx, bytes.NewReader(audio))
		if err != nil {
			if !jobcontext.IsRetryableError(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		uploadURL = u
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = t.initialInterval
	bo.MaxElapsedTime = t.maxElapsed
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(uploadFn, backoff.WithContext(bo, ctx)); err != nil {
		if t.logger != nil {
			t.logger.Error("❌ Failed to upload to AssemblyAI after retries", zap.Error(err))
		}
		return "", fmt.Errorf("failed to upload to AssemblyAI: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		LanguageCode:  aai.TranscriptLanguageCode(t.language),
		SpeakerLabels: aai.Bool(true),
	}

	if t.logger != nil {
		t.logger.Info("🎙️ Starting transcription", zap.String("language", t.language))
	}

	transcript, err := t.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", fmt.Errorf("assemblyai transcription failed: %s", msg)
	}

	var text string
	if transcript.Text != nil {
		text = *transcript.Text
	}
	if t.logger != nil {
		id := ""
		if transcript.ID != nil {
			id = *transcript.ID
		}
		t.logger.Info("✅ Transcription completed",
			zap.String("transcript_id", id),
			zap.Int("chars", len(text)),
		)
	}
	return text, nil
}
