package ai

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// Transcriber turns recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// LazyTranscriber builds its backend on first use and shares it afterwards.
// A failed build is remembered; it is not retried.
type LazyTranscriber struct {
	once  sync.Once
	build func() (Transcriber, error)

	backend Transcriber
	err     error
}

// NewLazyTranscriber wraps build so it runs at most once.
func NewLazyTranscriber(build func() (Transcriber, error)) *LazyTranscriber {
	return &LazyTranscriber{build: build}
}

// Get returns the shared backend, building it if needed.
func (l *LazyTranscriber) Get() (Transcriber, error) {
	l.once.Do(func() {
		l.backend, l.err = l.build()
	})
	return l.backend, l.err
}

// Transcribe delegates to the shared backend.
func (l *LazyTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	t, err := l.Get()
	if err != nil {
		return "", err
	}
	return t.Transcribe(ctx, audio, filename)
}

// NewTranscriber returns a lazily built transcriber for the configured provider.
func NewTranscriber(cfg *config.Config, logger *zap.Logger) *LazyTranscriber {
	return NewLazyTranscriber(func() (Transcriber, error) {
		switch cfg.Transcription.Provider {
		case config.TranscriberAssemblyAI:
			return NewAssemblyAITranscriber(cfg.Assembly, logger)
		case config.TranscriberWhisper:
			return NewWhisperTranscriber(cfg.OpenAI), nil
		default:
			return nil, ErrTranscriberDisabled
		}
	})
}

// NewChatClient returns the configured remote summarizer, or nil when the
// provider is "none". Missing keys surface per request, not here.
func NewChatClient(cfg *config.Config) (ChatClient, error) {
	switch cfg.Summarizer.Provider {
	case config.ProviderNone, "":
		return nil, nil
	case config.ProviderGroq:
		return NewGroqClient(&cfg.Groq), nil
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAI), nil
	case config.ProviderGemini:
		return NewGeminiClient(cfg.Gemini), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Summarizer.Provider)
	}
}
