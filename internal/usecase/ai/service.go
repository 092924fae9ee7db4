package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-summarizer/internal/summarizer"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/jobcontext"
)

// Summary sources besides the remote provider names.
const (
	SourceLocal = "local"
	ModeRemote  = "remote"
)

// Archiver keeps a copy of uploaded audio and produced summaries.
type Archiver interface {
	UploadBytes(ctx context.Context, objectName string, data []byte, contentType string) error
}

// SummarizeInput is one summarization request. At least one of Notes and
// Audio must be present.
type SummarizeInput struct {
	Notes     string
	Audio     []byte
	AudioName string
	// LocalOnly skips the remote provider.
	LocalOnly bool
	// ReferenceDate resolves relative due dates in the local pipeline.
	ReferenceDate time.Time
}

// SummarizeOutput is the result handed back to callers and cached.
type SummarizeOutput struct {
	ID                 string           `json:"id"`
	Summary            entities.Summary `json:"summary"`
	Text               string           `json:"text"`
	Source             string           `json:"source"`
	Mode               string           `json:"mode"`
	Transcript         string           `json:"transcript,omitempty"`
	Language           string           `json:"language,omitempty"`
	Truncated          bool             `json:"truncated"`
	Cached             bool             `json:"-"`
	SummaryError       string           `json:"summary_error,omitempty"`
	ErrorMessage       string           `json:"error_message,omitempty"`
	TranscriptionError string           `json:"transcription_error,omitempty"`
}

// Service defines meeting summarization methods
type Service interface {
	Summarize(ctx context.Context, in SummarizeInput) (*SummarizeOutput, error)
	RemoteSummarize(ctx context.Context, text string) RemoteResult
	Render(sum entities.Summary) string
}

type aiService struct {
	cfg         *config.Config
	local       *summarizer.Summarizer
	chat        pkgai.ChatClient
	transcriber pkgai.Transcriber
	store       cache.Store
	archive     Archiver
	parser      *Parser
	logger      *zap.Logger
	// transcribeSemaphore limits concurrent transcriptions
	transcribeSemaphore chan struct{}
}

// NewAIService constructs the summarization service. chat, transcriber,
// store and archive may be nil.
func NewAIService(
	cfg *config.Config,
	local *summarizer.Summarizer,
	chat pkgai.ChatClient,
	transcriber pkgai.Transcriber,
	store cache.Store,
	archive Archiver,
	logger *zap.Logger,
) Service {
	if local == nil {
		local = summarizer.Default()
	}
	slots := cfg.Transcription.MaxConcurrent
	if slots <= 0 {
		slots = 2
	}
	return &aiService{
		cfg:                 cfg,
		local:               local,
		chat:                chat,
		transcriber:         transcriber,
		store:               store,
		archive:             archive,
		parser:              NewParser(),
		logger:              logger,
		transcribeSemaphore: make(chan struct{}, slots),
	}
}

// MergeNotes joins manual notes and a transcript with a blank line.
func MergeNotes(notes, transcript string) string {
	notes = strings.TrimSpace(notes)
	transcript = strings.TrimSpace(transcript)
	switch {
	case notes == "":
		return transcript
	case transcript == "":
		return notes
	default:
		return notes + "\n\n" + transcript
	}
}

// Summarize transcribes audio when present, merges it with the notes and
// summarizes the result. The remote provider is tried first; any remote
// failure falls back to the local pipeline and is reported in the output,
// not as an error.
func (s *aiService) Summarize(ctx context.Context, in SummarizeInput) (*SummarizeOutput, error) {
	notes := strings.TrimSpace(in.Notes)
	if notes == "" && len(in.Audio) == 0 {
		return nil, apperrors.ErrInvalidArgument("meeting_text or audio_file is required")
	}

	out := &SummarizeOutput{}
	if len(in.Audio) > 0 {
		transcript, err := s.transcribe(ctx, in.Audio, in.AudioName)
		if err != nil {
			if notes == "" {
				if errors.Is(err, pkgai.ErrTranscriberDisabled) {
					return nil, apperrors.ErrAITranscriberDisabled()
				}
				return nil, apperrors.ErrAITranscriptionFailed(err)
			}
			out.TranscriptionError = err.Error()
		}
		out.Transcript = transcript
	}

	merged := MergeNotes(notes, out.Transcript)
	if merged == "" {
		return nil, apperrors.ErrInvalidArgument("meeting_text or audio_file is required")
	}
	_, out.Language, _ = s.parser.DetectLanguageMix(merged)

	local, err := s.localFor(in.ReferenceDate)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	useRemote := !in.LocalOnly && s.chat != nil
	refKey := ""
	if !in.ReferenceDate.IsZero() {
		refKey = in.ReferenceDate.Format("2006-01-02")
	}
	key := cache.SummaryKey(s.sourceFor(useRemote), refKey, merged)
	if cached, ok := s.lookup(ctx, key); ok {
		cached.Cached = true
		cached.Transcript = out.Transcript
		cached.TranscriptionError = out.TranscriptionError
		return cached, nil
	}

	input, truncated := summarizer.TruncateText(merged, s.cfg.Summarizer.MaxInputChars)
	out.Truncated = truncated
	if truncated {
		TruncatedInputsTotal.Inc()
	}

	remoteOK := false
	if useRemote {
		res := s.RemoteSummarize(ctx, input)
		if res.OK() {
			out.Summary = *res.Summary
			out.Source = s.chat.Name()
			out.Mode = ModeRemote
			remoteOK = true
		} else {
			out.SummaryError = res.Code.String()
			out.ErrorMessage = res.Message
		}
	}
	if !remoteOK {
		r := local.Analyze(merged)
		out.Summary = r.Summary
		out.Source = SourceLocal
		out.Mode = string(r.Mode)
	}

	out.Text = s.local.Render(out.Summary)
	out.ID = uuid.NewString()
	SummariesTotal.WithLabelValues(out.Source, out.Mode).Inc()

	if s.logger != nil {
		s.logger.Info("📝 Summary produced",
			zap.String("id", out.ID),
			zap.String("source", out.Source),
			zap.String("mode", out.Mode),
			zap.Bool("truncated", out.Truncated),
			zap.Int("topics", len(out.Summary.Topics)),
			zap.Int("action_items", len(out.Summary.ActionItems)),
		)
	}

	s.archiveRun(ctx, out, in)
	// A fallback after a remote failure is not cached so the next request
	// tries the provider again.
	if out.SummaryError == "" {
		s.remember(ctx, key, out)
	}
	return out, nil
}

// Render formats a summary with the configured lexicon headings.
func (s *aiService) Render(sum entities.Summary) string {
	sum.Normalize()
	return s.local.Render(sum)
}

// localFor returns the shared local summarizer, or one resolving relative
// dates against ref.
func (s *aiService) localFor(ref time.Time) (*summarizer.Summarizer, error) {
	if ref.IsZero() {
		return s.local, nil
	}
	return summarizer.New(
		summarizer.WithLexicon(s.local.Lexicon()),
		summarizer.WithBudget(s.local.Budget()),
		summarizer.WithReferenceDate(ref),
	)
}

func (s *aiService) sourceFor(remote bool) string {
	if remote {
		return s.chat.Name()
	}
	return SourceLocal
}

func (s *aiService) transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if s.transcriber == nil {
		TranscriptionsTotal.WithLabelValues("error").Inc()
		return "", pkgai.ErrTranscriberDisabled
	}

	// Acquire semaphore slot - blocks while MaxConcurrent transcriptions run
	select {
	case s.transcribeSemaphore <- struct{}{}:
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for transcription slot: %w", ctx.Err())
	}
	defer func() { <-s.transcribeSemaphore }()

	runCtx, cancel := jobcontext.Begin(ctx, "transcription", s.cfg.Transcription.Timeout)
	defer cancel()

	if s.logger != nil {
		s.logger.Info("🎙️ Transcribing audio",
			zap.String("filename", filename),
			zap.Int("bytes", len(audio)),
		)
	}

	var text string
	err := jobcontext.Run(runCtx, func(ctx context.Context) error {
		var err error
		text, err = s.transcriber.Transcribe(ctx, audio, filename)
		return err
	})
	if err != nil {
		TranscriptionsTotal.WithLabelValues("error").Inc()
		if s.logger != nil {
			meta := jobcontext.GetRunMetadata(runCtx)
			s.logger.Error("❌ Transcription failed",
				zap.String("run_id", meta.RunID.String()),
				zap.String("kind", meta.Kind),
				zap.Duration("elapsed", time.Since(meta.StartTime)),
				zap.Error(err),
			)
		}
		return "", err
	}

	TranscriptionsTotal.WithLabelValues("success").Inc()
	if s.logger != nil {
		s.logger.Info("✅ Transcription completed",
			zap.Int("chars", len(text)),
			zap.Duration("elapsed", jobcontext.Elapsed(runCtx)),
		)
	}
	return strings.TrimSpace(text), nil
}

func (s *aiService) lookup(ctx context.Context, key string) (*SummarizeOutput, bool) {
	if s.store == nil {
		return nil, false
	}
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		CacheLookupsTotal.WithLabelValues("error").Inc()
		if s.logger != nil {
			s.logger.Warn("⚠️ Summary cache lookup failed", zap.Error(err))
		}
		return nil, false
	}
	if !ok {
		CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var out SummarizeOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		CacheLookupsTotal.WithLabelValues("error").Inc()
		_ = s.store.Delete(ctx, key)
		return nil, false
	}
	CacheLookupsTotal.WithLabelValues("hit").Inc()
	return &out, true
}

func (s *aiService) remember(ctx context.Context, key string, out *SummarizeOutput) {
	if s.store == nil {
		return
	}
	cached := *out
	cached.Transcript = ""
	cached.TranscriptionError = ""
	b, err := json.Marshal(cached)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, key, string(b), s.cfg.Redis.CacheTTL); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to cache summary", zap.Error(err))
	}
}

type artifact struct {
	name        string
	data        []byte
	contentType string
}

// archiveRun stores the audio and both summary forms. Failures are logged;
// the summary is still returned.
func (s *aiService) archiveRun(ctx context.Context, out *SummarizeOutput, in SummarizeInput) {
	if s.archive == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	uploads := []artifact{
		{storage.SummaryObject(out.ID, "txt"), []byte(out.Text), "text/plain; charset=utf-8"},
	}
	if b, err := json.Marshal(out.Summary); err == nil {
		uploads = append(uploads, artifact{storage.SummaryObject(out.ID, "json"), b, "application/json"})
	}
	if len(in.Audio) > 0 {
		uploads = append(uploads, artifact{storage.AudioObject(out.ID, in.AudioName), in.Audio, "application/octet-stream"})
	}

	for _, u := range uploads {
		if err := s.archive.UploadBytes(ctx, u.name, u.data, u.contentType); err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Failed to archive summary artifact",
					zap.String("object", u.name),
					zap.Error(err),
				)
			}
		}
	}
}
