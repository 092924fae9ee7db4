package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/jobcontext"
)

// RemoteResult is the outcome of one remote summarization call: a summary,
// or an error code with a message. Exactly one side is set.
type RemoteResult struct {
	Summary *entities.Summary
	Code    apperrors.ErrorCode
	Message string
}

// OK reports whether the remote call produced a summary.
func (r RemoteResult) OK() bool {
	return r.Summary != nil
}

func remoteFailure(code apperrors.ErrorCode, message string) RemoteResult {
	return RemoteResult{Code: code, Message: message}
}

// RemoteSummarize calls the configured provider once with a timeout. It
// never returns an error: every failure becomes a coded RemoteResult.
func (s *aiService) RemoteSummarize(ctx context.Context, text string) RemoteResult {
	if s.chat == nil {
		return remoteFailure(apperrors.ErrorCode_AI_SERVICE_UNAVAILABLE, "no remote summarizer configured")
	}
	provider := s.chat.Name()

	runCtx, cancel := jobcontext.Begin(ctx, "remote_summary", s.cfg.Summarizer.Timeout)
	defer cancel()

	var raw string
	start := time.Now()
	err := jobcontext.Run(runCtx, func(ctx context.Context) error {
		var err error
		raw, err = s.chat.GenerateSummary(ctx, text)
		return err
	})
	RemoteDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())

	if err != nil {
		code := classifyRemoteError(err)
		RemoteFailuresTotal.WithLabelValues(provider, code.String()).Inc()
		if s.logger != nil {
			s.logger.Warn("⚠️ Remote summarization failed, falling back to local",
				zap.String("provider", provider),
				zap.String("code", code.String()),
				zap.Error(err),
			)
		}
		return remoteFailure(code, err.Error())
	}

	sum, err := s.parser.ParseSummary(raw)
	if err != nil {
		RemoteFailuresTotal.WithLabelValues(provider, apperrors.ErrorCode_AI_MALFORMED_RESPONSE.String()).Inc()
		if s.logger != nil {
			s.logger.Warn("⚠️ Remote summary is malformed, falling back to local",
				zap.String("provider", provider),
				zap.Error(err),
			)
		}
		return remoteFailure(apperrors.ErrorCode_AI_MALFORMED_RESPONSE, err.Error())
	}

	if s.logger != nil {
		s.logger.Info("✅ Remote summary generated",
			zap.String("provider", provider),
			zap.Duration("elapsed", jobcontext.Elapsed(runCtx)),
		)
	}
	return RemoteResult{Summary: &sum}
}

// classifyRemoteError maps a provider failure onto the error taxonomy.
func classifyRemoteError(err error) apperrors.ErrorCode {
	switch {
	case errors.Is(err, pkgai.ErrAPIKeyMissing):
		return apperrors.ErrorCode_AI_API_KEY_MISSING
	case errors.Is(err, pkgai.ErrEmptyResponse):
		return apperrors.ErrorCode_AI_MALFORMED_RESPONSE
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return apperrors.ErrorCode_AI_MALFORMED_RESPONSE
	}

	var apiErr *pkgai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return apperrors.ErrorCode_AI_AUTH_FAILED
		case apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode == http.StatusPaymentRequired:
			return apperrors.ErrorCode_AI_QUOTA_EXCEEDED
		case apiErr.StatusCode == http.StatusRequestTimeout || apiErr.StatusCode == http.StatusGatewayTimeout:
			return apperrors.ErrorCode_AI_TIMEOUT
		case apiErr.StatusCode >= 500:
			return apperrors.ErrorCode_AI_SERVICE_UNAVAILABLE
		default:
			return apperrors.ErrorCode_AI_SUMMARY_FAILED
		}
	}

	switch {
	case jobcontext.IsTimeout(err):
		return apperrors.ErrorCode_AI_TIMEOUT
	case jobcontext.IsNetworkError(err):
		return apperrors.ErrorCode_AI_NETWORK_ERROR
	default:
		return apperrors.ErrorCode_AI_SUMMARY_FAILED
	}
}
