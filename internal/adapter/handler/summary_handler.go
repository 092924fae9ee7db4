package handler

import (
	stdErrors "errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	aiuse "github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
)

// DefaultMaxAudioBytes bounds a single audio upload.
const DefaultMaxAudioBytes int64 = 25 << 20

const referenceDateLayout = "2006-01-02"

// Summary handles the meeting summary endpoints
type Summary struct {
	svc           aiuse.Service
	logger        *zap.Logger
	maxAudioBytes int64
}

// NewSummaryHandler creates a new summary handler. A non-positive
// maxAudioBytes selects DefaultMaxAudioBytes.
func NewSummaryHandler(svc aiuse.Service, logger *zap.Logger, maxAudioBytes int64) *Summary {
	if maxAudioBytes <= 0 {
		maxAudioBytes = DefaultMaxAudioBytes
	}
	return &Summary{svc: svc, logger: logger, maxAudioBytes: maxAudioBytes}
}

// Summarize summarizes meeting notes, an audio recording or both
// @Summary      Summarize a meeting
// @Description  Accepts meeting_text and an optional audio_file (multipart) or a JSON body. The remote summarizer is tried first and the local pipeline is the fallback.
// @Tags         Summary
// @Accept       json,mpfd
// @Produce      json
// @Param        meeting_text    formData  string  false  "Meeting notes"
// @Param        audio_file      formData  file    false  "Meeting recording"
// @Param        reference_date  formData  string  false  "Date relative due dates resolve against (YYYY-MM-DD)"
// @Success      200  {object}  dto.MeetingSummaryResponse
// @Failure      400  {object}  map[string]interface{}  "Neither text nor audio given"
// @Failure      413  {object}  map[string]interface{}  "Audio too large"
// @Failure      502  {object}  map[string]interface{}  "Transcription failed and no notes were given"
// @Router       /meeting-summary [post]
func (h *Summary) Summarize(c echo.Context) error {
	var req dto.MeetingSummaryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	ref, err := parseReferenceDate(req.ReferenceDate)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	in := aiuse.SummarizeInput{
		Notes:         req.MeetingText,
		LocalOnly:     req.LocalOnly,
		ReferenceDate: ref,
	}
	if isMultipart(c) {
		audio, name, err := h.readAudio(c)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		in.Audio, in.AudioName = audio, name
	}

	out, err := h.svc.Summarize(c.Request().Context(), in)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingSummaryResponse(out))
}

// SummarizeLocal runs only the local pipeline
// @Summary      Summarize meeting notes locally
// @Description  Runs the deterministic local summarizer without contacting any remote provider
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LocalSummaryRequest  true  "Meeting notes"
// @Success      200      {object}  dto.MeetingSummaryResponse
// @Failure      400      {object}  map[string]interface{}  "Missing meeting_text"
// @Router       /meeting-summary/local [post]
func (h *Summary) SummarizeLocal(c echo.Context) error {
	var req dto.LocalSummaryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	ref, err := parseReferenceDate(req.ReferenceDate)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.svc.Summarize(c.Request().Context(), aiuse.SummarizeInput{
		Notes:         req.MeetingText,
		LocalOnly:     true,
		ReferenceDate: ref,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingSummaryResponse(out))
}

// Render renders a structured summary as text
// @Summary      Render a summary
// @Description  Renders a structured summary in the fixed plain-text layout
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Param        request  body      entities.Summary  true  "Structured summary"
// @Success      200      {object}  dto.RenderResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Router       /meeting-summary/render [post]
func (h *Summary) Render(c echo.Context) error {
	var sum entities.Summary
	if err := c.Bind(&sum); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	return HandleSuccess(h.logger, c, presenter.ToRenderResponse(h.svc.Render(sum)))
}

// readAudio returns the audio_file part, if any.
func (h *Summary) readAudio(c echo.Context) ([]byte, string, error) {
	fh, err := c.FormFile("audio_file")
	if stdErrors.Is(err, http.ErrMissingFile) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", errors.ErrInvalidPayload()
	}
	if fh.Size > h.maxAudioBytes {
		return nil, "", errors.ErrPayloadTooLarge(h.maxAudioBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", errors.ErrInternal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxAudioBytes+1))
	if err != nil {
		return nil, "", errors.ErrInternal(err)
	}
	if int64(len(data)) > h.maxAudioBytes {
		return nil, "", errors.ErrPayloadTooLarge(h.maxAudioBytes)
	}
	return data, fh.Filename, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func parseReferenceDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(referenceDateLayout, value)
	if err != nil {
		return time.Time{}, errors.ErrInvalidArgument("reference_date must be YYYY-MM-DD")
	}
	return t, nil
}
