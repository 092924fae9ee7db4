package dto

import (
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// MeetingSummaryRequest is the form or JSON body of POST /v1/meeting-summary.
// The optional audio_file part is read separately from the multipart form.
type MeetingSummaryRequest struct {
	MeetingText   string `json:"meeting_text" form:"meeting_text"`
	LocalOnly     bool   `json:"local_only" form:"local_only"`
	ReferenceDate string `json:"reference_date" form:"reference_date" validate:"omitempty,datetime=2006-01-02"`
}

// LocalSummaryRequest is the body of POST /v1/meeting-summary/local.
type LocalSummaryRequest struct {
	MeetingText   string `json:"meeting_text" validate:"required,notblank"`
	ReferenceDate string `json:"reference_date" validate:"omitempty,datetime=2006-01-02"`
}

// MeetingSummaryResponse represents the API response for meeting summary
type MeetingSummaryResponse struct {
	ID                 string           `json:"id"`
	Summary            string           `json:"summary"`
	SummaryJSON        entities.Summary `json:"summary_json"`
	Source             string           `json:"source"`
	Mode               string           `json:"mode"`
	Transcript         string           `json:"transcript"`
	Language           string           `json:"language,omitempty"`
	Truncated          bool             `json:"truncated"`
	Cached             bool             `json:"cached"`
	SummaryError       string           `json:"summary_error,omitempty"`
	ErrorMessage       string           `json:"error_message,omitempty"`
	TranscriptionError string           `json:"transcription_error,omitempty"`
}

// RenderResponse carries a rendered summary.
type RenderResponse struct {
	Summary string `json:"summary"`
}
