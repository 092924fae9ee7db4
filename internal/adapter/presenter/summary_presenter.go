package presenter

import (
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto"
	aiuse "github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
)

// ToMeetingSummaryResponse converts a summarization result to its DTO
func ToMeetingSummaryResponse(out *aiuse.SummarizeOutput) *dto.MeetingSummaryResponse {
	if out == nil {
		return nil
	}

	return &dto.MeetingSummaryResponse{
		ID:                 out.ID,
		Summary:            out.Text,
		SummaryJSON:        out.Summary,
		Source:             out.Source,
		Mode:               out.Mode,
		Transcript:         out.Transcript,
		Language:           out.Language,
		Truncated:          out.Truncated,
		Cached:             out.Cached,
		SummaryError:       out.SummaryError,
		ErrorMessage:       out.ErrorMessage,
		TranscriptionError: out.TranscriptionError,
	}
}

// ToRenderResponse wraps rendered summary text.
func ToRenderResponse(text string) *dto.RenderResponse {
	return &dto.RenderResponse{Summary: text}
}
