package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	MeetingText   string `json:"meeting_text" validate:"required,notblank"`
	ReferenceDate string `json:"reference_date" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		in      request
		wantErr string
	}{
		{name: "valid", in: request{MeetingText: "notes", ReferenceDate: "2024-05-06"}},
		{name: "missing text", in: request{}, wantErr: "meeting_text failed required"},
		{name: "blank text", in: request{MeetingText: " \n\t"}, wantErr: "meeting_text failed notblank"},
		{name: "bad date", in: request{MeetingText: "notes", ReferenceDate: "05/06"}, wantErr: "reference_date failed datetime=2006-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
