package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/summarizer"
)

const roadmapNotes = "Goal is to finalize the roadmap.\nScope is limited to Q1.\nDecision: we will ship feature X in Q1.\nAction: Minsu will prepare the spec by 3/10."

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "summarize")
	assert.Contains(t, names, "render")
}

func TestSummarizeStdinText(t *testing.T) {
	out, err := execute(t, roadmapNotes, "summarize")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, entities.DefaultSummaryTitle))
	assert.Contains(t, out, "- Minsu | ")
	assert.Contains(t, out, "(due: 3/10)")
	assert.Contains(t, out, "- we will ship feature X in Q1.")
}

func TestSummarizeFileJSON(t *testing.T) {
	path := writeFile(t, "notes.txt", roadmapNotes)

	out, err := execute(t, "", "summarize", path, "--json")
	require.NoError(t, err)

	var sum entities.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	require.Len(t, sum.ActionItems, 1)
	assert.Equal(t, "Minsu", sum.ActionItems[0].Owner)
	assert.Equal(t, []string{"we will ship feature X in Q1."}, sum.Decisions)
}

func TestSummarizeReferenceDate(t *testing.T) {
	out, err := execute(t, "Please review the budget tomorrow.", "summarize", "-", "--json", "--reference-date", "2024-03-04")
	require.NoError(t, err)

	var sum entities.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	require.Len(t, sum.ActionItems, 1)
	assert.Equal(t, "3/5", sum.ActionItems[0].Due)
}

func TestSummarizeBudgetTruncates(t *testing.T) {
	notes := strings.Repeat("The deploy pipeline was slow this week. ", 20)

	out, err := execute(t, notes, "summarize", "--json", "--budget", "100")
	require.NoError(t, err)

	var sum entities.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 1, strings.Count(sum.OverallSummary, summarizer.OmissionMarker))
}

func TestSummarizeFlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad reference date", []string{"summarize", "--reference-date", "tomorrow"}},
		{"non-positive budget", []string{"summarize", "--budget", "0"}},
		{"missing lexicon", []string{"summarize", "--lexicon", "/nonexistent/lexicon.yaml"}},
		{"missing file", []string{"summarize", "/nonexistent/notes.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, roadmapNotes, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestSummarizeLexiconOverride(t *testing.T) {
	lexicon := writeFile(t, "lexicon.yaml", "title: Weekly Sync\n")

	out, err := execute(t, roadmapNotes, "summarize", "--lexicon", lexicon)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Weekly Sync"))
}

func TestRenderRoundTrip(t *testing.T) {
	summaryJSON, err := execute(t, roadmapNotes, "summarize", "--json")
	require.NoError(t, err)
	text, err := execute(t, roadmapNotes, "summarize")
	require.NoError(t, err)

	rendered, err := execute(t, summaryJSON, "render")
	require.NoError(t, err)
	assert.Equal(t, text, rendered)
}

func TestRenderRejectsInvalidJSON(t *testing.T) {
	_, err := execute(t, "{", "render")
	assert.Error(t, err)
}
