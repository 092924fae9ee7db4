package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

func TestParseSummaryFenced(t *testing.T) {
	sum, err := NewParser().ParseSummary(remoteJSON)
	require.NoError(t, err)

	assert.Equal(t, "Roadmap sync", sum.Title)
	require.Len(t, sum.Topics, 1)
	assert.Equal(t, entities.TopicKindDiscussion, sum.Topics[0].Kind)
	assert.Equal(t, []entities.ActionItem{{Owner: "Minsu", Task: "Prepare the spec", Due: "3/10"}}, sum.ActionItems)
}

func TestParseSummaryProseWrapped(t *testing.T) {
	raw := `Here is the summary: {"overall_summary":"Short sync.","action_items":[{"assignee":"Jisoo","task":"Book the room","deadline":"tomorrow"},{"task":"Share notes"}]} Hope this helps.`
	sum, err := NewParser().ParseSummary(raw)
	require.NoError(t, err)

	assert.Equal(t, entities.DefaultSummaryTitle, sum.Title)
	assert.Equal(t, "Short sync.", sum.OverallSummary)
	assert.Equal(t, []entities.ActionItem{
		{Owner: "Jisoo", Task: "Book the room", Due: "tomorrow"},
		{Owner: entities.OwnerUnassigned, Task: "Share notes", Due: entities.DueUnspecified},
	}, sum.ActionItems)
	assert.NotNil(t, sum.Topics)
	assert.NotNil(t, sum.Decisions)
}

func TestParseSummaryFoldsTopicDecisions(t *testing.T) {
	raw := `{"topics":[{"title":"A","bullets":["x"],"decisions":["d1"]},{"title":"B","bullets":["y"],"decisions":["d1","d2"]}]}`
	sum, err := NewParser().ParseSummary(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2"}, sum.Decisions)
}

func TestParseSummaryAppliesCaps(t *testing.T) {
	var topics, items []string
	for i := 0; i < 9; i++ {
		topics = append(topics, fmt.Sprintf(`{"title":"t%d","bullets":["b"]}`, i))
	}
	for i := 0; i < 14; i++ {
		items = append(items, fmt.Sprintf(`{"owner":"o","task":"task %d %s"}`, i, strings.Repeat("x", 200)))
	}
	raw := `{"topics":[` + strings.Join(topics, ",") + `],"action_items":[` + strings.Join(items, ",") + `]}`

	sum, err := NewParser().ParseSummary(raw)
	require.NoError(t, err)
	assert.Len(t, sum.Topics, entities.MaxTopics)
	assert.Len(t, sum.ActionItems, entities.MaxActionItems)
	for _, it := range sum.ActionItems {
		assert.LessOrEqual(t, len([]rune(it.Task)), entities.MaxTaskRunes)
	}
}

func TestParseSummaryRejects(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"title":"only a title"}`, "```json\n[1,2]\n```"} {
		_, err := NewParser().ParseSummary(raw)
		assert.Error(t, err, raw)
	}
}

func TestDetectLanguageMix(t *testing.T) {
	p := NewParser()

	mixed, lang, _ := p.DetectLanguageMix("민수가 deploy 체크리스트를 review 합니다")
	assert.True(t, mixed)
	assert.Equal(t, "ko", lang)

	mixed, lang, ratio := p.DetectLanguageMix("Alex will update the roadmap")
	assert.False(t, mixed)
	assert.Equal(t, "en", lang)
	assert.Equal(t, "en:100%", ratio)

	_, lang, _ = p.DetectLanguageMix("   ")
	assert.Equal(t, "unknown", lang)
}
