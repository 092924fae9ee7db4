package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

const deployNotes = `The deploy pipeline was slow this week.
Our deploy checklist is missing steps.
The deploy window overlaps with the release freeze.
Customers complained about the deploy delay.
The deploy dashboard shows failing builds.
Marketing budget stays flat.
Hiring plans were discussed briefly.`

func findTopic(sum entities.Summary, title string) (entities.Topic, bool) {
	for _, t := range sum.Topics {
		if t.Title == title {
			return t, true
		}
	}
	return entities.Topic{}, false
}

func TestBuildSectionMode(t *testing.T) {
	res := Default().Analyze(roadmapNotes)
	sum := res.Summary

	assert.Equal(t, ModeSection, res.Mode)
	assert.False(t, res.Truncated)

	decisions, ok := findTopic(sum, "Decisions")
	require.True(t, ok)
	assert.Contains(t, decisions.Bullets, "we will ship feature X in Q1.")
	assert.Equal(t, entities.TopicKindDecisions, decisions.Kind)

	require.Len(t, sum.ActionItems, 1)
	item := sum.ActionItems[0]
	assert.Equal(t, "Minsu", item.Owner)
	assert.Contains(t, item.Task, "prepare the spec")
	assert.Equal(t, "3/10", item.Due)

	assert.Equal(t, []string{"we will ship feature X in Q1."}, sum.Decisions)
	assert.Equal(t, "Goal is to finalize the roadmap. Scope is limited to Q1. we will ship feature X in Q1.", sum.OverallSummary)

	for _, topic := range sum.Topics {
		for _, b := range topic.Bullets {
			assert.NotEqual(t, "Decision: we will ship feature X in Q1.", b)
			assert.NotEqual(t, "Action: Minsu will prepare the spec by 3/10.", b)
		}
	}
}

func TestBuildSectionModeKorean(t *testing.T) {
	in := `목표는 신규 온보딩 개선입니다.
범위는 모바일 앱으로 한정합니다.
결정 사항은 다음과 같습니다.
다음 분기에 베타를 출시합니다.
할 일:
민수가 3월 10일까지 보고서를 작성하겠습니다.`
	res := Default().Analyze(in)

	assert.Equal(t, ModeSection, res.Mode)
	assert.Equal(t, []string{"다음 분기에 베타를 출시합니다."}, res.Summary.Decisions)
	require.Len(t, res.Summary.ActionItems, 1)
	assert.Equal(t, entities.ActionItem{Owner: "민수", Task: "보고서를 작성", Due: "3/10"}, res.Summary.ActionItems[0])
}

func TestBuildEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t\n"} {
		sum := BuildLocalSummary(in)

		assert.Equal(t, entities.DefaultSummaryTitle, sum.Title)
		assert.NotNil(t, sum.Topics)
		assert.Empty(t, sum.Topics)
		assert.NotNil(t, sum.ActionItems)
		assert.Empty(t, sum.ActionItems)
		assert.NotNil(t, sum.Decisions)
		assert.Equal(t, "", sum.OverallSummary)
	}
}

func TestBuildKeywordModeClustersRepeatedTerm(t *testing.T) {
	res := Default().Analyze(deployNotes)

	assert.Equal(t, ModeKeyword, res.Mode)
	require.NotEmpty(t, res.Summary.Topics)
	assert.Equal(t, "Main Discussion", res.Summary.Topics[0].Title)

	deploy, ok := findTopic(res.Summary, "deploy")
	require.True(t, ok)
	assert.Len(t, deploy.Bullets, 5)
	for _, b := range deploy.Bullets {
		assert.Contains(t, strings.ToLower(b), "deploy")
	}
	assert.NotEmpty(t, res.Summary.OverallSummary)
}

func TestBuildKeywordModeSplitsDecisionsAndActions(t *testing.T) {
	in := `We reviewed the onboarding metrics.
The onboarding funnel drops after signup.
We agreed to simplify the onboarding form.
Jisoo will draft the new onboarding copy by 5/2.`
	sum := BuildLocalSummary(in)

	assert.Equal(t, []string{"We agreed to simplify the onboarding form."}, sum.Decisions)
	require.Len(t, sum.ActionItems, 1)
	assert.Equal(t, "Jisoo", sum.ActionItems[0].Owner)
	assert.Equal(t, "5/2", sum.ActionItems[0].Due)

	main := sum.Topics[0]
	assert.NotContains(t, main.Bullets, "We agreed to simplify the onboarding form.")
	assert.NotContains(t, main.Bullets, "Jisoo will draft the new onboarding copy by 5/2.")

	_, hasDecisions := findTopic(sum, "Decisions")
	_, hasActions := findTopic(sum, "Action Items")
	assert.True(t, hasDecisions)
	assert.True(t, hasActions)
	assert.True(t, strings.HasSuffix(sum.OverallSummary, "We agreed to simplify the onboarding form."))
}

func TestBuildIsDeterministic(t *testing.T) {
	for _, in := range []string{roadmapNotes, deployNotes, ""} {
		assert.Equal(t, BuildLocalSummary(in), BuildLocalSummary(in))
	}
}

func TestBuildInvariants(t *testing.T) {
	var many strings.Builder
	for i := 0; i < 30; i++ {
		many.WriteString("Task: follow up item ")
		many.WriteString(strings.Repeat("x", i+1))
		many.WriteString("\n")
	}
	inputs := []string{
		roadmapNotes,
		deployNotes,
		many.String(),
		"Goals:\nA.\nScope:\nB.\nDecisions:\nC.\nAction items:\nD.\nRisks:\nE.\nMisc.",
		"??? ... !!!",
		"a",
	}

	for _, in := range inputs {
		sum := BuildLocalSummary(in)

		assert.LessOrEqual(t, len(sum.Topics), entities.MaxTopics)
		assert.LessOrEqual(t, len(sum.ActionItems), entities.MaxActionItems)
		assert.NotNil(t, sum.Topics)
		assert.NotNil(t, sum.ActionItems)
		assert.NotNil(t, sum.Decisions)

		seen := map[entities.ActionItem]bool{}
		for _, it := range sum.ActionItems {
			assert.False(t, seen[it], "duplicate item %+v", it)
			seen[it] = true
			assert.NotEmpty(t, it.Owner)
			assert.NotEmpty(t, it.Due)
			assert.LessOrEqual(t, len([]rune(it.Task)), entities.MaxTaskRunes)
		}
		for _, topic := range sum.Topics {
			assert.NotNil(t, topic.Bullets)
			assert.NotNil(t, topic.Decisions)
			assert.LessOrEqual(t, len(topic.Bullets), maxMainDiscussion)
		}
	}
}

func TestBuildTruncatesOversizedInput(t *testing.T) {
	in := strings.Repeat("Minsu will review the deploy plan. ", 2000)
	res := Default().Analyze(in)

	assert.True(t, res.Truncated)
	assert.True(t, strings.HasSuffix(res.Summary.OverallSummary, OmissionMarker))

	rendered := RenderSummaryText(res.Summary)
	assert.Equal(t, 1, strings.Count(rendered, OmissionMarker))
}

func TestBuildSectionTopicDecisionsStayWithinSummary(t *testing.T) {
	sum := Default().Build(roadmapNotes)

	goals, ok := findTopic(sum, "Goals")
	require.True(t, ok)
	assert.Empty(t, goals.Decisions)

	for _, topic := range sum.Topics {
		for _, d := range topic.Decisions {
			assert.Contains(t, sum.Decisions, d, "topic %q", topic.Title)
		}
	}
}

func TestBuildKeepsQuotedOmissionMarker(t *testing.T) {
	in := "The old invoice showed " + OmissionMarker + "-style gaps in the ledger.\nThe ledger totals matched the bank export."
	res := Default().Analyze(in)

	require.False(t, res.Truncated)
	found := false
	for _, topic := range res.Summary.Topics {
		for _, b := range topic.Bullets {
			if strings.Contains(b, OmissionMarker) {
				found = true
			}
		}
	}
	assert.True(t, found, "quoted marker sentence was dropped")
}
