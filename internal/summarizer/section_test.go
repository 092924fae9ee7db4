package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

const roadmapNotes = "Goal is to finalize the roadmap.\nScope is limited to Q1.\nDecision: we will ship feature X in Q1.\nAction: Minsu will prepare the spec by 3/10."

func sectionTexts(c Classification, sec entities.Section) []string {
	out := []string{}
	for _, s := range c.Sections[sec] {
		out = append(out, s.Text)
	}
	return out
}

func TestClassifyLabelsAndLeads(t *testing.T) {
	c := Default().Classify(Segment(roadmapNotes))

	assert.Equal(t, ModeSection, c.Mode)
	assert.Equal(t, []string{"Goal is to finalize the roadmap."}, sectionTexts(c, entities.SectionGoals))
	assert.Equal(t, []string{"Scope is limited to Q1."}, sectionTexts(c, entities.SectionScope))
	assert.Equal(t, []string{"we will ship feature X in Q1."}, sectionTexts(c, entities.SectionDecisions))
	assert.Equal(t, []string{"Minsu will prepare the spec by 3/10."}, sectionTexts(c, entities.SectionActionItems))
	assert.Empty(t, c.Sections[entities.SectionOther])
}

func TestClassifyDropsHeadingMarkers(t *testing.T) {
	in := "Kickoff notes.\nGoals are as follows.\nImprove onboarding.\nRisks are as follows.\nVendor delay."
	c := Default().Classify(Segment(in))

	assert.Equal(t, ModeSection, c.Mode)
	assert.Equal(t, []string{"Kickoff notes."}, sectionTexts(c, entities.SectionOther))
	assert.Equal(t, []string{"Improve onboarding."}, sectionTexts(c, entities.SectionGoals))
	assert.Equal(t, []string{"Vendor delay."}, sectionTexts(c, entities.SectionRisks))
	for _, s := range c.Content {
		assert.NotContains(t, s.Text, "as follows")
	}
}

func TestClassifyKorean(t *testing.T) {
	in := "목표는 신규 온보딩 개선입니다.\n결정 사항은 다음과 같습니다.\n다음 분기에 베타를 출시합니다."
	c := Default().Classify(Segment(in))

	assert.Equal(t, ModeSection, c.Mode)
	assert.Equal(t, []string{"목표는 신규 온보딩 개선입니다."}, sectionTexts(c, entities.SectionGoals))
	assert.Equal(t, []string{"다음 분기에 베타를 출시합니다."}, sectionTexts(c, entities.SectionDecisions))
	assert.Len(t, c.Content, 2)
}

func TestClassifyAlwaysHasAllSections(t *testing.T) {
	c := Default().Classify(Segment("hello there"))

	require.Len(t, c.Sections, 6)
	for _, sec := range append([]entities.Section{entities.SectionOther}, entities.NamedSections...) {
		assert.NotNil(t, c.Sections[sec], sec.String())
	}
	assert.Equal(t, ModeKeyword, c.Mode)

	empty := Default().Classify(Segment(""))
	assert.Equal(t, ModeEmpty, empty.Mode)
	assert.Len(t, empty.Sections, 6)
}

func TestClassifySingleSectionStaysKeywordMode(t *testing.T) {
	c := Default().Classify(Segment("Risks:\nVendor delay.\nBudget overrun."))

	assert.Equal(t, ModeKeyword, c.Mode)
	assert.Len(t, c.Sections[entities.SectionRisks], 2)
}

func TestMarkerPolicyOrder(t *testing.T) {
	assert.Equal(t, []string{"label", "heading", "lead"}, MarkerPolicy())
}
