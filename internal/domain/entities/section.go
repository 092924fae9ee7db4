package entities

// Section is the part of a meeting note a sentence was filed under.
type Section int

const (
	SectionOther Section = iota
	SectionGoals
	SectionScope
	SectionDecisions
	SectionActionItems
	SectionRisks
)

// NamedSections lists the recognizable sections in detection precedence.
var NamedSections = []Section{
	SectionGoals,
	SectionScope,
	SectionDecisions,
	SectionActionItems,
	SectionRisks,
}

func (s Section) String() string {
	switch s {
	case SectionGoals:
		return "goals"
	case SectionScope:
		return "scope"
	case SectionDecisions:
		return "decisions"
	case SectionActionItems:
		return "action_items"
	case SectionRisks:
		return "risks"
	default:
		return "other"
	}
}

// Sentence is one segment of the input with its document position.
type Sentence struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}
