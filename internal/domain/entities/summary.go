package entities

// Sentinels used instead of empty owner / due values.
const (
	OwnerUnassigned = "unassigned"
	DueUnspecified  = "unspecified"

	DefaultSummaryTitle = "Meeting Summary"
)

// Limits applied to every Summary regardless of how it was produced.
const (
	MaxTopics      = 6
	MaxActionItems = 10
	MaxDecisions   = 10
	MaxTaskRunes   = 120
)

// TopicKind tells the renderer which report section a topic belongs to.
type TopicKind string

const (
	TopicKindDiscussion  TopicKind = "discussion"
	TopicKindDecisions   TopicKind = "decisions"
	TopicKindActionItems TopicKind = "action_items"
)

// ActionItem is an extracted obligation.
type ActionItem struct {
	Owner string `json:"owner"`
	Task  string `json:"task"`
	Due   string `json:"due"`
}

// Topic groups bullets under a title. Bullets and Decisions are never nil.
type Topic struct {
	Title     string    `json:"title"`
	Bullets   []string  `json:"bullets"`
	Decisions []string  `json:"decisions"`
	Kind      TopicKind `json:"kind,omitempty"`
}

// Summary is the structured result of summarizing one meeting note.
type Summary struct {
	Title          string       `json:"title"`
	Topics         []Topic      `json:"topics"`
	ActionItems    []ActionItem `json:"action_items"`
	OverallSummary string       `json:"overall_summary"`
	Decisions      []string     `json:"decisions"`
}

// NewSummary returns an empty summary with every list allocated.
func NewSummary(title string) Summary {
	if title == "" {
		title = DefaultSummaryTitle
	}
	return Summary{
		Title:       title,
		Topics:      []Topic{},
		ActionItems: []ActionItem{},
		Decisions:   []string{},
	}
}

// Normalize enforces the list invariants in place: nil lists become empty,
// caps are applied and action items are de-duplicated by triple.
func (s *Summary) Normalize() {
	if s.Title == "" {
		s.Title = DefaultSummaryTitle
	}
	if s.Topics == nil {
		s.Topics = []Topic{}
	}
	if len(s.Topics) > MaxTopics {
		s.Topics = s.Topics[:MaxTopics]
	}
	for i := range s.Topics {
		if s.Topics[i].Bullets == nil {
			s.Topics[i].Bullets = []string{}
		}
		if s.Topics[i].Decisions == nil {
			s.Topics[i].Decisions = []string{}
		}
		if s.Topics[i].Kind == "" {
			s.Topics[i].Kind = TopicKindDiscussion
		}
	}
	if s.Decisions == nil {
		s.Decisions = []string{}
	}
	if len(s.Decisions) > MaxDecisions {
		s.Decisions = s.Decisions[:MaxDecisions]
	}

	items := make([]ActionItem, 0, len(s.ActionItems))
	seen := make(map[ActionItem]struct{}, len(s.ActionItems))
	for _, it := range s.ActionItems {
		if it.Owner == "" {
			it.Owner = OwnerUnassigned
		}
		if it.Due == "" {
			it.Due = DueUnspecified
		}
		if r := []rune(it.Task); len(r) > MaxTaskRunes {
			it.Task = string(r[:MaxTaskRunes])
		}
		if it.Task == "" {
			continue
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		items = append(items, it)
		if len(items) == MaxActionItems {
			break
		}
	}
	s.ActionItems = items
}
