package summarizer

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// Headings are the fixed labels used for topics and rendered report sections.
type Headings struct {
	KeyPoints      string `koanf:"key_points"`
	Decisions      string `koanf:"decisions"`
	ActionItems    string `koanf:"action_items"`
	Overall        string `koanf:"overall"`
	None           string `koanf:"none"`
	MainDiscussion string `koanf:"main_discussion"`
	Other          string `koanf:"other"`
	Goals          string `koanf:"goals"`
	Scope          string `koanf:"scope"`
	Risks          string `koanf:"risks"`
	DecisionsTopic string `koanf:"decisions_topic"`
	ActionsTopic   string `koanf:"actions_topic"`
}

// Lexicon holds every language-dependent table the pipeline consults.
// Porting the summarizer to another input language means replacing these
// tables; the control flow stays the same.
type Lexicon struct {
	Title       string `koanf:"title"`
	Unassigned  string `koanf:"unassigned"`
	Unspecified string `koanf:"unspecified"`

	GoalKeywords     []string `koanf:"goal_keywords"`
	ScopeKeywords    []string `koanf:"scope_keywords"`
	DecisionHeadings []string `koanf:"decision_headings"`
	ActionHeadings   []string `koanf:"action_headings"`
	RiskKeywords     []string `koanf:"risk_keywords"`

	// Section markers.
	MarkerClosings []string `koanf:"marker_closings"`
	LeadCopulas    []string `koanf:"lead_copulas"`
	LeadParticles  []string `koanf:"lead_particles"`
	LeadArticles   []string `koanf:"lead_articles"`

	// Decisions.
	DecisionKeywords    []string `koanf:"decision_keywords"`
	DecisionBoilerplate []string `koanf:"decision_boilerplate"`

	// Action items.
	ActionVerbs       []string       `koanf:"action_verbs"`
	ActionStems       []string       `koanf:"action_stems"`
	StemVerbSuffixes  []string       `koanf:"stem_verb_suffixes"`
	IntentMarkers     []string       `koanf:"intent_markers"`
	OwnerLabels       []string       `koanf:"owner_labels"`
	DueLabels         []string       `koanf:"due_labels"`
	TaskLabels        []string       `koanf:"task_labels"`
	OwnerModals       []string       `koanf:"owner_modals"`
	SubjectParticles  []string       `koanf:"subject_particles"`
	TopicParticles    []string       `koanf:"topic_particles"`
	HonorificSuffixes []string       `koanf:"honorific_suffixes"`
	NonOwners         []string       `koanf:"non_owners"`
	DueLeadWords      []string       `koanf:"due_lead_words"`
	DueTrailWords     []string       `koanf:"due_trail_words"`
	NextWeekWords     []string       `koanf:"next_week_words"`
	RelativeDays      map[string]int `koanf:"relative_days"`
	Weekdays          map[string]int `koanf:"weekdays"`
	PoliteEndings     []string       `koanf:"polite_endings"`
	TaskLeadWords     []string       `koanf:"task_lead_words"`

	// Keyword scoring.
	Stopwords     []string `koanf:"stopwords"`
	TokenSuffixes []string `koanf:"token_suffixes"`

	Headings Headings `koanf:"headings"`
}

// sectionKeywords returns the keyword list for a named section.
func (l Lexicon) sectionKeywords(s entities.Section) []string {
	switch s {
	case entities.SectionGoals:
		return l.GoalKeywords
	case entities.SectionScope:
		return l.ScopeKeywords
	case entities.SectionDecisions:
		return l.DecisionHeadings
	case entities.SectionActionItems:
		return l.ActionHeadings
	case entities.SectionRisks:
		return l.RiskKeywords
	}
	return nil
}

// sectionTitle returns the topic title used for a section in section mode.
func (l Lexicon) sectionTitle(s entities.Section) string {
	switch s {
	case entities.SectionGoals:
		return l.Headings.Goals
	case entities.SectionScope:
		return l.Headings.Scope
	case entities.SectionDecisions:
		return l.Headings.DecisionsTopic
	case entities.SectionActionItems:
		return l.Headings.ActionsTopic
	case entities.SectionRisks:
		return l.Headings.Risks
	}
	return l.Headings.Other
}

// Merge returns l with every non-empty field of o applied on top.
func (l Lexicon) Merge(o Lexicon) Lexicon {
	str := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	list := func(dst *[]string, v []string) {
		if len(v) > 0 {
			*dst = v
		}
	}
	table := func(dst *map[string]int, v map[string]int) {
		if len(v) > 0 {
			*dst = v
		}
	}

	str(&l.Title, o.Title)
	str(&l.Unassigned, o.Unassigned)
	str(&l.Unspecified, o.Unspecified)

	list(&l.GoalKeywords, o.GoalKeywords)
	list(&l.ScopeKeywords, o.ScopeKeywords)
	list(&l.DecisionHeadings, o.DecisionHeadings)
	list(&l.ActionHeadings, o.ActionHeadings)
	list(&l.RiskKeywords, o.RiskKeywords)
	list(&l.MarkerClosings, o.MarkerClosings)
	list(&l.LeadCopulas, o.LeadCopulas)
	list(&l.LeadParticles, o.LeadParticles)
	list(&l.LeadArticles, o.LeadArticles)
	list(&l.DecisionKeywords, o.DecisionKeywords)
	list(&l.DecisionBoilerplate, o.DecisionBoilerplate)
	list(&l.ActionVerbs, o.ActionVerbs)
	list(&l.ActionStems, o.ActionStems)
	list(&l.StemVerbSuffixes, o.StemVerbSuffixes)
	list(&l.IntentMarkers, o.IntentMarkers)
	list(&l.OwnerLabels, o.OwnerLabels)
	list(&l.DueLabels, o.DueLabels)
	list(&l.TaskLabels, o.TaskLabels)
	list(&l.OwnerModals, o.OwnerModals)
	list(&l.SubjectParticles, o.SubjectParticles)
	list(&l.TopicParticles, o.TopicParticles)
	list(&l.HonorificSuffixes, o.HonorificSuffixes)
	list(&l.NonOwners, o.NonOwners)
	list(&l.DueLeadWords, o.DueLeadWords)
	list(&l.DueTrailWords, o.DueTrailWords)
	list(&l.NextWeekWords, o.NextWeekWords)
	table(&l.RelativeDays, o.RelativeDays)
	table(&l.Weekdays, o.Weekdays)
	list(&l.PoliteEndings, o.PoliteEndings)
	list(&l.TaskLeadWords, o.TaskLeadWords)
	list(&l.Stopwords, o.Stopwords)
	list(&l.TokenSuffixes, o.TokenSuffixes)

	h := &l.Headings
	str(&h.KeyPoints, o.Headings.KeyPoints)
	str(&h.Decisions, o.Headings.Decisions)
	str(&h.ActionItems, o.Headings.ActionItems)
	str(&h.Overall, o.Headings.Overall)
	str(&h.None, o.Headings.None)
	str(&h.MainDiscussion, o.Headings.MainDiscussion)
	str(&h.Other, o.Headings.Other)
	str(&h.Goals, o.Headings.Goals)
	str(&h.Scope, o.Headings.Scope)
	str(&h.Risks, o.Headings.Risks)
	str(&h.DecisionsTopic, o.Headings.DecisionsTopic)
	str(&h.ActionsTopic, o.Headings.ActionsTopic)

	return l
}

// ParseLexicon reads a YAML lexicon document and merges it over the defaults.
// Lists present in the document replace the default list entirely.
func ParseLexicon(content []byte) (Lexicon, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return Lexicon{}, fmt.Errorf("parse lexicon: %w", err)
	}

	var override Lexicon
	if err := k.Unmarshal("", &override); err != nil {
		return Lexicon{}, fmt.Errorf("unmarshal lexicon: %w", err)
	}
	return DefaultLexicon().Merge(override), nil
}

// LoadLexiconFile reads a YAML lexicon override from disk.
func LoadLexiconFile(path string) (Lexicon, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("read lexicon file: %w", err)
	}
	return ParseLexicon(content)
}
