package summarizer

import (
	"strings"
	"unicode/utf8"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

const (
	maxMarkerRunes = 60
	maxLabelRunes  = 30
)

// markerMatch is what a marker rule found in one sentence.
type markerMatch struct {
	section entities.Section
	// body is the content left once the marker is removed; empty for a
	// pure marker sentence.
	body string
}

// markerRule recognizes one form of section marker.
type markerRule struct {
	name  string
	match func(s *Summarizer, text string) (markerMatch, bool)
}

// markerRules are evaluated in order; the first match wins.
var markerRules = []markerRule{
	{name: "label", match: (*Summarizer).matchLabel},
	{name: "heading", match: (*Summarizer).matchHeading},
	{name: "lead", match: (*Summarizer).matchLead},
}

// MarkerPolicy returns the names of the marker rules in evaluation order.
func MarkerPolicy() []string {
	names := make([]string, len(markerRules))
	for i, r := range markerRules {
		names[i] = r.name
	}
	return names
}

// Classification is the section classifier's view of a document.
type Classification struct {
	// Sections always holds all six keys.
	Sections map[entities.Section][]entities.Sentence
	// Content is every non-marker sentence in document order, with label
	// prefixes removed.
	Content []entities.Sentence
	Mode    Mode
}

// Classify files every sentence under the most recent section marker.
func (s *Summarizer) Classify(sentences []entities.Sentence) Classification {
	c := Classification{
		Sections: map[entities.Section][]entities.Sentence{
			entities.SectionOther: {},
		},
		Content: []entities.Sentence{},
	}
	for _, sec := range entities.NamedSections {
		c.Sections[sec] = []entities.Sentence{}
	}

	active := entities.SectionOther
	for _, sent := range sentences {
		if m, ok := s.detectMarker(sent.Text); ok {
			active = m.section
			if m.body == "" {
				continue
			}
			sent = entities.Sentence{Index: sent.Index, Text: m.body}
		}
		c.Sections[active] = append(c.Sections[active], sent)
		c.Content = append(c.Content, sent)
	}

	named := 0
	for _, sec := range entities.NamedSections {
		if len(c.Sections[sec]) > 0 {
			named++
		}
	}
	switch {
	case len(c.Content) == 0:
		c.Mode = ModeEmpty
	case named >= 2:
		c.Mode = ModeSection
	default:
		c.Mode = ModeKeyword
	}
	return c
}

func (s *Summarizer) detectMarker(text string) (markerMatch, bool) {
	for _, r := range markerRules {
		if m, ok := r.match(s, text); ok {
			return m, true
		}
	}
	return markerMatch{}, false
}

// isMarker reports whether text is a pure marker sentence.
func (s *Summarizer) isMarker(text string) bool {
	m, ok := s.detectMarker(text)
	return ok && m.body == ""
}

// sectionOf returns the first section, in precedence order, whose keywords
// occur in text.
func (s *Summarizer) sectionOf(text string) (entities.Section, bool) {
	lower := strings.ToLower(text)
	for _, sec := range entities.NamedSections {
		if containsAnyTerm(lower, s.lex.sectionKeywords(sec)) {
			return sec, true
		}
	}
	return entities.SectionOther, false
}

// matchLabel handles "Decisions: we ship in Q1" and bare "Decisions:".
func (s *Summarizer) matchLabel(text string) (markerMatch, bool) {
	i := strings.IndexAny(text, ":：")
	if i <= 0 {
		return markerMatch{}, false
	}
	label := trimPunct(text[:i])
	if label == "" || utf8.RuneCountInString(label) > maxLabelRunes {
		return markerMatch{}, false
	}
	sec, ok := s.sectionOf(label)
	if !ok {
		return markerMatch{}, false
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	return markerMatch{section: sec, body: strings.TrimSpace(text[i+size:])}, true
}

// matchHeading handles short announcements such as "Decisions are as
// follows." and bare headings like "## Risks".
func (s *Summarizer) matchHeading(text string) (markerMatch, bool) {
	if utf8.RuneCountInString(text) > maxMarkerRunes {
		return markerMatch{}, false
	}
	sec, ok := s.sectionOf(text)
	if !ok {
		return markerMatch{}, false
	}

	bare := normalizeKey(text)
	for _, kw := range s.lex.sectionKeywords(sec) {
		if bare == normalizeKey(kw) {
			return markerMatch{section: sec}, true
		}
	}

	tail := strings.ToLower(trimPunct(text))
	for _, closing := range s.lex.MarkerClosings {
		if strings.HasSuffix(tail, strings.ToLower(closing)) {
			return markerMatch{section: sec}, true
		}
	}
	return markerMatch{}, false
}

// matchLead handles content sentences that open with a section keyword,
// such as "Goal is to ship v2." or "목표는 로드맵 확정입니다." The sentence
// is kept as content of that section.
func (s *Summarizer) matchLead(text string) (markerMatch, bool) {
	lower := strings.ToLower(text)
	for _, art := range s.lex.LeadArticles {
		if p := strings.ToLower(art) + " "; strings.HasPrefix(lower, p) {
			lower = lower[len(p):]
			break
		}
	}

	for _, sec := range entities.NamedSections {
		for _, kw := range s.lex.sectionKeywords(sec) {
			kw = strings.ToLower(kw)
			if !strings.HasPrefix(lower, kw) {
				continue
			}
			rest := lower[len(kw):]
			if isASCII(kw) {
				rest = strings.TrimPrefix(rest, "s")
				for _, cop := range s.lex.LeadCopulas {
					if strings.HasPrefix(rest, " "+strings.ToLower(cop)+" ") {
						return markerMatch{section: sec, body: text}, true
					}
				}
				continue
			}
			for _, p := range s.lex.LeadParticles {
				if strings.HasPrefix(rest, p+" ") {
					return markerMatch{section: sec, body: text}, true
				}
			}
		}
	}
	return markerMatch{}, false
}
