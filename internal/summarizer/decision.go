package summarizer

import (
	"strings"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

const maxSectionDecisions = 6

// ExtractDecisions returns the sentences that state a decision, in order and
// without duplicates. With byPlacement set every sentence qualifies by
// position (it was filed under a decisions marker) and no keyword is needed.
// A limit of zero means no cap.
func (s *Summarizer) ExtractDecisions(sentences []entities.Sentence, byPlacement bool, limit int) []string {
	found := make([]string, 0, len(sentences))
	for _, sent := range sentences {
		if s.isDecision(sent.Text, byPlacement) {
			found = append(found, sent.Text)
		}
	}
	return dedupe(found, limit)
}

func (s *Summarizer) isDecision(text string, byPlacement bool) bool {
	text = strings.TrimSpace(text)
	if text == "" || s.isMarker(text) || s.isBoilerplate(text) {
		return false
	}
	if byPlacement {
		return true
	}
	return containsAnyTerm(strings.ToLower(text), s.lex.DecisionKeywords)
}

func (s *Summarizer) isBoilerplate(text string) bool {
	key := normalizeKey(text)
	for _, b := range s.lex.DecisionBoilerplate {
		if key == normalizeKey(b) {
			return true
		}
	}
	return false
}
