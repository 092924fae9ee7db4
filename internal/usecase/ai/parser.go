package ai

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// Parser turns remote summarizer output into a normalized Summary.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// remoteSummary accepts the JSON the prompt asks for. Action items tolerate
// "assignee" and "deadline" as aliases some models emit.
type remoteSummary struct {
	Title  string `json:"title"`
	Topics []struct {
		Title     string   `json:"title"`
		Bullets   []string `json:"bullets"`
		Decisions []string `json:"decisions"`
	} `json:"topics"`
	ActionItems []struct {
		Owner    string `json:"owner"`
		Assignee string `json:"assignee"`
		Task     string `json:"task"`
		Due      string `json:"due"`
		Deadline string `json:"deadline"`
	} `json:"action_items"`
	OverallSummary string   `json:"overall_summary"`
	Decisions      []string `json:"decisions"`
}

// ParseSummary parses a remote JSON answer. The result satisfies the same
// invariants as a locally built summary.
func (p *Parser) ParseSummary(raw string) (entities.Summary, error) {
	content := extractJSON(raw)
	if content == "" {
		return entities.Summary{}, fmt.Errorf("empty summary response")
	}

	var rs remoteSummary
	if err := json.Unmarshal([]byte(content), &rs); err != nil {
		return entities.Summary{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if strings.TrimSpace(rs.OverallSummary) == "" && len(rs.Topics) == 0 && len(rs.ActionItems) == 0 && len(rs.Decisions) == 0 {
		return entities.Summary{}, fmt.Errorf("summary response has no content")
	}

	sum := entities.NewSummary(strings.TrimSpace(rs.Title))
	sum.OverallSummary = strings.TrimSpace(rs.OverallSummary)
	sum.Decisions = cleanList(rs.Decisions)

	for _, t := range rs.Topics {
		title := strings.TrimSpace(t.Title)
		bullets := cleanList(t.Bullets)
		if title == "" && len(bullets) == 0 {
			continue
		}
		sum.Topics = append(sum.Topics, entities.Topic{
			Title:     title,
			Bullets:   bullets,
			Decisions: cleanList(t.Decisions),
			Kind:      entities.TopicKindDiscussion,
		})
	}

	// Fold topic decisions up when the model left the top-level list empty.
	if len(sum.Decisions) == 0 {
		var all []string
		for _, t := range sum.Topics {
			all = append(all, t.Decisions...)
		}
		sum.Decisions = cleanList(all)
	}

	for _, it := range rs.ActionItems {
		owner := firstNonEmpty(it.Owner, it.Assignee)
		due := firstNonEmpty(it.Due, it.Deadline)
		sum.ActionItems = append(sum.ActionItems, entities.ActionItem{
			Owner: owner,
			Task:  strings.TrimSpace(it.Task),
			Due:   due,
		})
	}

	sum.Normalize()
	return sum, nil
}

// DetectLanguageMix reports whether text mixes Korean and English and which
// one dominates, sampling the first 500 words.
func (p *Parser) DetectLanguageMix(text string) (isMixed bool, primaryLang string, ratio string) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return false, "unknown", ""
	}

	sampleSize := 500
	if len(words) > sampleSize {
		words = words[:sampleSize]
	}

	koWords, enWords := 0, 0
	for _, word := range words {
		if isKoreanWord(word) {
			koWords++
		} else if isEnglishWord(word) {
			enWords++
		}
	}

	total := koWords + enWords
	if total == 0 {
		return false, "unknown", ""
	}

	koRatio := float64(koWords) / float64(total)
	enRatio := float64(enWords) / float64(total)

	// Mixed if both languages > 20%
	if koRatio > 0.2 && enRatio > 0.2 {
		primaryLang = "ko"
		if enRatio > koRatio {
			primaryLang = "en"
		}
		return true, primaryLang, fmt.Sprintf("ko:%.0f%% en:%.0f%%", koRatio*100, enRatio*100)
	}

	if koRatio > enRatio {
		return false, "ko", fmt.Sprintf("ko:%.0f%%", koRatio*100)
	}
	return false, "en", fmt.Sprintf("en:%.0f%%", enRatio*100)
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
		return strings.TrimSpace(content)
	}

	// Models sometimes wrap the object in prose.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start > 0 && end > start {
		content = content[start : end+1]
	}
	return strings.TrimSpace(content)
}

func isKoreanWord(word string) bool {
	for _, r := range word {
		if unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

// isEnglishWord checks if a word looks like English (basic heuristic)
func isEnglishWord(word string) bool {
	word = strings.ToLower(strings.Trim(word, ".,!?;:'\"()"))
	if word == "" {
		return false
	}
	for _, char := range word {
		if (char < 'a' || char > 'z') && char != '\'' && char != '-' {
			return false
		}
	}
	return true
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
