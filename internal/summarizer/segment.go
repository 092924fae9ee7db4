package summarizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

var (
	blankLineRe = regexp.MustCompile(`\n[ \t]*\n+`)
	bulletRe    = regexp.MustCompile(`^\s*(?:[-*•·▪◦]+|\d{1,2}[.)])\s+`)
)

// Segment splits text into sentences in document order. Blank lines separate
// chunks, every line ends a sentence, and inside a line `.`, `!` or `?`
// followed by whitespace ends one. Leading list bullets are dropped.
func Segment(text string) []entities.Sentence {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return []entities.Sentence{}
	}

	var out []entities.Sentence
	for _, chunk := range blankLineRe.Split(text, -1) {
		for _, line := range strings.Split(chunk, "\n") {
			line = bulletRe.ReplaceAllString(line, "")
			for _, sent := range splitSentences(line) {
				out = append(out, entities.Sentence{Index: len(out), Text: sent})
			}
		}
	}
	if out == nil {
		return []entities.Sentence{}
	}
	return out
}

func splitSentences(line string) []string {
	var out []string
	start := 0
	for i, r := range line {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		next := i + utf8.RuneLen(r)
		if next >= len(line) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(line[next:])
		if !unicode.IsSpace(nr) {
			continue
		}
		if s := collapseSpace(line[start:next]); s != "" {
			out = append(out, s)
		}
		start = next
	}
	if s := collapseSpace(line[start:]); s != "" {
		out = append(out, s)
	}
	return out
}
