package summarizer

import "strings"

// OmissionMarker joins the head and tail of truncated input.
const OmissionMarker = "...(omitted)..."

const (
	markerSeparator = "\n\n"
	headShare       = 0.7
)

// TruncateText bounds text to budget runes. Oversized text keeps its head
// and tail joined by OmissionMarker, which then occurs exactly once. The
// second result reports whether anything was cut.
func TruncateText(text string, budget int) (string, bool) {
	runes := []rune(text)
	if budget <= 0 || len(runes) <= budget {
		return text, false
	}

	runes = []rune(strings.ReplaceAll(text, OmissionMarker, ""))
	join := markerSeparator + OmissionMarker + markerSeparator
	avail := budget - len([]rune(join))
	if avail <= 0 {
		return string([]rune(OmissionMarker)[:min(budget, len([]rune(OmissionMarker)))]), true
	}
	if len(runes) <= budget {
		return string(runes), false
	}

	head := int(float64(avail) * headShare)
	tail := avail - head
	return string(runes[:head]) + join + string(runes[len(runes)-tail:]), true
}

// Truncate is TruncateText without the flag.
func Truncate(text string, budget int) string {
	out, _ := TruncateText(text, budget)
	return out
}
