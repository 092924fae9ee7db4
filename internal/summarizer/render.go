package summarizer

import (
	"strings"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// Render formats a summary as a plain-text report with four fixed sections.
// Every empty list renders as the "(none)" placeholder.
func (s *Summarizer) Render(sum entities.Summary) string {
	h := s.lex.Headings
	var b strings.Builder

	title := sum.Title
	if title == "" {
		title = s.lex.Title
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	b.WriteString(h.KeyPoints + "\n")
	wrote := false
	for _, t := range sum.Topics {
		if t.Kind == entities.TopicKindDecisions || t.Kind == entities.TopicKindActionItems {
			continue
		}
		wrote = true
		b.WriteString("- " + t.Title + "\n")
		if len(t.Bullets) == 0 {
			b.WriteString("  - " + h.None + "\n")
		}
		for _, bullet := range t.Bullets {
			b.WriteString("  - " + bullet + "\n")
		}
	}
	if !wrote {
		b.WriteString("- " + h.None + "\n")
	}

	b.WriteString("\n" + h.Decisions + "\n")
	writeList(&b, sum.Decisions, h.None)

	b.WriteString("\n" + h.ActionItems + "\n")
	items := make([]string, 0, len(sum.ActionItems))
	for _, it := range sum.ActionItems {
		items = append(items, it.Owner+" | "+it.Task+" (due: "+it.Due+")")
	}
	writeList(&b, items, h.None)

	b.WriteString("\n" + h.Overall + "\n")
	var overall []string
	if o := strings.TrimSpace(sum.OverallSummary); o != "" {
		overall = []string{o}
	}
	writeList(&b, overall, h.None)

	return strings.TrimRight(b.String(), "\n")
}

func writeList(b *strings.Builder, items []string, none string) {
	if len(items) == 0 {
		b.WriteString("- " + none + "\n")
		return
	}
	for _, it := range items {
		b.WriteString("- " + it + "\n")
	}
}
