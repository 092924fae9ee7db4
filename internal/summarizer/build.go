package summarizer

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

const (
	maxSectionBullets  = 8
	maxMainDiscussion  = 10
	maxOverallPoints   = 5
	minTopicsWithOther = 3
)

// Result is a summary together with how it was produced.
type Result struct {
	Summary   entities.Summary
	Mode      Mode
	Truncated bool
}

// Build summarizes text. It never fails: empty input gives an empty summary.
func (s *Summarizer) Build(text string) entities.Summary {
	return s.Analyze(text).Summary
}

// Analyze summarizes text and reports the path taken.
func (s *Summarizer) Analyze(text string) Result {
	input, truncated := TruncateText(text, s.budget)

	sentences := make([]entities.Sentence, 0)
	for _, sent := range Segment(input) {
		if truncated && strings.Contains(sent.Text, OmissionMarker) {
			continue
		}
		sentences = append(sentences, sent)
	}

	cls := s.Classify(sentences)
	var sum entities.Summary
	switch cls.Mode {
	case ModeSection:
		sum = s.sectionSummary(cls)
	case ModeKeyword:
		sum = s.keywordSummary(cls.Content)
	default:
		sum = entities.NewSummary(s.lex.Title)
	}

	if truncated {
		sum.OverallSummary = strings.TrimSpace(sum.OverallSummary + " " + OmissionMarker)
	}
	sum.Normalize()
	return Result{Summary: sum, Mode: cls.Mode, Truncated: truncated}
}

func (s *Summarizer) sectionSummary(cls Classification) entities.Summary {
	sum := entities.NewSummary(s.lex.Title)
	sec := cls.Sections

	decisions := s.ExtractDecisions(sec[entities.SectionDecisions], true, maxSectionDecisions)
	if len(decisions) == 0 {
		decisions = s.ExtractDecisions(cls.Content, false, maxSectionDecisions)
	}

	actionSource := sec[entities.SectionActionItems]
	if len(actionSource) == 0 {
		actionSource = cls.Content
	}
	items := s.ExtractActionItems(actionSource)

	for _, name := range entities.NamedSections {
		sentences := sec[name]
		var topic entities.Topic
		switch name {
		case entities.SectionDecisions:
			if len(decisions) == 0 {
				continue
			}
			topic = entities.Topic{
				Title:     s.lex.sectionTitle(name),
				Bullets:   append([]string{}, decisions...),
				Decisions: append([]string{}, decisions...),
				Kind:      entities.TopicKindDecisions,
			}
		case entities.SectionActionItems:
			bullets := s.actionBullets(items)
			if len(bullets) == 0 {
				bullets = sentenceTexts(sentences, maxSectionBullets)
			}
			if len(bullets) == 0 {
				continue
			}
			topic = entities.Topic{
				Title:     s.lex.sectionTitle(name),
				Bullets:   bullets,
				Decisions: []string{},
				Kind:      entities.TopicKindActionItems,
			}
		default:
			if len(sentences) == 0 {
				continue
			}
			topic = entities.Topic{
				Title:     s.lex.sectionTitle(name),
				Bullets:   sentenceTexts(sentences, maxSectionBullets),
				Decisions: decisionsAmong(sentences, decisions),
				Kind:      entities.TopicKindDiscussion,
			}
		}
		sum.Topics = append(sum.Topics, topic)
	}

	if other := sec[entities.SectionOther]; len(other) > 0 && len(sum.Topics) < entities.MaxTopics {
		sum.Topics = append(sum.Topics, entities.Topic{
			Title:     s.lex.Headings.Other,
			Bullets:   sentenceTexts(other, maxSectionBullets),
			Decisions: decisionsAmong(other, decisions),
			Kind:      entities.TopicKindDiscussion,
		})
	}

	var overall []string
	if g := sec[entities.SectionGoals]; len(g) > 0 {
		overall = append(overall, g[0].Text)
	}
	if sc := sec[entities.SectionScope]; len(sc) > 0 {
		overall = append(overall, sc[0].Text)
	}
	if len(decisions) > 0 {
		overall = append(overall, decisions[0])
	}
	if len(overall) == 0 {
		for _, name := range append(append([]entities.Section{}, entities.NamedSections...), entities.SectionOther) {
			if list := sec[name]; len(list) > 0 {
				overall = append(overall, list[0].Text)
				break
			}
		}
	}

	sum.Decisions = decisions
	sum.ActionItems = items
	sum.OverallSummary = strings.Join(dedupe(overall, 0), " ")
	return sum
}

func (s *Summarizer) keywordSummary(content []entities.Sentence) entities.Summary {
	sum := entities.NewSummary(s.lex.Title)

	decisions := s.ExtractDecisions(content, false, entities.MaxDecisions)
	actions := s.extractActions(content)
	items := make([]entities.ActionItem, len(actions))
	for i, a := range actions {
		items[i] = a.ActionItem
	}

	excluded := make(map[int]struct{})
	decisionSet := make(map[string]struct{}, len(decisions))
	for _, d := range decisions {
		decisionSet[d] = struct{}{}
	}
	for _, a := range actions {
		excluded[a.index] = struct{}{}
	}

	remaining := make([]entities.Sentence, 0, len(content))
	for _, sent := range content {
		if _, ok := excluded[sent.Index]; ok {
			continue
		}
		if _, ok := decisionSet[sent.Text]; ok {
			continue
		}
		if containsTask(sent.Text, items) {
			continue
		}
		remaining = append(remaining, sent)
	}

	terms := s.TopTerms(content)
	points := rankKeyPoints(remaining, terms)
	clusters, other := clusterKeyPoints(points, terms)

	sum.Topics = append(sum.Topics, entities.Topic{
		Title:     s.lex.Headings.MainDiscussion,
		Bullets:   texts(points, maxMainDiscussion),
		Decisions: []string{},
		Kind:      entities.TopicKindDiscussion,
	})

	for i, c := range clusters {
		if i == maxClusters {
			break
		}
		sum.Topics = append(sum.Topics, entities.Topic{
			Title:     c.term,
			Bullets:   texts(c.members, maxClusterBullets),
			Decisions: decisionsWithTerm(decisions, c.term),
			Kind:      entities.TopicKindDiscussion,
		})
	}

	if len(decisions) > 0 {
		sum.Topics = append(sum.Topics, entities.Topic{
			Title:     s.lex.Headings.DecisionsTopic,
			Bullets:   append([]string{}, decisions...),
			Decisions: append([]string{}, decisions...),
			Kind:      entities.TopicKindDecisions,
		})
	}
	if len(items) > 0 {
		sum.Topics = append(sum.Topics, entities.Topic{
			Title:     s.lex.Headings.ActionsTopic,
			Bullets:   s.actionBullets(items),
			Decisions: []string{},
			Kind:      entities.TopicKindActionItems,
		})
	}
	if other != nil && len(sum.Topics) < minTopicsWithOther {
		sum.Topics = append(sum.Topics, entities.Topic{
			Title:     s.lex.Headings.Other,
			Bullets:   texts(other.members, maxClusterBullets),
			Decisions: []string{},
			Kind:      entities.TopicKindDiscussion,
		})
	}

	overall := texts(points, maxOverallPoints)
	if len(decisions) > 0 {
		overall = dedupe(append(overall, decisions[0]), 0)
	}

	sum.Decisions = decisions
	sum.ActionItems = items
	sum.OverallSummary = strings.Join(overall, " ")
	return sum
}

// actionBullets renders items in the "owner - task (~ due)" topic form.
func (s *Summarizer) actionBullets(items []entities.ActionItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, fmt.Sprintf("%s - %s (~ %s)", it.Owner, it.Task, it.Due))
	}
	return out
}

func sentenceTexts(list []entities.Sentence, limit int) []string {
	out := make([]string, 0, len(list))
	for _, sent := range list {
		out = append(out, sent.Text)
	}
	return dedupe(out, limit)
}

func containsTask(text string, items []entities.ActionItem) bool {
	for _, it := range items {
		if it.Task != "" && strings.Contains(text, it.Task) {
			return true
		}
	}
	return false
}

// decisionsAmong keeps the summary decisions that were stated in sentences,
// so a topic never lists a decision the summary does not.
func decisionsAmong(sentences []entities.Sentence, decisions []string) []string {
	out := make([]string, 0)
	for _, d := range decisions {
		for _, sent := range sentences {
			if sent.Text == d {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

func decisionsWithTerm(decisions []string, term string) []string {
	out := make([]string, 0)
	for _, d := range decisions {
		if termIn(d, strings.ToLower(d), term) {
			out = append(out, d)
		}
	}
	return out
}
