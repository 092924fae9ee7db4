package summarizer

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// candidate accumulates what the extraction steps found in one sentence.
type candidate struct {
	index int
	text  string
	// work is the text the task is cut from; owner and due spans are
	// removed from it as they are found.
	work string

	owner, due, task string
	explicit         bool
	naturalOwner     bool
	deadline         bool
}

// extractStep is one stage of action-item extraction.
type extractStep struct {
	name  string
	apply func(s *Summarizer, c *candidate)
}

// actionSteps run in order for every sentence.
var actionSteps = []extractStep{
	{name: "explicit_fields", apply: (*Summarizer).explicitFields},
	{name: "natural_owner", apply: (*Summarizer).naturalOwner},
	{name: "due_pattern", apply: (*Summarizer).duePattern},
}

// ActionPolicy returns the names of the extraction steps in order.
func ActionPolicy() []string {
	names := make([]string, len(actionSteps))
	for i, st := range actionSteps {
		names[i] = st.name
	}
	return names
}

// extractedItem remembers which sentence an item came from.
type extractedItem struct {
	entities.ActionItem
	index int
}

// ExtractActionItems finds owner/task/due triples, de-duplicated and capped.
func (s *Summarizer) ExtractActionItems(sentences []entities.Sentence) []entities.ActionItem {
	found := s.extractActions(sentences)
	items := make([]entities.ActionItem, len(found))
	for i, f := range found {
		items[i] = f.ActionItem
	}
	return items
}

func (s *Summarizer) extractActions(sentences []entities.Sentence) []extractedItem {
	out := make([]extractedItem, 0)
	seen := make(map[entities.ActionItem]struct{})
	for _, sent := range sentences {
		item, ok := s.parseAction(sent)
		if !ok {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, extractedItem{ActionItem: item, index: sent.Index})
		if len(out) == entities.MaxActionItems {
			break
		}
	}
	return out
}

func (s *Summarizer) parseAction(sent entities.Sentence) (entities.ActionItem, bool) {
	c := &candidate{index: sent.Index, text: sent.Text, work: sent.Text}
	for _, st := range actionSteps {
		st.apply(s, c)
	}

	if !c.explicit && !c.naturalOwner && !c.deadline && !s.hasActionVerb(c.text) {
		return entities.ActionItem{}, false
	}

	task := c.task
	if task == "" {
		task = c.work
	}
	task = s.cleanTask(task)
	if task == "" {
		return entities.ActionItem{}, false
	}

	item := entities.ActionItem{Owner: c.owner, Task: task, Due: c.due}
	if item.Owner == "" {
		item.Owner = s.lex.Unassigned
	}
	if item.Due == "" {
		item.Due = s.lex.Unspecified
	}
	return item, true
}

// explicitFields reads "owner:", "due:" and "task:" labels. A label's value
// runs until the next label or the end of the sentence.
func (s *Summarizer) explicitFields(c *candidate) {
	locs := s.labelRe.FindAllStringSubmatchIndex(c.text, -1)
	if len(locs) == 0 {
		return
	}
	c.explicit = true
	c.work = strings.TrimSpace(trimSeparators(c.text[:locs[0][2]]))

	for i, loc := range locs {
		label := strings.ToLower(collapseSpace(c.text[loc[2]:loc[3]]))
		end := len(c.text)
		if i+1 < len(locs) {
			end = locs[i+1][2]
		}
		value := strings.TrimSpace(trimSeparators(c.text[loc[1]:end]))
		if value == "" {
			continue
		}
		switch {
		case inFold(label, s.lex.OwnerLabels):
			c.owner = collapseSpace(trimPunct(value))
		case inFold(label, s.lex.DueLabels):
			c.due = s.NormalizeDue(value)
			c.deadline = true
		case inFold(label, s.lex.TaskLabels):
			c.task = value
		}
	}
}

// naturalOwner reads "Minsu will ..." and "민수가 ..." sentence openings.
func (s *Summarizer) naturalOwner(c *candidate) {
	if c.owner != "" {
		return
	}
	for _, re := range []*regexp.Regexp{s.ownerEnRe, s.ownerKoRe} {
		loc := re.FindStringSubmatchIndex(c.work)
		if loc == nil {
			continue
		}
		name := c.work[loc[2]:loc[3]]
		if !s.plausibleOwner(name) {
			continue
		}
		c.owner = name
		c.naturalOwner = true
		c.work = c.work[loc[1]:]
		return
	}
}

func (s *Summarizer) plausibleOwner(name string) bool {
	lower := strings.ToLower(name)
	if _, ok := s.nonOwners[lower]; ok {
		return false
	}
	if _, ok := s.stopwords[lower]; ok {
		return false
	}
	if _, ok := s.sectionOf(name); ok {
		return false
	}
	return !containsAnyTerm(lower, s.lex.DecisionKeywords)
}

// duePattern finds a date in the working text and cuts it out.
func (s *Summarizer) duePattern(c *candidate) {
	if c.due != "" {
		return
	}
	m, ok := s.findDue(c.work)
	if !ok {
		return
	}
	c.due = m.value
	c.deadline = c.deadline || m.deadline
	c.work = c.work[:m.start] + " " + c.work[m.end:]
}

// hasActionVerb reports whether text uses an action verb as an action:
// in imperative position, after an intent marker ("will", "to", "please"),
// or, for Korean stems, followed by a verb ending.
func (s *Summarizer) hasActionVerb(text string) bool {
	lower := strings.ToLower(text)
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return !(isASCIIWord(r) || r == '-')
	})
	intent := toSet(s.lex.IntentMarkers)

	for _, verb := range s.lex.ActionVerbs {
		words := strings.Fields(strings.ToLower(verb))
		for i := 0; i+len(words) <= len(tokens); i++ {
			if !equalWords(tokens[i:i+len(words)], words) {
				continue
			}
			if i == 0 {
				return true
			}
			for back := 1; back <= 2 && i-back >= 0; back++ {
				if _, ok := intent[tokens[i-back]]; ok {
					return true
				}
			}
		}
	}

	for _, stem := range s.lex.ActionStems {
		for from := 0; ; {
			i := strings.Index(text[from:], stem)
			if i < 0 {
				break
			}
			after := text[from+i+len(stem):]
			after = strings.TrimPrefix(after, " ")
			for _, suf := range s.lex.StemVerbSuffixes {
				if strings.HasPrefix(after, suf) {
					return true
				}
			}
			from += i + len(stem)
		}
	}
	return false
}

// cleanTask strips lead words, polite endings and punctuation, then bounds
// the length.
func (s *Summarizer) cleanTask(task string) string {
	task = collapseSpace(task)
	for changed := true; changed; {
		changed = false
		before := task
		task = trimPunct(task)
		lower := strings.ToLower(task)
		for _, lw := range s.lex.TaskLeadWords {
			if p := strings.ToLower(lw) + " "; strings.HasPrefix(lower, p) {
				task = task[len(p):]
				break
			}
		}
		for _, end := range longestFirst(s.lex.PoliteEndings) {
			if len(task) >= len(end) && strings.EqualFold(task[len(task)-len(end):], end) {
				cut := task[:len(task)-len(end)]
				if isASCII(end) && cut != "" && !strings.HasSuffix(cut, " ") && !strings.HasSuffix(cut, ",") {
					continue
				}
				task = cut
				break
			}
		}
		task = collapseSpace(task)
		changed = task != before
	}
	return truncateRunes(task, entities.MaxTaskRunes)
}

func trimSeparators(s string) string {
	return strings.Trim(s, " \t,;|/()[]")
}

func inFold(word string, list []string) bool {
	for _, w := range list {
		if strings.EqualFold(collapseSpace(w), word) {
			return true
		}
	}
	return false
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
