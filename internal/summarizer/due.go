package summarizer

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// dueRule recognizes one family of due-date expressions.
type dueRule struct {
	name string
	re   *regexp.Regexp
	// group is the submatch that spans the date itself; 0 is the whole match.
	group     int
	normalize func(s *Summarizer, m []string) (string, bool)
}

// dueMatch is a located and normalized due date.
type dueMatch struct {
	rule  string
	value string
	start int
	end   int
	// deadline is set when the date was introduced by a lead word ("by")
	// or followed by a trailing word ("까지").
	deadline bool
}

func compileDueRules(lex Lexicon) ([]dueRule, error) {
	specs := []struct {
		name      string
		pattern   string
		group     int
		normalize func(s *Summarizer, m []string) (string, bool)
	}{
		{"iso", `(\d{4})-(\d{1,2})-(\d{1,2})`, 0, normalizeISO},
		{"korean_month_day", `(\d{1,2})\s*월\s*(\d{1,2})\s*일`, 0, normalizeMonthDay},
		{"slash", `(?:^|[^\d/])((\d{1,2})/(\d{1,2}))(?:[^\d/]|$)`, 1, normalizeSlash},
		{"relative", `(?i)(` + alternation(mapKeys(lex.RelativeDays), true) + `)`, 0, normalizeRelative},
		{"weekday", `(?i)(?:(` + alternation(lex.NextWeekWords, true) + `)\s*)?(` + alternation(mapKeys(lex.Weekdays), true) + `)`, 0, normalizeWeekday},
	}

	rules := make([]dueRule, 0, len(specs))
	for _, sp := range specs {
		re, err := regexp.Compile(sp.pattern)
		if err != nil {
			return nil, fmt.Errorf("compile due rule %s: %w", sp.name, err)
		}
		rules = append(rules, dueRule{name: sp.name, re: re, group: sp.group, normalize: sp.normalize})
	}
	return rules, nil
}

// DuePolicy returns the names of the due-date rules in precedence order.
func (s *Summarizer) DuePolicy() []string {
	names := make([]string, len(s.dueRules))
	for i, r := range s.dueRules {
		names[i] = r.name
	}
	return names
}

// NormalizeDue normalizes a free-form due value such as the one following a
// "due:" label. Values no rule understands are returned trimmed.
func (s *Summarizer) NormalizeDue(value string) string {
	if m, ok := s.findDue(value); ok {
		return m.value
	}
	return collapseSpace(trimPunct(value))
}

// findDue returns the first due expression in text, trying the rules in
// precedence order.
func (s *Summarizer) findDue(text string) (dueMatch, bool) {
	for _, rule := range s.dueRules {
		for _, loc := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			m := submatches(text, loc)
			value, ok := rule.normalize(s, m)
			if !ok {
				continue
			}
			start, end := loc[2*rule.group], loc[2*rule.group+1]
			match := dueMatch{rule: rule.name, value: value, start: start, end: end}
			s.extendDue(text, &match)
			return match, true
		}
	}
	return dueMatch{}, false
}

// extendDue widens the match over lead words before it and trailing words
// after it so both are removed from the task text.
func (s *Summarizer) extendDue(text string, m *dueMatch) {
	leads := longestFirst(s.lex.DueLeadWords)
	for pass := 0; pass < 2; pass++ {
		prefix := strings.TrimRightFunc(text[:m.start], unicode.IsSpace)
		found := false
		for _, lw := range leads {
			if len(prefix) < len(lw) || !strings.EqualFold(prefix[len(prefix)-len(lw):], lw) {
				continue
			}
			at := len(prefix) - len(lw)
			if isASCII(lw) && at > 0 {
				r, _ := utf8.DecodeLastRuneInString(prefix[:at])
				if isASCIIWord(r) {
					continue
				}
			}
			m.start = at
			m.deadline = true
			found = true
			break
		}
		if !found {
			break
		}
	}

	rest := text[m.end:]
	trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
	for _, tw := range longestFirst(s.lex.DueTrailWords) {
		if strings.HasPrefix(trimmed, tw) {
			m.end += len(rest) - len(trimmed) + len(tw)
			m.deadline = true
			break
		}
	}
}

func normalizeISO(_ *Summarizer, m []string) (string, bool) {
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	if !validMonthDay(mo, d) {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, mo, d), true
}

func normalizeMonthDay(_ *Summarizer, m []string) (string, bool) {
	mo, _ := strconv.Atoi(m[1])
	d, _ := strconv.Atoi(m[2])
	if !validMonthDay(mo, d) {
		return "", false
	}
	return fmt.Sprintf("%d/%d", mo, d), true
}

func normalizeSlash(_ *Summarizer, m []string) (string, bool) {
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	if !validMonthDay(mo, d) {
		return "", false
	}
	return fmt.Sprintf("%d/%d", mo, d), true
}

func normalizeRelative(s *Summarizer, m []string) (string, bool) {
	word := strings.ToLower(collapseSpace(m[1]))
	offset, ok := s.lex.RelativeDays[word]
	if !ok {
		return "", false
	}
	if s.ref.IsZero() {
		return word, true
	}
	return monthDay(s.ref.AddDate(0, 0, offset)), true
}

func normalizeWeekday(s *Summarizer, m []string) (string, bool) {
	day := strings.ToLower(m[2])
	target, ok := s.lex.Weekdays[day]
	if !ok {
		return "", false
	}
	next := m[1] != ""
	if s.ref.IsZero() {
		return strings.ToLower(collapseSpace(m[0])), true
	}
	ahead := (target - int(s.ref.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	if next {
		ahead += 7
	}
	return monthDay(s.ref.AddDate(0, 0, ahead)), true
}

func validMonthDay(month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

func monthDay(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

func submatches(text string, loc []int) []string {
	m := make([]string, len(loc)/2)
	for i := range m {
		if loc[2*i] >= 0 {
			m[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return m
}

func mapKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func longestFirst(words []string) []string {
	out := append([]string{}, words...)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}
