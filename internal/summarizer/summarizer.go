// Package summarizer turns free-form meeting notes into a structured summary
// without any external service. It is the guaranteed fallback behind the
// remote summarizers and is safe for concurrent use.
package summarizer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// DefaultBudget is the input size, in runes, above which notes are truncated.
const DefaultBudget = 12000

// Mode is the path the pipeline took for one input.
type Mode string

const (
	ModeEmpty   Mode = "empty"
	ModeSection Mode = "section"
	ModeKeyword Mode = "keyword"
)

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithLexicon replaces the default language tables.
func WithLexicon(lex Lexicon) Option {
	return func(s *Summarizer) { s.lex = lex }
}

// WithReferenceDate resolves relative due dates ("tomorrow", "Friday")
// against the given day. Without it they are kept as lower-cased words.
func WithReferenceDate(t time.Time) Option {
	return func(s *Summarizer) { s.ref = t }
}

// WithBudget sets the truncation budget in runes.
func WithBudget(runes int) Option {
	return func(s *Summarizer) {
		if runes > 0 {
			s.budget = runes
		}
	}
}

// Summarizer runs the local pipeline. It holds only immutable state after New.
type Summarizer struct {
	lex    Lexicon
	ref    time.Time
	budget int

	stopwords map[string]struct{}
	nonOwners map[string]struct{}

	labelRe   *regexp.Regexp
	ownerEnRe *regexp.Regexp
	ownerKoRe *regexp.Regexp
	dueRules  []dueRule
}

// New compiles the lexicon into a ready Summarizer.
func New(opts ...Option) (*Summarizer, error) {
	s := &Summarizer{
		lex:    DefaultLexicon(),
		budget: DefaultBudget,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.compile(); err != nil {
		return nil, err
	}
	return s, nil
}

var (
	defaultOnce sync.Once
	defaultSum  *Summarizer
)

// Default returns the shared Summarizer built from the bundled lexicon.
func Default() *Summarizer {
	defaultOnce.Do(func() {
		s, err := New()
		if err != nil {
			panic(fmt.Sprintf("summarizer: default lexicon does not compile: %v", err))
		}
		defaultSum = s
	})
	return defaultSum
}

// BuildLocalSummary summarizes text with the default Summarizer.
func BuildLocalSummary(text string) entities.Summary {
	return Default().Build(text)
}

// RenderSummaryText renders a summary with the default headings.
func RenderSummaryText(s entities.Summary) string {
	return Default().Render(s)
}

// Lexicon returns the tables the Summarizer was built with.
func (s *Summarizer) Lexicon() Lexicon {
	return s.lex
}

// Budget returns the truncation budget in runes.
func (s *Summarizer) Budget() int {
	return s.budget
}

func (s *Summarizer) compile() error {
	s.stopwords = toSet(s.lex.Stopwords)
	s.nonOwners = toSet(s.lex.NonOwners)

	labels := append(append(append([]string{}, s.lex.OwnerLabels...), s.lex.DueLabels...), s.lex.TaskLabels...)
	var err error
	s.labelRe, err = regexp.Compile(`(?i)(?:^|[\s,;(\[|/])(` + alternation(labels, false) + `)\s*[:：]`)
	if err != nil {
		return fmt.Errorf("compile label pattern: %w", err)
	}

	s.ownerEnRe, err = regexp.Compile(`^([A-Z][A-Za-z'\-]{1,9})\s+(?:` + alternation(s.lex.OwnerModals, true) + `)\s+`)
	if err != nil {
		return fmt.Errorf("compile owner pattern: %w", err)
	}

	honorific := alternation(s.lex.HonorificSuffixes, false)
	subject := alternation(s.lex.SubjectParticles, false)
	topic := alternation(s.lex.TopicParticles, false)
	s.ownerKoRe, err = regexp.Compile(`^([\p{Hangul}A-Za-z]{2,10}?)(?:(?:` + honorific + `)(?:` + subject + `|` + topic + `)?|` + subject + `)\s+`)
	if err != nil {
		return fmt.Errorf("compile korean owner pattern: %w", err)
	}

	s.dueRules, err = compileDueRules(s.lex)
	if err != nil {
		return err
	}
	return nil
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// alternation builds a regexp alternation, longest alternative first so that
// "day after tomorrow" wins over "tomorrow". When bounded is set, ASCII words
// are wrapped in \b; other scripts have no ASCII word boundary to anchor on.
func alternation(words []string, bounded bool) string {
	sorted := append([]string{}, words...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len([]rune(sorted[i])) > len([]rune(sorted[j]))
	})
	parts := make([]string, 0, len(sorted))
	for _, w := range sorted {
		if w == "" {
			continue
		}
		p := regexp.QuoteMeta(w)
		p = strings.ReplaceAll(p, " ", `\s+`)
		if bounded && isASCII(w) {
			p = `\b` + p + `\b`
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return `[^\s\S]`
	}
	return strings.Join(parts, "|")
}
