package summarizer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

const (
	maxTopTerms       = 12
	maxKeyPoints      = 12
	fallbackKeyPoints = 8
	maxClusters       = 3
	maxClusterBullets = 5
)

var tokenRe = regexp.MustCompile(`\p{L}{2,}|[0-9]{2,}`)

// scored is a sentence with its keyword score.
type scored struct {
	entities.Sentence
	score int
}

// cluster groups key points under the first top term they contain. An empty
// term is the catch-all bucket.
type cluster struct {
	term    string
	rank    int
	members []scored
	total   int
}

// Tokenize returns the scoring tokens of text: letter runs and digit runs of
// at least two characters, ASCII lower-cased, trailing particles removed and
// stopwords dropped.
func (s *Summarizer) Tokenize(text string) []string {
	raw := tokenRe.FindAllString(text, -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if isASCII(tok) {
			tok = strings.ToLower(tok)
		} else {
			tok = s.stripParticle(tok)
		}
		if _, stop := s.stopwords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func (s *Summarizer) stripParticle(tok string) string {
	for _, suf := range longestFirst(s.lex.TokenSuffixes) {
		if !strings.HasSuffix(tok, suf) {
			continue
		}
		if stem := strings.TrimSuffix(tok, suf); len([]rune(stem)) >= 2 {
			return stem
		}
	}
	return tok
}

// TopTerms returns up to twelve of the most frequent non-numeric terms.
// Ties keep first-occurrence order.
func (s *Summarizer) TopTerms(sentences []entities.Sentence) []string {
	freq := make(map[string]int)
	first := make(map[string]int)
	var order []string
	for _, sent := range sentences {
		for _, tok := range s.Tokenize(sent.Text) {
			if isNumeric(tok) {
				continue
			}
			if _, ok := freq[tok]; !ok {
				first[tok] = len(order)
				order = append(order, tok)
			}
			freq[tok]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if freq[a] != freq[b] {
			return freq[a] > freq[b]
		}
		return first[a] < first[b]
	})
	if len(order) > maxTopTerms {
		order = order[:maxTopTerms]
	}
	return order
}

// termWeight maps a term rank to its weight: 3 for the top four terms, 2 for
// the next four and 1 for the rest.
func termWeight(rank int) int {
	switch {
	case rank < 4:
		return 3
	case rank < 8:
		return 2
	default:
		return 1
	}
}

// Score sums the weights of the top terms that occur in text.
func Score(text string, terms []string) int {
	lower := strings.ToLower(text)
	total := 0
	for rank, term := range terms {
		if termIn(text, lower, term) {
			total += termWeight(rank)
		}
	}
	return total
}

func termIn(text, lower, term string) bool {
	if isASCII(term) {
		return strings.Contains(lower, term)
	}
	return strings.Contains(text, term)
}

// rankKeyPoints scores the candidate sentences and keeps the best ones. When
// nothing scores, the first sentences stand in.
func rankKeyPoints(candidates []entities.Sentence, terms []string) []scored {
	all := make([]scored, len(candidates))
	positive := false
	for i, sent := range candidates {
		all[i] = scored{Sentence: sent, score: Score(sent.Text, terms)}
		if all[i].score > 0 {
			positive = true
		}
	}

	if !positive {
		if len(all) > fallbackKeyPoints {
			all = all[:fallbackKeyPoints]
		}
		return all
	}

	sortScored(all)
	if len(all) > maxKeyPoints {
		all = all[:maxKeyPoints]
	}
	return all
}

func sortScored(list []scored) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].score != list[j].score {
			return list[i].score > list[j].score
		}
		return list[i].Index < list[j].Index
	})
}

// clusterKeyPoints buckets key points by the first top term each contains
// and returns the named clusters ranked, plus the catch-all bucket.
func clusterKeyPoints(points []scored, terms []string) ([]cluster, *cluster) {
	byTerm := make(map[string]*cluster)
	var named []*cluster
	other := &cluster{rank: len(terms)}

	for _, p := range points {
		lower := strings.ToLower(p.Text)
		target := other
		for rank, term := range terms {
			if !termIn(p.Text, lower, term) {
				continue
			}
			c, ok := byTerm[term]
			if !ok {
				c = &cluster{term: term, rank: rank}
				byTerm[term] = c
				named = append(named, c)
			}
			target = c
			break
		}
		target.members = append(target.members, p)
		target.total += p.score
	}

	sort.SliceStable(named, func(i, j int) bool {
		a, b := named[i], named[j]
		if len(a.members) != len(b.members) {
			return len(a.members) > len(b.members)
		}
		if a.total != b.total {
			return a.total > b.total
		}
		return a.rank < b.rank
	})

	out := make([]cluster, 0, len(named))
	for _, c := range named {
		sortScored(c.members)
		out = append(out, *c)
	}
	if len(other.members) == 0 {
		return out, nil
	}
	sortScored(other.members)
	return out, other
}

func isNumeric(tok string) bool {
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return tok != ""
}

func texts(list []scored, limit int) []string {
	out := make([]string, 0, len(list))
	for _, it := range list {
		out = append(out, it.Text)
	}
	return dedupe(out, limit)
}
