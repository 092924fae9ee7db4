package summarizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isASCIIWord(r rune) bool {
	return r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// containsTerm reports whether lower (already lower-cased) contains term.
// ASCII terms must sit on word boundaries; other terms match as substrings.
func containsTerm(lower, term string) bool {
	if term == "" {
		return false
	}
	term = strings.ToLower(term)
	if !isASCII(term) {
		return strings.Contains(lower, term)
	}
	for from := 0; from < len(lower); {
		i := strings.Index(lower[from:], term)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(term)
		before, after := true, true
		if start > 0 {
			r, _ := utf8.DecodeLastRuneInString(lower[:start])
			before = !isASCIIWord(r)
		}
		if end < len(lower) {
			r, _ := utf8.DecodeRuneInString(lower[end:])
			after = !isASCIIWord(r)
		}
		if before && after {
			return true
		}
		from = start + 1
	}
	return false
}

func containsAnyTerm(lower string, terms []string) bool {
	for _, t := range terms {
		if containsTerm(lower, t) {
			return true
		}
	}
	return false
}

// collapseSpace trims s and folds every whitespace run into one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeKey lower-cases s, drops punctuation and collapses whitespace.
// It is used to compare sentences against fixed phrases.
func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return collapseSpace(b.String())
}

func trimPunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(".,;:!?~·-–—*#=|[](){}\"'`", r)
	})
}

func truncateRunes(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}

func dedupe(items []string, limit int) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it == "" {
			continue
		}
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
