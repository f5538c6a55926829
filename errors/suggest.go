package errors

import (
	"sort"
	"strings"

	"github.com/qbit-lang/qbit/token"
)

// MaxSuggestions is the maximum number of suggestions to return.
const MaxSuggestions = 3

// Suggestion is a candidate correction and its edit distance from the input.
type Suggestion struct {
	Value    string
	Distance int
}

// suggestionThreshold scales the allowed edit distance with the word length,
// so short words only match near-identical candidates.
func suggestionThreshold(word string) int {
	switch n := len(word); {
	case n <= 3:
		return 1
	case n <= 5:
		return 2
	default:
		return 3
	}
}

// SuggestSimilar returns up to MaxSuggestions candidates close to target,
// closest first. Comparison ignores case and exact matches are skipped.
func SuggestSimilar(target string, candidates []string) []Suggestion {
	if target == "" {
		return nil
	}
	target = strings.ToLower(target)
	threshold := suggestionThreshold(target)

	var out []Suggestion
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if candidate == "" || lower == target {
			continue
		}
		if dist := levenshtein(target, lower); dist <= threshold {
			out = append(out, Suggestion{Value: candidate, Distance: dist})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Value < out[j].Value
	})
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

// SuggestKeyword returns the "did you mean" hint for a word that may be a
// misspelled keyword, or an empty string.
func SuggestKeyword(word string) string {
	return FormatSuggestions(SuggestSimilar(word, token.Keywords()))
}

// FormatSuggestions renders suggestions as a hint. Returns an empty string
// if there are none.
func FormatSuggestions(suggestions []Suggestion) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return "did you mean '" + suggestions[0].Value + "'?"
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = "'" + s.Value + "'"
	}
	return "did you mean one of: " + strings.Join(quoted, ", ") + "?"
}

// levenshtein computes the edit distance between two strings using two rows
// of the distance matrix.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}
