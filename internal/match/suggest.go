package match

import (
	"sort"
	"strings"
	"unicode"
)

// MinSuggestScore is the lowest similarity at which a candidate is offered.
const MinSuggestScore = 0.6

// NormalizeTag reduces a line tag to its comparable stem: lower case with
// digits, separators and brackets removed, so "Controler_3" and "Controller_"
// compare as "controler" and "controller".
func NormalizeTag(s string) string {
	var b strings.Builder

	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// Suggest returns up to limit candidates whose normalized form is closest to
// word, best first. Ties keep the candidates' original order.
func Suggest(word string, candidates []string, limit int) []string {
	norm := NormalizeTag(word)
	if norm == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		candidate string
		score     float64
	}

	var ranked []scored

	for _, c := range candidates {
		// A known tag embedded in the word is the closest possible match.
		score := Similarity(norm, NormalizeTag(c))
		if strings.HasPrefix(norm, NormalizeTag(c)) {
			score = max(score, MinSuggestScore)
		}

		if score >= MinSuggestScore {
			ranked = append(ranked, scored{candidate: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, s := range ranked[:min(limit, len(ranked))] {
		out = append(out, s.candidate)
	}

	return out
}
