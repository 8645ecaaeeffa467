package vocab

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Closest returns the known non-reserved word most similar to word by
// Jaro-Winkler similarity, together with the score in [0, 1]. It is a
// diagnostic helper for out-of-vocabulary failures and has no effect on
// lookup semantics. An empty vocabulary returns ("", 0).
func (v *Vocabulary) Closest(word string) (string, float64) {
	jw := metrics.NewJaroWinkler()
	best, bestScore := "", 0.0
	for _, w := range v.indexToWord {
		if _, ok := v.reservedSet[w]; ok {
			continue
		}
		if score := strutil.Similarity(word, w, jw); score > bestScore {
			best, bestScore = w, score
		}
	}
	return best, bestScore
}
