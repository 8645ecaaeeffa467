// Package vocab maps words to dense integer indices and back, tracks word
// frequencies, prunes by frequency, and pads batches of token sequences into
// fixed-length index matrices for downstream numeric processing.
//
// A Vocabulary is not safe for concurrent use; training mutates its internal
// mappings in place.
package vocab

import (
	"fmt"
	"sort"
)

// Vocabulary is a bidirectional word/index mapping with per-word occurrence
// counts. Indices are dense, assigned sequentially in first-seen order, and
// never removed in place; pruning produces new independent instances.
//
// The zero value is not usable. Construct with New or NewOpen.
type Vocabulary struct {
	indexToWord []string
	wordToIndex map[string]int
	counts      map[string]int

	// reserved tokens occupy the lowest indices, survive pruning, and are
	// excluded from equality and from the serialized dict.
	reserved    []string
	reservedSet map[string]struct{}

	unknown unknownPolicy
	name    string
}

// New builds a closed vocabulary: inference-mode lookups of unseen words
// fail. The given words are trained in order, so each occurrence increments
// its count and first occurrences claim the next index.
func New(words ...string) *Vocabulary {
	return build("Vocabulary", nil, failUnknown{}, words)
}

func build(name string, reserved []string, unknown unknownPolicy, words []string) *Vocabulary {
	v := &Vocabulary{
		wordToIndex: make(map[string]int),
		counts:      make(map[string]int),
		reserved:    reserved,
		reservedSet: make(map[string]struct{}, len(reserved)),
		unknown:     unknown,
		name:        name,
	}
	for _, w := range reserved {
		v.reservedSet[w] = struct{}{}
		v.insert(w)
		v.counts[w] = 0
	}
	for _, w := range words {
		v.WordToIndex(w, true)
	}
	return v
}

// emptyClone makes a fresh vocabulary of the same variant, reserved words
// only.
func (v *Vocabulary) emptyClone() *Vocabulary {
	return build(v.name, v.reserved, v.unknown, nil)
}

func (v *Vocabulary) insert(word string) int {
	i := len(v.indexToWord)
	v.indexToWord = append(v.indexToWord, word)
	v.wordToIndex[word] = i
	return i
}

// Len reports the number of words in the vocabulary, reserved included.
func (v *Vocabulary) Len() int {
	return len(v.indexToWord)
}

func (v *Vocabulary) String() string {
	return fmt.Sprintf("%s(%d)", v.name, v.Len())
}

// Has reports whether word has an index.
func (v *Vocabulary) Has(word string) bool {
	_, ok := v.wordToIndex[word]
	return ok
}

// Count returns the occurrence count of word, 0 if never counted.
func (v *Vocabulary) Count(word string) int {
	return v.counts[word]
}

// Counts returns a snapshot copy of the counter. Mutating the returned map
// does not affect the vocabulary.
func (v *Vocabulary) Counts() map[string]int {
	c := make(map[string]int, len(v.counts))
	for w, n := range v.counts {
		c[w] = n
	}
	return c
}

// Words returns a snapshot of the words in index order, reserved included.
func (v *Vocabulary) Words() []string {
	return append([]string(nil), v.indexToWord...)
}

// WordToIndex returns the index of word. With train set, the word's count is
// incremented and an unseen word is assigned the next sequential index.
// Without train, an unseen word is handed to the variant's unknown-word
// policy: the closed variant fails with *OutOfVocabularyError, the open
// variant resolves to the index of <unk>.
func (v *Vocabulary) WordToIndex(word string, train bool) (int, error) {
	if i, ok := v.wordToIndex[word]; ok {
		if train {
			v.counts[word]++
		}
		return i, nil
	}
	if train {
		v.counts[word]++
		return v.insert(word), nil
	}
	return v.unknown.resolveUnknown(v, word)
}

// WordsToIndices maps words element-wise through WordToIndex, preserving
// order.
func (v *Vocabulary) WordsToIndices(words []string, train bool) ([]int, error) {
	indices := make([]int, len(words))
	for i, w := range words {
		idx, err := v.WordToIndex(w, train)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return indices, nil
}

// IndexToWord returns the word bound to index. Negative indices and indices
// at or beyond Len fail with *OutOfVocabularyError for both variants.
func (v *Vocabulary) IndexToWord(index int) (string, error) {
	if index < 0 {
		return "", errNegativeIndex(index)
	}
	if index >= v.Len() {
		return "", errIndexTooLarge(index, v.Len())
	}
	return v.indexToWord[index], nil
}

// IndicesToWords maps indices element-wise through IndexToWord.
func (v *Vocabulary) IndicesToWords(indices []int) ([]string, error) {
	words := make([]string, len(indices))
	for i, idx := range indices {
		w, err := v.IndexToWord(idx)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return words, nil
}

// Equal reports position-sensitive equality: same size and, at every
// non-reserved position, the same word with the same count. Reserved-word
// counts are ignored, so count drift on <unk> never breaks equality.
func (v *Vocabulary) Equal(other *Vocabulary) bool {
	if other == nil || v.Len() != other.Len() {
		return false
	}
	for i, w := range v.indexToWord {
		if _, ok := v.reservedSet[w]; ok {
			continue
		}
		if other.indexToWord[i] != w || v.counts[w] != other.counts[w] {
			return false
		}
	}
	return true
}

// ContainsSameContent reports set-based equality over the union of words
// known to either vocabulary, ignoring index assignment order entirely.
// With sameCounts, shared words must also agree on their counts.
func (v *Vocabulary) ContainsSameContent(other *Vocabulary, sameCounts bool) bool {
	for _, side := range []*Vocabulary{v, other} {
		for w := range side.wordToIndex {
			if v.Has(w) != other.Has(w) {
				return false
			}
			if sameCounts && v.counts[w] != other.counts[w] {
				return false
			}
		}
	}
	return true
}

// Copy returns a deep, fully independent duplicate when keepWords is true,
// or a fresh empty vocabulary of the same variant when it is false.
func (v *Vocabulary) Copy(keepWords bool) *Vocabulary {
	c := v.emptyClone()
	if !keepWords {
		return c
	}
	for _, w := range v.indexToWord {
		if _, ok := c.wordToIndex[w]; !ok {
			c.insert(w)
		}
	}
	for w, n := range v.counts {
		c.counts[w] = n
	}
	return c
}

// PruneByCount returns a new vocabulary keeping only the words whose count
// is at least cutoff, in their original relative order, counts preserved.
// Reserved words are always retained through fresh construction.
func (v *Vocabulary) PruneByCount(cutoff int) *Vocabulary {
	pruned := v.emptyClone()
	for _, w := range v.indexToWord {
		if _, ok := v.reservedSet[w]; ok {
			continue
		}
		if c := v.counts[w]; c >= cutoff {
			pruned.insert(w)
			pruned.counts[w] = c
		}
	}
	return pruned
}

// PruneByTotal returns a new vocabulary keeping only the total highest-count
// non-reserved words, ties broken by insertion order, counts preserved.
// Reserved words are kept in addition to the total.
func (v *Vocabulary) PruneByTotal(total int) *Vocabulary {
	type wordCount struct {
		word  string
		count int
	}
	ranked := make([]wordCount, 0, v.Len())
	for _, w := range v.indexToWord {
		if _, ok := v.reservedSet[w]; ok {
			continue
		}
		ranked = append(ranked, wordCount{w, v.counts[w]})
	}
	// stable sort keeps first-seen words ahead of later ties
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})
	if total < 0 {
		total = 0
	}
	if total < len(ranked) {
		ranked = ranked[:total]
	}
	pruned := v.emptyClone()
	for _, wc := range ranked {
		pruned.insert(wc.word)
		pruned.counts[wc.word] = wc.count
	}
	return pruned
}
