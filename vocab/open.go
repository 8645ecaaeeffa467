package vocab

// UnkToken is the reserved unknown-word token of open vocabularies.
const UnkToken = "<unk>"

// unknownPolicy decides what happens when an inference-mode lookup hits a
// word without an index. It is the single point of variation between the
// closed and open variants.
type unknownPolicy interface {
	resolveUnknown(v *Vocabulary, word string) (int, error)
}

// failUnknown is the closed-vocabulary policy: unseen words are an error.
type failUnknown struct{}

func (failUnknown) resolveUnknown(_ *Vocabulary, word string) (int, error) {
	return 0, errUnknownWord(word)
}

// substituteUnknown resolves every unseen word to the index of a fixed
// fallback token, which construction guarantees is present.
type substituteUnknown struct {
	token string
}

func (s substituteUnknown) resolveUnknown(v *Vocabulary, _ string) (int, error) {
	return v.wordToIndex[s.token], nil
}

// NewOpen builds an open vocabulary: <unk> is reserved at index 0 and
// inference-mode lookups of unseen words return its index instead of
// failing. Index lookups still fail on invalid indices.
func NewOpen(words ...string) *Vocabulary {
	return build("OpenVocabulary", []string{UnkToken}, substituteUnknown{token: UnkToken}, words)
}
