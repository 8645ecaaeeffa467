package vocab

// WordsToPaddedIndices converts a batch of sentences into an equal-width
// index matrix, right-padded with the index of pad up to the longest
// sentence in the batch. It also returns each sentence's natural length.
//
// With enforceEndPad, every sentence is extended with one trailing pad token
// before lengths are computed, so the returned lengths include it.
//
// Word conversion goes through the training-aware lookup path: with train,
// unseen words (the pad token included) are added to the vocabulary;
// without, the pad token must already be known (checked before any sentence
// is touched) and unseen sentence words fail per the variant's policy.
// Sentences are converted before the pad token is resolved, so in training
// mode a first-time pad claims its index after the sentence words.
//
// An empty batch fails with ErrEmptyBatch.
func (v *Vocabulary) WordsToPaddedIndices(sentences [][]string, pad string, train, enforceEndPad bool) ([][]int, []int, error) {
	if len(sentences) == 0 {
		return nil, nil, ErrEmptyBatch
	}
	if !train && !v.Has(pad) {
		return nil, nil, errUnknownWord(pad)
	}

	if enforceEndPad {
		extended := make([][]string, len(sentences))
		for i, sentence := range sentences {
			extended[i] = append(append([]string(nil), sentence...), pad)
		}
		sentences = extended
	}

	lens := make([]int, len(sentences))
	maxLen := 0
	for i, sentence := range sentences {
		lens[i] = len(sentence)
		if lens[i] > maxLen {
			maxLen = lens[i]
		}
	}

	indices := make([][]int, len(sentences))
	for i, sentence := range sentences {
		row, err := v.WordsToIndices(sentence, train)
		if err != nil {
			return nil, nil, err
		}
		indices[i] = row
	}

	padIndex, err := v.WordToIndex(pad, train)
	if err != nil {
		return nil, nil, err
	}

	padded := make([][]int, len(indices))
	for i, row := range indices {
		full := make([]int, maxLen)
		copy(full, row)
		for j := len(row); j < maxLen; j++ {
			full[j] = padIndex
		}
		padded[i] = full
	}
	return padded, lens, nil
}

// PaddedIndicesToWords inverts WordsToPaddedIndices: each row is truncated
// at the first occurrence of pad's index (rows without it are kept whole)
// and converted back to words. The pad token must be known, and any invalid
// non-pad index in a row surfaces as *OutOfVocabularyError.
func (v *Vocabulary) PaddedIndicesToWords(padded [][]int, pad string) ([][]string, error) {
	padIndex, ok := v.wordToIndex[pad]
	if !ok {
		return nil, errUnknownWord(pad)
	}

	depadded := make([][]string, len(padded))
	for i, row := range padded {
		content := row
		for j, idx := range row {
			if idx == padIndex {
				content = row[:j]
				break
			}
		}
		words, err := v.IndicesToWords(content)
		if err != nil {
			return nil, err
		}
		depadded[i] = words
	}
	return depadded, nil
}
