package vocab

import (
	"errors"
	"fmt"
)

// ErrEmptyBatch is returned when a padding call receives no sentences,
// since the batch maximum length is undefined for an empty batch.
var ErrEmptyBatch = errors.New("cannot pad an empty batch of sentences")

// OutOfVocabularyError is the only failure kind produced by vocabulary
// lookups. It carries either the offending word or the offending index,
// depending on the direction of the lookup that failed.
type OutOfVocabularyError struct {
	Word  string
	Index int
	msg   string
}

func (e *OutOfVocabularyError) Error() string {
	return e.msg
}

func errUnknownWord(word string) *OutOfVocabularyError {
	return &OutOfVocabularyError{
		Word: word,
		msg:  fmt.Sprintf("Word '%s' is not in the vocabulary", word),
	}
}

func errNegativeIndex(index int) *OutOfVocabularyError {
	return &OutOfVocabularyError{
		Index: index,
		msg:   fmt.Sprintf("Index %d is negative and is not a valid word index", index),
	}
}

func errIndexTooLarge(index, size int) *OutOfVocabularyError {
	return &OutOfVocabularyError{
		Index: index,
		msg:   fmt.Sprintf("Index %d exceeds vocab size %d and is not a valid word index", index, size),
	}
}
