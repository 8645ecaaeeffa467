package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	v := New("makan", "minum", "tidur")

	word, score := v.Closest("makanan")
	assert.Equal(t, "makan", word)
	assert.Greater(t, score, 0.5)

	word, score = v.Closest("minum")
	assert.Equal(t, "minum", word)
	assert.Equal(t, 1.0, score)
}

func TestClosestSkipsReserved(t *testing.T) {
	v := NewOpen("unkind")

	// an exact reserved match would win if it were not excluded
	word, _ := v.Closest("<unk>")
	assert.Equal(t, "unkind", word)
}

func TestClosestEmptyVocabulary(t *testing.T) {
	word, score := New().Closest("anything")
	assert.Equal(t, "", word)
	assert.Equal(t, 0.0, score)
}
