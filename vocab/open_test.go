package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenString(t *testing.T) {
	v := NewOpen("a", "bb", "ccc")
	assert.Equal(t, "OpenVocabulary(4)", v.String())
}

func TestOpenReservedUnkComesFirst(t *testing.T) {
	v := NewOpen("a", "bb", "ccc")

	got, err := v.WordToIndex(UnkToken, false)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	assert.Equal(t, 0, v.Count(UnkToken))
}

func TestOpenWordToIndex(t *testing.T) {
	v := NewOpen("a", "bb", "ccc")

	got, err := v.WordToIndex("bb", false)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	indices, err := v.WordsToIndices([]string{"a", "ccc", "bb"}, false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, indices)

	// unseen words resolve to <unk> instead of failing
	got, err = v.WordToIndex("dddd", false)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	indices, err = v.WordsToIndices([]string{"a", "dddd", "bb"}, false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, indices)

	// the miss is not recorded anywhere
	assert.False(t, v.Has("dddd"))
	assert.Equal(t, 0, v.Count("dddd"))
	assert.Equal(t, 0, v.Count(UnkToken))
}

func TestOpenIndexToWord(t *testing.T) {
	v := NewOpen("a", "bb", "ccc")

	got, err := v.IndexToWord(2)
	require.NoError(t, err)
	assert.Equal(t, "bb", got)

	words, err := v.IndicesToWords([]int{1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "ccc", "bb"}, words)

	// index lookups are not redirected to <unk>
	var oov *OutOfVocabularyError
	_, err = v.IndexToWord(-1)
	require.ErrorAs(t, err, &oov)
	_, err = v.IndexToWord(4)
	require.ErrorAs(t, err, &oov)
}

func TestOpenTrainingStillGrows(t *testing.T) {
	v := NewOpen()

	got, err := v.WordToIndex("fresh", true)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, 1, v.Count("fresh"))
}

func TestOpenPruneKeepsUnk(t *testing.T) {
	v := NewOpen("a", "b", "b")

	pruned := v.PruneByCount(2)
	assert.True(t, pruned.Has(UnkToken))
	assert.True(t, pruned.Has("b"))
	assert.False(t, pruned.Has("a"))
	assert.Equal(t, 2, pruned.Len())

	top := v.PruneByTotal(1)
	assert.True(t, top.Has(UnkToken))
	assert.True(t, top.Has("b"))
	assert.Equal(t, 2, top.Len())

	// pruned vocabularies stay open
	got, err := top.WordToIndex("never-seen", false)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestOpenEqualIgnoresUnkCount(t *testing.T) {
	v := NewOpen("a", "bb")
	w := v.Copy(true)

	// reserved counts may drift without breaking equality
	w.WordToIndex(UnkToken, true)
	assert.True(t, v.Equal(w))
}

func TestOpenCopyKeepsVariant(t *testing.T) {
	v := NewOpen("a")

	fresh := v.Copy(false)
	assert.Equal(t, 1, fresh.Len())
	assert.True(t, fresh.Has(UnkToken))

	got, err := fresh.WordToIndex("unseen", false)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}
