package vocab

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDict(t *testing.T) {
	v := New("a", "bb", "ccc")

	d := v.ToDict()
	assert.Equal(t, []string{"a", "bb", "ccc"}, d.IndexToWord)
	assert.Equal(t, map[string]int{"a": 1, "bb": 1, "ccc": 1}, d.Counts)
}

func TestToDictOmitsReserved(t *testing.T) {
	v := NewOpen("a", "bb")

	d := v.ToDict()
	assert.Equal(t, []string{"a", "bb"}, d.IndexToWord)
	assert.NotContains(t, d.Counts, UnkToken)
}

func TestFromDict(t *testing.T) {
	d := Dict{
		IndexToWord: []string{"a", "bb", "ccc"},
		Counts:      map[string]int{"a": 1, "bb": 1, "ccc": 1},
	}
	assert.True(t, New("a", "bb", "ccc").Equal(FromDict(d)))
}

func TestDictRoundTrip(t *testing.T) {
	v := New("a", "a", "bb", "ccc", "ccc", "ccc")
	assert.True(t, v.Equal(FromDict(v.ToDict())))

	open := NewOpen("a", "bb", "bb")
	restored := FromOpenDict(open.ToDict())
	assert.True(t, open.Equal(restored))
	assert.True(t, restored.Has(UnkToken))
}

func TestDictJSON(t *testing.T) {
	v := New("a", "bb")

	raw, err := json.Marshal(v.ToDict())
	require.NoError(t, err)
	assert.JSONEq(t, `{"index2word":["a","bb"],"counts":{"a":1,"bb":1}}`, string(raw))

	var d Dict
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.True(t, v.Equal(FromDict(d)))
}

func TestBinaryRoundTrip(t *testing.T) {
	v := New("a", "a", "bb")

	data, err := v.MarshalBinary()
	require.NoError(t, err)

	restored := New()
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.True(t, v.Equal(restored))
}

func TestBinaryRoundTripKeepsReceiverVariant(t *testing.T) {
	v := NewOpen("a", "bb")

	data, err := v.MarshalBinary()
	require.NoError(t, err)

	restored := NewOpen()
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.True(t, v.Equal(restored))

	got, err := restored.WordToIndex("unseen", false)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}
