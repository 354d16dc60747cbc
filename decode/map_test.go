package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jksn-go/jksn/encode"
	"github.com/jksn-go/jksn/value"
)

func TestDecodeMap_DefaultCollapsesLastWriteWins(t *testing.T) {
	dup := value.Map([]value.MapEntry{
		{Key: value.Text("a"), Value: value.Int(1)},
		{Key: value.Text("a"), Value: value.Int(2)},
	})
	out, err := encode.New().Encode(dup, encode.WithHeader(false), encode.WithCheckCircular(false))
	require.NoError(t, err)

	got, err := New().Decode(out, WithHeader(false))
	require.NoError(t, err)
	require.Equal(t, value.KindMap, got.Kind())

	entries := got.Map()
	require.Len(t, entries, 1, "duplicate key should collapse to last-write-wins by default")
	assert.Equal(t, "a", entries[0].Key.Text())
	assert.Equal(t, int64(2), entries[0].Value.Int64())
}

func TestDecodeMap_OrderedMapPreservesDuplicates(t *testing.T) {
	dup := value.Map([]value.MapEntry{
		{Key: value.Text("a"), Value: value.Int(1)},
		{Key: value.Text("a"), Value: value.Int(2)},
	})
	out, err := encode.New().Encode(dup, encode.WithHeader(false), encode.WithCheckCircular(false))
	require.NoError(t, err)

	got, err := New().Decode(out, WithHeader(false), WithOrderedMap(true))
	require.NoError(t, err)

	entries := got.Map()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].Value.Int64())
	assert.Equal(t, int64(2), entries[1].Value.Int64())
}
