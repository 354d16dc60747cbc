package jsonbridge

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jksn-go/jksn/value"
)

func TestFromJSON_Scalars(t *testing.T) {
	v, err := FromJSON([]byte(`null`))
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	v, err = FromJSON([]byte(`true`))
	require.NoError(t, err)
	assert.Equal(t, value.KindBool, v.Kind())
	assert.True(t, v.Bool())

	v, err = FromJSON([]byte(`"hello"`))
	require.NoError(t, err)
	assert.Equal(t, "hello", v.Text())
}

func TestFromJSON_IntegerVsFloat(t *testing.T) {
	v, err := FromJSON([]byte(`42`))
	require.NoError(t, err)
	require.Equal(t, value.KindInt, v.Kind())
	assert.Equal(t, int64(42), v.Int64())

	v, err = FromJSON([]byte(`42.5`))
	require.NoError(t, err)
	require.Equal(t, value.KindFloat, v.Kind())
	assert.Equal(t, 42.5, v.Float())

	v, err = FromJSON([]byte(`1e3`))
	require.NoError(t, err)
	assert.Equal(t, value.KindFloat, v.Kind())
}

func TestFromJSON_BigInt(t *testing.T) {
	v, err := FromJSON([]byte(`123456789012345678901234567890`))
	require.NoError(t, err)
	require.Equal(t, value.KindInt, v.Kind())

	want, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	assert.Equal(t, 0, want.Cmp(v.BigInt()))
}

func TestFromJSON_ArrayAndObjectPreservesOrder(t *testing.T) {
	v, err := FromJSON([]byte(`{"z":1,"a":2,"m":3}`))
	require.NoError(t, err)
	require.Equal(t, value.KindMap, v.Kind())

	entries := v.Map()
	require.Len(t, entries, 3)
	assert.Equal(t, "z", entries[0].Key.Text())
	assert.Equal(t, "a", entries[1].Key.Text())
	assert.Equal(t, "m", entries[2].Key.Text())

	v, err = FromJSON([]byte(`[3,1,2]`))
	require.NoError(t, err)
	require.Equal(t, value.KindArray, v.Kind())
	items := v.Array()
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].Int64())
}

func TestToJSONIndent_PreservesMapOrder(t *testing.T) {
	v := value.Map([]value.MapEntry{
		{Key: value.Text("z"), Value: value.Int(1)},
		{Key: value.Text("a"), Value: value.Int(2)},
	})

	out, err := ToJSONIndent(v, "  ")
	require.NoError(t, err)

	zIdx := indexOf(t, out, `"z"`)
	aIdx := indexOf(t, out, `"a"`)
	assert.Less(t, zIdx, aIdx, "key order should be preserved: %s", out)
}

func TestToJSONIndent_FloatNaNInfBecomesNull(t *testing.T) {
	out, err := ToJSONIndent(value.Float(0), "  ")
	require.NoError(t, err)
	assert.Equal(t, "0", string(out))

	out, err = ToJSONIndent(value.Float(math.NaN()), "  ")
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	out, err = ToJSONIndent(value.Float(math.Inf(1)), "  ")
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	out, err = ToJSONIndent(value.Float(math.Inf(-1)), "  ")
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestRoundTrip_FromJSON_ToJSON(t *testing.T) {
	original := []byte(`{"name":"test","count":3,"ratio":1.5,"tags":["a","b"],"enabled":true,"note":null}`)
	v, err := FromJSON(original)
	require.NoError(t, err)

	out, err := ToJSONIndent(v, "  ")
	require.NoError(t, err)

	reparsed, err := FromJSON(out)
	require.NoError(t, err)
	assert.True(t, value.Equal(v, reparsed))
}

func indexOf(t *testing.T, haystack []byte, needle string) int {
	t.Helper()
	s := string(haystack)
	for i := 0; i+len(needle) <= len(s); i++ {
		if s[i:i+len(needle)] == needle {
			return i
		}
	}
	t.Fatalf("needle %q not found in %q", needle, s)
	return -1
}
