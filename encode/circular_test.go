package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/value"
)

func TestEncode_CircularArrayRejected(t *testing.T) {
	items := make([]value.Value, 1)
	items[0] = value.Array(items)

	_, err := New().Encode(value.Array(items))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCircularReference)
}

func TestEncode_CircularReferenceDisabled(t *testing.T) {
	items := make([]value.Value, 1)
	items[0] = value.Int(1)

	_, err := New().Encode(value.Array(items), WithCheckCircular(false))
	require.NoError(t, err)
}

func TestEncode_NonCircularSharedSliceIsFine(t *testing.T) {
	shared := []value.Value{value.Int(1), value.Int(2)}
	v := value.Array([]value.Value{value.Array(shared), value.Array(shared)})

	out, err := New().Encode(v)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
