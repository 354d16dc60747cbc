package wire

import (
	"math/big"

	"github.com/jksn-go/jksn/errs"
)

var big128 = big.NewInt(128)

// PutVarintBig appends the minimal self-terminating varint encoding of an
// arbitrary-precision non-negative integer v (spec §3: Int is
// arbitrary-precision on input, narrowed to varint once it exceeds the
// fixed-width classes). v must be non-negative; callers encode the sign
// separately via the E/F (or delta E/F) opcode choice.
func PutVarintBig(dst []byte, v *big.Int) []byte {
	if v.Sign() == 0 {
		return append(dst, 0)
	}

	var groups []byte // little-endian 7-bit groups
	tmp := new(big.Int).Set(v)
	mod := new(big.Int)
	for tmp.Sign() != 0 {
		tmp.DivMod(tmp, big128, mod)
		groups = append(groups, byte(mod.Int64()))
	}

	for i := len(groups) - 1; i >= 0; i-- {
		b := groups[i]
		if i != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}

	return dst
}

// VarintBigLen returns the number of bytes PutVarintBig would emit for v.
func VarintBigLen(v *big.Int) int {
	if v.Sign() == 0 {
		return 1
	}
	n := 0
	tmp := new(big.Int).Set(v)
	for tmp.Sign() != 0 {
		tmp.Rsh(tmp, 7)
		n++
	}

	return n
}

// ReadVarintBig reads a self-terminating varint into an arbitrary-precision
// non-negative integer, returning the value and bytes consumed.
func ReadVarintBig(src []byte) (*big.Int, int, error) {
	v := new(big.Int)
	for i, b := range src {
		v.Lsh(v, 7)
		v.Or(v, big.NewInt(int64(b&0x7f)))
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
		if i == 63 {
			return nil, 0, errs.ErrMalformedVarint
		}
	}

	return nil, 0, errs.ErrUnexpectedEOF
}
