package encode

import (
	"math/big"

	"github.com/jksn-go/jksn/internal/wire"
	"github.com/jksn-go/jksn/node"
	"github.com/jksn-go/jksn/opcode"
)

const (
	int32Lo    = -2147483648
	int32Hi    = 2147483648
	narrowBand = 1 << 21 // 2^21: below this, varint ties or wins over int32 (spec §4.2 step 2)
)

// buildInt builds the absolute-integer node for v using the smallest
// representable opcode (spec §4.2 step 2), recording v on Origin for the
// optimizer's later delta pass.
func (e *Encoder) buildInt(v *big.Int) *node.Node {
	control, lf := chooseAbsInt(v)
	n := node.New(control).WithLengthField(lf)
	n.Origin = new(big.Int).Set(v)

	return n
}

// chooseAbsInt picks the smallest of {inline 0..10, int8, int16, int32,
// unsigned varint, negated unsigned varint} whose range includes v. int32
// is only preferred over varint when v is in [-2^31, -2^21) or [2^21, 2^31)
// (below that magnitude, varint ties or wins).
func chooseAbsInt(v *big.Int) (byte, []byte) {
	if v.IsInt64() {
		i := v.Int64()
		switch {
		case i >= 0 && i <= 0x0A:
			return opcode.MakeControl(opcode.FamilyAbsInt, byte(i)), nil
		case i >= -128 && i <= 127:
			return opcode.MakeControl(opcode.FamilyAbsInt, opcode.AbsIntInt8), []byte{byte(int8(i))}
		case i >= -32768 && i <= 32767:
			return opcode.MakeControl(opcode.FamilyAbsInt, opcode.AbsIntInt16), wire.PutUint16(nil, uint16(int16(i)))
		case (i >= int32Lo && i < -narrowBand) || (i >= narrowBand && i < int32Hi):
			return opcode.MakeControl(opcode.FamilyAbsInt, opcode.AbsIntInt32), wire.PutUint32(nil, uint32(int32(i)))
		}
	}

	if v.Sign() >= 0 {
		return opcode.MakeControl(opcode.FamilyAbsInt, opcode.AbsIntPosVarint), wire.PutVarintBig(nil, v)
	}
	neg := new(big.Int).Neg(v)

	return opcode.MakeControl(opcode.FamilyAbsInt, opcode.AbsIntNegVarint), wire.PutVarintBig(nil, neg)
}

// chooseDeltaInt picks the shortest delta-family encoding of d (spec §4.1
// family 0xB): inline +0..+5/-5..-1 with no payload, else int8/16/32, else
// varint. Always succeeds — any integer magnitude fits a varint delta.
func chooseDeltaInt(d *big.Int) (byte, []byte) {
	if d.IsInt64() {
		i := d.Int64()
		switch {
		case i >= 0 && i <= 5:
			return opcode.MakeControl(opcode.FamilyDeltaInt, byte(i)), nil
		case i >= -5 && i <= -1:
			return opcode.MakeControl(opcode.FamilyDeltaInt, byte(i+11)), nil
		case i >= -128 && i <= 127:
			return opcode.MakeControl(opcode.FamilyDeltaInt, opcode.DeltaInt8), []byte{byte(int8(i))}
		case i >= -32768 && i <= 32767:
			return opcode.MakeControl(opcode.FamilyDeltaInt, opcode.DeltaInt16), wire.PutUint16(nil, uint16(int16(i)))
		case (i >= int32Lo && i < -narrowBand) || (i >= narrowBand && i < int32Hi):
			return opcode.MakeControl(opcode.FamilyDeltaInt, opcode.DeltaInt32), wire.PutUint32(nil, uint32(int32(i)))
		}
	}

	if d.Sign() >= 0 {
		return opcode.MakeControl(opcode.FamilyDeltaInt, opcode.DeltaPosVarint), wire.PutVarintBig(nil, d)
	}
	neg := new(big.Int).Neg(d)

	return opcode.MakeControl(opcode.FamilyDeltaInt, opcode.DeltaNegVarint), wire.PutVarintBig(nil, neg)
}
