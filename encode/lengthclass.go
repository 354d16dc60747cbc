package encode

import (
	"github.com/jksn-go/jksn/internal/wire"
	"github.com/jksn-go/jksn/opcode"
)

// lengthClass picks the smallest length-class representation of n (an
// inline count, byte length, or code-unit count) for the given family,
// following the uniform 0..inlineMax / uint8 / uint16 / varint shape shared
// by most families in spec §4.1.
func lengthClass(n int, family byte, inlineMax int, uint16Code, uint8Code, varintCode byte) (byte, []byte) {
	switch {
	case n <= inlineMax:
		return opcode.MakeControl(family, byte(n)), nil
	case n <= 0xFF:
		return opcode.MakeControl(family, uint8Code), []byte{byte(n)}
	case n <= 0xFFFF:
		return opcode.MakeControl(family, uint16Code), wire.PutUint16(nil, uint16(n))
	default:
		return opcode.MakeControl(family, varintCode), wire.PutVarint(nil, uint64(n))
	}
}
