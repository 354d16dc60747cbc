package encode

import (
	"encoding/binary"
	"math"

	"github.com/jksn-go/jksn/node"
	"github.com/jksn-go/jksn/opcode"
)

// buildFloat builds the float node for f (spec §4.2 step 3). NaN and ±Inf
// get dedicated opcodes; every other finite value emits as an IEEE-754
// double. Single precision is read-only on this wire (decoder-only).
func (e *Encoder) buildFloat(f float64) *node.Node {
	switch {
	case math.IsNaN(f):
		return node.New(opcode.MakeControl(opcode.FamilyFloat, opcode.FloatNaN))
	case math.IsInf(f, 1):
		return node.New(opcode.MakeControl(opcode.FamilyFloat, opcode.FloatPosInf))
	case math.IsInf(f, -1):
		return node.New(opcode.MakeControl(opcode.FamilyFloat, opcode.FloatNegInf))
	default:
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, math.Float64bits(f))

		return node.New(opcode.MakeControl(opcode.FamilyFloat, opcode.FloatDouble)).WithPayload(buf)
	}
}
