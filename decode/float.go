package decode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// handleFloat decodes a family-0x2 node. Single precision is accepted on
// decode even though the encoder never emits it (spec §4.1: "single
// precision is read-only"); long double (0xB) is rejected outright.
func (d *Decoder) handleFloat(c *cursor, low byte) (value.Value, error) {
	switch low {
	case opcode.FloatNaN:
		return value.Float(math.NaN()), nil
	case opcode.FloatDouble:
		b, err := c.readN(8)
		if err != nil {
			return value.Value{}, err
		}
		bits := binary.BigEndian.Uint64(b)

		return value.Float(math.Float64frombits(bits)), nil
	case opcode.FloatSingle:
		u, err := c.readUint32()
		if err != nil {
			return value.Value{}, err
		}

		return value.Float(float64(math.Float32frombits(u))), nil
	case opcode.FloatNegInf:
		return value.Float(math.Inf(-1)), nil
	case opcode.FloatPosInf:
		return value.Float(math.Inf(1)), nil
	case opcode.FloatLongDouble:
		return value.Value{}, errs.NewDecodeError(errs.ErrLongDoubleUnsupported, "")
	default:
		return value.Value{}, errs.NewDecodeError(errs.ErrUnknownOpcode, fmt.Sprintf("0x2%X", low))
	}
}
