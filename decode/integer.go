package decode

import (
	"fmt"
	"math/big"

	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// handleAbsInt decodes a family-0x1 absolute-integer node (spec §4.1) and
// updates last_int, the register the delta family reads against (spec §3).
func (d *Decoder) handleAbsInt(c *cursor, low byte) (value.Value, error) {
	v, err := d.readAbsInt(c, low)
	if err != nil {
		return value.Value{}, err
	}
	d.lastInt = new(big.Int).Set(v)

	return value.BigInt(v), nil
}

func (d *Decoder) readAbsInt(c *cursor, low byte) (*big.Int, error) {
	switch {
	case low <= opcode.AbsIntInlineMax:
		return big.NewInt(int64(low)), nil
	case low == opcode.AbsIntInt32:
		u, err := c.readUint32()
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(int32(u))), nil
	case low == opcode.AbsIntInt16:
		u, err := c.readUint16()
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(int16(u))), nil
	case low == opcode.AbsIntInt8:
		b, err := c.readByte()
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(int8(b))), nil
	case low == opcode.AbsIntNegVarint:
		mag, err := c.readVarintBig()
		if err != nil {
			return nil, err
		}
		return new(big.Int).Neg(mag), nil
	case low == opcode.AbsIntPosVarint:
		return c.readVarintBig()
	default:
		return nil, errs.NewDecodeError(errs.ErrUnknownOpcode, fmt.Sprintf("0x1%X", low))
	}
}

// handleDeltaInt decodes a family-0xB delta-integer node, failing if no
// prior absolute integer has set last_int (spec §4.3).
func (d *Decoder) handleDeltaInt(c *cursor, low byte) (value.Value, error) {
	if d.lastInt == nil {
		return value.Value{}, errs.NewDecodeError(errs.ErrNoLastInt, "")
	}

	delta, err := d.readDeltaInt(c, low)
	if err != nil {
		return value.Value{}, err
	}

	v := new(big.Int).Add(d.lastInt, delta)
	d.lastInt = v

	return value.BigInt(v), nil
}

func (d *Decoder) readDeltaInt(c *cursor, low byte) (*big.Int, error) {
	switch {
	case low <= opcode.DeltaPosMax:
		return big.NewInt(int64(low)), nil
	case low >= opcode.DeltaNegMin && low <= opcode.DeltaNegMax:
		return big.NewInt(int64(low) - 11), nil
	case low == opcode.DeltaInt32:
		u, err := c.readUint32()
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(int32(u))), nil
	case low == opcode.DeltaInt16:
		u, err := c.readUint16()
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(int16(u))), nil
	case low == opcode.DeltaInt8:
		b, err := c.readByte()
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(int8(b))), nil
	case low == opcode.DeltaNegVarint:
		mag, err := c.readVarintBig()
		if err != nil {
			return nil, err
		}
		return new(big.Int).Neg(mag), nil
	case low == opcode.DeltaPosVarint:
		return c.readVarintBig()
	default:
		return nil, errs.NewDecodeError(errs.ErrUnknownOpcode, fmt.Sprintf("0xB%X", low))
	}
}
