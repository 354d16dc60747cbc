package decode

import (
	"fmt"

	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// decodeValue reads one control byte and routes by family (spec §4.3). A
// hashtable-refresher node is not a value: it performs its side effects and
// the loop continues reading until a true value opcode is seen. A pragma
// (0xFF) is consumed, its following value discarded, and the loop likewise
// continues. This same loop backs every nested read (array elements, map
// keys/values, integrity's wrapped value, a column's values) since the spec
// imposes no different rule at depth.
func (d *Decoder) decodeValue(c *cursor, cfg *Options) (value.Value, error) {
	for {
		control, err := c.readByte()
		if err != nil {
			return value.Value{}, err
		}
		fam := opcode.Family(control)
		low := opcode.Low(control)

		switch fam {
		case opcode.FamilyRefresher:
			if err := d.handleRefresher(c, cfg, low); err != nil {
				return value.Value{}, err
			}
			continue
		case opcode.FamilyIntegrity:
			if control == opcode.Pragma {
				if _, err := d.decodeValue(c, cfg); err != nil {
					return value.Value{}, err
				}
				continue
			}
			return d.handleIntegrity(c, cfg, control)
		default:
			return d.handleValue(c, cfg, control, fam, low)
		}
	}
}

func (d *Decoder) handleValue(c *cursor, cfg *Options, control byte, fam, low byte) (value.Value, error) {
	switch fam {
	case opcode.FamilySpecial:
		return d.handleSpecial(c, cfg, low)
	case opcode.FamilyAbsInt:
		return d.handleAbsInt(c, low)
	case opcode.FamilyFloat:
		return d.handleFloat(c, low)
	case opcode.FamilyText16:
		return d.handleText16(c, low)
	case opcode.FamilyText8:
		return d.handleText8(c, low)
	case opcode.FamilyBlob:
		return d.handleBlob(c, low)
	case opcode.FamilyArray:
		return d.handleArray(c, cfg, low)
	case opcode.FamilyMap:
		return d.handleMap(c, cfg, low)
	case opcode.FamilyTransposed:
		return d.handleTransposed(c, cfg, low)
	case opcode.FamilyDeltaInt:
		return d.handleDeltaInt(c, low)
	case opcode.FamilyOpenArray:
		return d.handleOpenArray(c, cfg, low)
	default:
		return value.Value{}, errs.NewDecodeError(errs.ErrUnknownOpcode, fmt.Sprintf("0x%02X", control))
	}
}
