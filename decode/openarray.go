package decode

import (
	"fmt"

	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// handleOpenArray decodes the family-0xC lengthless array (0xC8): values
// are read until one equals the Unspecified sentinel, which terminates the
// array and is excluded from the result (spec §4.1, §4.3, testable
// property 7).
func (d *Decoder) handleOpenArray(c *cursor, cfg *Options, low byte) (value.Value, error) {
	if low != opcode.OpenArrayLengthless {
		return value.Value{}, errs.NewDecodeError(errs.ErrUnknownOpcode, fmt.Sprintf("0xC%X", low))
	}

	var items []value.Value
	for {
		v, err := d.decodeValue(c, cfg)
		if err != nil {
			return value.Value{}, err
		}
		if v.Kind() == value.KindUnspecified {
			break
		}
		items = append(items, v)
	}

	return value.Array(items), nil
}
