package decode

import (
	"fmt"

	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/internal/jsonbridge"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// handleSpecial decodes a family-0x0 node: null, false, true, or a
// JSON-literal whose payload is a Text re-parsed as a JSON document (spec
// §4.1, §4.3).
func (d *Decoder) handleSpecial(c *cursor, cfg *Options, low byte) (value.Value, error) {
	switch low {
	case opcode.SpecialNull0, opcode.SpecialNull1:
		return value.Null(), nil
	case opcode.SpecialFalse:
		return value.Bool(false), nil
	case opcode.SpecialTrue:
		return value.Bool(true), nil
	case opcode.SpecialJSON:
		inner, err := d.decodeValue(c, cfg)
		if err != nil {
			return value.Value{}, err
		}
		if inner.Kind() != value.KindText {
			return value.Value{}, errs.NewDecodeError(errs.ErrJSONLiteralNotText, inner.Kind().String())
		}

		return jsonbridge.FromJSON([]byte(inner.Text()))
	default:
		return value.Value{}, errs.NewDecodeError(errs.ErrUnknownOpcode, fmt.Sprintf("0x0%X", low))
	}
}
