package encode

import (
	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/node"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// buildNode is the per-value dispatch point (spec §4.2 step 1): it routes
// to a type-specific node builder by Kind.
func (e *Encoder) buildNode(v value.Value, active *identitySet) (*node.Node, error) {
	switch v.Kind() {
	case value.KindNull:
		return node.New(opcode.MakeControl(opcode.FamilySpecial, opcode.SpecialNull1)), nil
	case value.KindBool:
		if v.Bool() {
			return node.New(opcode.MakeControl(opcode.FamilySpecial, opcode.SpecialTrue)), nil
		}

		return node.New(opcode.MakeControl(opcode.FamilySpecial, opcode.SpecialFalse)), nil
	case value.KindInt:
		return e.buildInt(v.BigInt()), nil
	case value.KindFloat:
		return e.buildFloat(v.Float()), nil
	case value.KindText:
		return e.buildText(v.Text()), nil
	case value.KindBlob:
		return e.buildBlob(v.Blob()), nil
	case value.KindArray:
		return e.buildArray(v.Array(), active)
	case value.KindMap:
		return e.buildMap(v.Map(), active)
	case value.KindUnspecified:
		return node.New(opcode.MakeControl(opcode.FamilyTransposed, opcode.TransposedUnspecified)), nil
	default:
		return nil, errs.NewEncodeError(errs.ErrUnsupportedValue, v.Kind().String())
	}
}
