package decode

import (
	"fmt"
	"math"

	"github.com/jksn-go/jksn/value"
)

// mapKeyTag renders a Value deterministically for use as a map key inside
// last-write-wins collapsing. It is never written to the wire, mirroring the encoder's own keyTag helper used
// for the symmetric problem during transposition.
func mapKeyTag(v value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return "n"
	case value.KindUnspecified:
		return "u"
	case value.KindBool:
		return fmt.Sprintf("b:%v", v.Bool())
	case value.KindInt:
		return "i:" + v.BigInt().String()
	case value.KindFloat:
		return fmt.Sprintf("f:%x", math.Float64bits(v.Float()))
	case value.KindText:
		return "t:" + v.Text()
	case value.KindBlob:
		return "B:" + string(v.Blob())
	case value.KindArray:
		s := "a:("
		for _, it := range v.Array() {
			s += mapKeyTag(it) + ","
		}
		return s + ")"
	case value.KindMap:
		s := "m:("
		for _, en := range v.Map() {
			s += mapKeyTag(en.Key) + "=" + mapKeyTag(en.Value) + ","
		}
		return s + ")"
	default:
		return "?"
	}
}
