package encode

import (
	"fmt"
	"math"

	"github.com/jksn-go/jksn/node"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// buildArray builds an Array value's node: always the straight form, plus a
// transposed candidate when every element is a Map and at least one is
// non-empty (spec §4.2 step 6). The transposed form is adopted only if its
// depth-3 measured size is strictly smaller.
func (e *Encoder) buildArray(items []value.Value, active *identitySet) (*node.Node, error) {
	ptr, ok := sliceIdentity(items)
	if err := active.enter(ptr, ok); err != nil {
		return nil, err
	}
	defer active.leave(ptr, ok)

	straight, err := e.buildStraightArray(items, active)
	if err != nil {
		return nil, err
	}

	if allMapsNonEmpty(items) {
		transposed, err := e.buildTransposedArray(items, active)
		if err != nil {
			return nil, err
		}
		if transposed != nil && transposed.MeasureDepth3() < straight.MeasureDepth3() {
			return transposed, nil
		}
	}

	return straight, nil
}

func allMapsNonEmpty(items []value.Value) bool {
	anyNonEmpty := false
	for _, it := range items {
		if it.Kind() != value.KindMap {
			return false
		}
		if len(it.Map()) > 0 {
			anyNonEmpty = true
		}
	}

	return anyNonEmpty
}

func (e *Encoder) buildStraightArray(items []value.Value, active *identitySet) (*node.Node, error) {
	control, lf := lengthClass(len(items), opcode.FamilyArray, opcode.ArrayInlineMax, opcode.ArrayUint16, opcode.ArrayUint8, opcode.ArrayVarint)
	root := node.New(control).WithLengthField(lf)
	for _, it := range items {
		child, err := e.buildNode(it, active)
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
	}

	return root, nil
}

// transposedColumn holds one column's key and its per-row values, in
// first-occurrence order of the key across rows.
type transposedColumn struct {
	key    value.Value
	values []value.Value
}

func (e *Encoder) buildTransposedArray(rows []value.Value, active *identitySet) (*node.Node, error) {
	order := make([]string, 0)
	cols := make(map[string]*transposedColumn)

	for _, row := range rows {
		for _, entry := range row.Map() {
			tag := keyTag(entry.Key)
			if _, seen := cols[tag]; !seen {
				col := &transposedColumn{key: entry.Key, values: make([]value.Value, len(rows))}
				for i := range col.values {
					col.values[i] = value.Unspecified()
				}
				cols[tag] = col
				order = append(order, tag)
			}
		}
	}

	for ri, row := range rows {
		for _, entry := range row.Map() {
			cols[keyTag(entry.Key)].values[ri] = entry.Value
		}
	}

	n := len(order)
	if n == 0 {
		return nil, nil
	}

	control, lf := lengthClass(n, opcode.FamilyTransposed, opcode.TransposedInlineMax, opcode.TransposedUint16, opcode.TransposedUint8, opcode.TransposedVarint)
	root := node.New(control).WithLengthField(lf)
	for _, tag := range order {
		col := cols[tag]
		keyNode, err := e.buildNode(col.key, active)
		if err != nil {
			return nil, err
		}
		valuesNode, err := e.buildStraightArray(col.values, active)
		if err != nil {
			return nil, err
		}
		root.AddChild(keyNode)
		root.AddChild(valuesNode)
	}

	return root, nil
}

// keyTag renders a Value deterministically for use as a map key inside the
// transposition's column-dedup bookkeeping. It is never written to the
// wire — only used to group identical Map keys across rows.
func keyTag(v value.Value) string {
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
			s += keyTag(it) + ","
		}
		return s + ")"
	case value.KindMap:
		s := "m:("
		for _, en := range v.Map() {
			s += keyTag(en.Key) + "=" + keyTag(en.Value) + ","
		}
		return s + ")"
	default:
		return "?"
	}
}
