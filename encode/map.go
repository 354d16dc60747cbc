package encode

import (
	"github.com/jksn-go/jksn/node"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// buildMap builds a Map value's node: inline length class selection,
// emitting (key, value) child pairs in iteration order (spec §4.2 step 7).
func (e *Encoder) buildMap(entries []value.MapEntry, active *identitySet) (*node.Node, error) {
	ptr, ok := sliceIdentity(entries)
	if err := active.enter(ptr, ok); err != nil {
		return nil, err
	}
	defer active.leave(ptr, ok)

	control, lf := lengthClass(len(entries), opcode.FamilyMap, opcode.MapInlineMax, opcode.MapUint16, opcode.MapUint8, opcode.MapVarint)
	root := node.New(control).WithLengthField(lf)
	for _, entry := range entries {
		keyNode, err := e.buildNode(entry.Key, active)
		if err != nil {
			return nil, err
		}
		valNode, err := e.buildNode(entry.Value, active)
		if err != nil {
			return nil, err
		}
		root.AddChild(keyNode)
		root.AddChild(valNode)
	}

	return root, nil
}
