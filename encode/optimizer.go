package encode

import (
	"bytes"
	"math/big"

	"github.com/jksn-go/jksn/internal/djb8"
	"github.com/jksn-go/jksn/node"
	"github.com/jksn-go/jksn/opcode"
)

// optimize runs the stream-local optimizer pass over the node tree in
// depth-first document order (spec §4.2 step 8): absolute-integer leaves
// get a delta-rewrite attempt, text/blob leaves get a dedup-rewrite
// attempt, and every other node recurses into its children. Traversal
// order must match the order bytes will later be read during decode, since
// both passes mutate the encoder's stream-local state (last_int, hash
// tables) as they go.
func (e *Encoder) optimize(n *node.Node) {
	switch opcode.Family(n.Control) {
	case opcode.FamilyAbsInt:
		if n.Origin != nil {
			e.tryDeltaRewrite(n)
		}
	case opcode.FamilyText16, opcode.FamilyText8, opcode.FamilyBlob:
		e.tryDedupRewrite(n)
	default:
		for _, c := range n.Children {
			e.optimize(c)
		}
	}
}

// tryDeltaRewrite considers rewriting an absolute-integer node to the
// shortest 0xB-family delta form, adopting the rewrite only if it is
// strictly shorter, then unconditionally advances last_int (spec §4.2
// step 8, bullet 1).
func (e *Encoder) tryDeltaRewrite(n *node.Node) {
	value := n.Origin
	if e.lastInt != nil {
		delta := new(big.Int).Sub(value, e.lastInt)
		if absCmp(delta, value) < 0 {
			dControl, dLF := chooseDeltaInt(delta)
			if len(dLF) < len(n.LengthField) {
				n.Control = dControl
				n.LengthField = dLF
			}
		}
	}
	e.lastInt = new(big.Int).Set(value)
}

func absCmp(a, b *big.Int) int {
	return new(big.Int).Abs(a).Cmp(new(big.Int).Abs(b))
}

// tryDedupRewrite considers rewriting a text/blob leaf into a 2-byte dedup
// reference (control byte plus hash slot) when its payload matches the currently cached payload at its
// DJB-8 hash slot, otherwise stores the payload in that slot (spec §4.2
// step 8, bullet 2). Payloads of length <= 1 are never deduplicated.
func (e *Encoder) tryDedupRewrite(n *node.Node) {
	if len(n.Payload) <= 1 {
		return
	}

	isText := opcode.Family(n.Control) == opcode.FamilyText16 || opcode.Family(n.Control) == opcode.FamilyText8
	table := &e.blobHash
	if isText {
		table = &e.textHash
	}

	h := djb8.Sum(n.Payload)
	if stored := table[h]; stored != nil && bytes.Equal(stored, n.Payload) {
		if isText {
			n.Control = opcode.TextDedupControl
		} else {
			n.Control = opcode.BlobDedupControl
		}
		n.LengthField = []byte{h}
		n.Payload = nil

		return
	}

	table[h] = append([]byte(nil), n.Payload...)
}
