package encode

import (
	"github.com/jksn-go/jksn/internal/djb8"
	"github.com/jksn-go/jksn/node"
	"github.com/jksn-go/jksn/opcode"
)

// buildBlob builds the blob node for b (spec §4.2 step 5): same
// length-class selection as text, with the DJB-8 hash recorded for dedup.
func (e *Encoder) buildBlob(b []byte) *node.Node {
	control, lf := lengthClass(len(b), opcode.FamilyBlob, opcode.BlobInlineMax, opcode.BlobUint16, opcode.BlobUint8, opcode.BlobVarint)
	n := node.New(control).WithLengthField(lf).WithPayload(b)
	n.WithHash(djb8.Sum(b))

	return n
}
