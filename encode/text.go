package encode

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/jksn-go/jksn/internal/djb8"
	"github.com/jksn-go/jksn/node"
	"github.com/jksn-go/jksn/opcode"
)

// utf16leBytes encodes s as UTF-16LE code units.
func utf16leBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}

	return buf
}

// buildText builds the text node for s (spec §4.2 step 4): encode once as
// UTF-16LE and once as UTF-8, pick the shorter (ties favor UTF-8), then
// choose the inline/uint8/uint16/varint length class. The DJB-8 hash of the
// chosen payload is recorded for the optimizer's dedup pass.
func (e *Encoder) buildText(s string) *node.Node {
	utf8b := []byte(s)
	utf16b := utf16leBytes(s)

	var (
		control byte
		lf      []byte
		payload []byte
	)

	if len(utf16b) < len(utf8b) {
		n := len(utf16b) / 2
		control, lf = lengthClass(n, opcode.FamilyText16, opcode.Text16InlineMax, opcode.Text16Uint16, opcode.Text16Uint8, opcode.Text16Varint)
		payload = utf16b
	} else {
		n := len(utf8b)
		control, lf = lengthClass(n, opcode.FamilyText8, opcode.Text8InlineMax, opcode.Text8Uint16, opcode.Text8Uint8, opcode.Text8Varint)
		payload = utf8b
	}

	n := node.New(control).WithLengthField(lf).WithPayload(payload)
	n.WithHash(djb8.Sum(payload))

	return n
}
