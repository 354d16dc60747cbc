package decode

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/internal/djb8"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// handleText16 decodes a family-0x3 UTF-16LE text node, including its
// dedup-reference form (spec §4.1, §4.3).
func (d *Decoder) handleText16(c *cursor, low byte) (value.Value, error) {
	if low == opcode.Text16DedupRef {
		return d.readTextDedupRef(c)
	}

	n, err := c.readCount(low, opcode.Text16Uint16, opcode.Text16Uint8, opcode.Text16Varint)
	if err != nil {
		return value.Value{}, err
	}
	raw, err := c.readN(n * 2)
	if err != nil {
		return value.Value{}, err
	}
	s := utf16leDecode(raw)
	d.updateTextHash(raw, s)

	return value.Text(s), nil
}

// handleText8 decodes a family-0x4 UTF-8 text node. Unlike 0x3, this family
// has no dedicated dedup-ref low nibble of its own: every dedup reference,
// regardless of which family originally produced the cached payload,
// travels as the fixed 0x3C control byte (spec glossary "Dedup ref";
// opcode.TextDedupControl).
func (d *Decoder) handleText8(c *cursor, low byte) (value.Value, error) {
	n, err := c.readCount(low, opcode.Text8Uint16, opcode.Text8Uint8, opcode.Text8Varint)
	if err != nil {
		return value.Value{}, err
	}
	raw, err := c.readN(n)
	if err != nil {
		return value.Value{}, err
	}
	s := string(raw)
	d.updateTextHash(raw, s)

	return value.Text(s), nil
}

func (d *Decoder) readTextDedupRef(c *cursor) (value.Value, error) {
	slot, err := c.readByte()
	if err != nil {
		return value.Value{}, err
	}
	cached := d.textHash[slot]
	if cached == nil {
		return value.Value{}, errs.NewDecodeError(errs.ErrEmptyDedupSlot, "")
	}

	return value.Text(*cached), nil
}

// updateTextHash mirrors the encoder's hash-table slot assignment: the
// DJB-8 hash of the just-decoded raw payload bytes selects the slot.
func (d *Decoder) updateTextHash(raw []byte, s string) {
	h := djb8.Sum(raw)
	d.textHash[h] = &s
}

func utf16leDecode(raw []byte) string {
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}

	return string(utf16.Decode(units))
}
