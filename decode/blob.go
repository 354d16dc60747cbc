package decode

import (
	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/internal/djb8"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// handleBlob decodes a family-0x5 blob node, including its dedup-reference
// form (spec §4.1, §4.3).
func (d *Decoder) handleBlob(c *cursor, low byte) (value.Value, error) {
	if low == opcode.BlobDedupRef {
		return d.readBlobDedupRef(c)
	}

	n, err := c.readCount(low, opcode.BlobUint16, opcode.BlobUint8, opcode.BlobVarint)
	if err != nil {
		return value.Value{}, err
	}
	raw, err := c.readN(n)
	if err != nil {
		return value.Value{}, err
	}
	d.updateBlobHash(raw)

	return value.Blob(raw), nil
}

func (d *Decoder) readBlobDedupRef(c *cursor) (value.Value, error) {
	slot, err := c.readByte()
	if err != nil {
		return value.Value{}, err
	}
	cached := d.blobHash[slot]
	if cached == nil {
		return value.Value{}, errs.NewDecodeError(errs.ErrEmptyDedupSlot, "")
	}

	return value.Blob(cached), nil
}

func (d *Decoder) updateBlobHash(raw []byte) {
	h := djb8.Sum(raw)
	d.blobHash[h] = append([]byte(nil), raw...)
}
