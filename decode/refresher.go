package decode

import (
	"github.com/jksn-go/jksn/opcode"
)

// handleRefresher runs a family-0x7 node's side effects: low nibble 0
// clears both dedup hash tables; any other value is an inline/uint16/
// uint8/varint count of values to decode and discard purely for their
// cache-priming side effects (spec §4.1, §4.3). It never contributes a
// decoded value itself.
func (d *Decoder) handleRefresher(c *cursor, cfg *Options, low byte) error {
	if low == opcode.RefresherClear {
		d.textHash = [256]*string{}
		d.blobHash = [256][]byte{}

		return nil
	}

	n, err := c.readCount(low, opcode.RefresherUint16, opcode.RefresherUint8, opcode.RefresherVarint)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := d.decodeValue(c, cfg); err != nil {
			return err
		}
	}

	return nil
}
