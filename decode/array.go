package decode

import (
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// handleArray decodes a family-0x8 straight array node.
func (d *Decoder) handleArray(c *cursor, cfg *Options, low byte) (value.Value, error) {
	n, err := c.readCount(low, opcode.ArrayUint16, opcode.ArrayUint8, opcode.ArrayVarint)
	if err != nil {
		return value.Value{}, err
	}

	items := make([]value.Value, n)
	for i := 0; i < n; i++ {
		items[i], err = d.decodeValue(c, cfg)
		if err != nil {
			return value.Value{}, err
		}
	}

	return value.Array(items), nil
}
