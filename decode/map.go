package decode

import (
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// handleMap decodes a family-0x9 map node: n (key, value) child pairs in
// wire order.
//
// Wire order is always insertion order; the OrderedMap option (spec §4.3
// contract, §9 open question 3) chooses what happens to a key repeated
// later in the same map. With OrderedMap true the stream is taken at face
// value and every pair survives, duplicates included, exactly as written.
// With OrderedMap false (the default, matching how a native dict assigned
// the same keys in sequence would end up) a later pair for a key already
// seen overwrites the earlier one in place, collapsing the map to its
// last-write-wins projection.
func (d *Decoder) handleMap(c *cursor, cfg *Options, low byte) (value.Value, error) {
	n, err := c.readCount(low, opcode.MapUint16, opcode.MapUint8, opcode.MapVarint)
	if err != nil {
		return value.Value{}, err
	}

	entries, err := d.decodeEntries(c, cfg, n)
	if err != nil {
		return value.Value{}, err
	}
	if !cfg.OrderedMap {
		entries = collapseLastWriteWins(entries)
	}

	return value.Map(entries), nil
}

func (d *Decoder) decodeEntries(c *cursor, cfg *Options, n int) ([]value.MapEntry, error) {
	entries := make([]value.MapEntry, n)
	for i := 0; i < n; i++ {
		key, err := d.decodeValue(c, cfg)
		if err != nil {
			return nil, err
		}
		val, err := d.decodeValue(c, cfg)
		if err != nil {
			return nil, err
		}
		entries[i] = value.MapEntry{Key: key, Value: val}
	}

	return entries, nil
}

func collapseLastWriteWins(entries []value.MapEntry) []value.MapEntry {
	index := make(map[string]int, len(entries))
	out := make([]value.MapEntry, 0, len(entries))
	for _, en := range entries {
		tag := mapKeyTag(en.Key)
		if i, seen := index[tag]; seen {
			out[i] = en
			continue
		}
		index[tag] = len(out)
		out = append(out, en)
	}

	return out
}
