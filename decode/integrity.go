package decode

import (
	"bytes"

	"github.com/jksn-go/jksn/checksum"
	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// handleIntegrity decodes a checksum-sealed value (spec §4.1 integrity
// family, §4.3): for a prefix form the digest is read first and the
// wrapped value is decoded with a hasher tapped onto the cursor; for a
// suffix form the hasher is tapped on first and the digest trails the
// value. Either way the computed digest is compared against the one on the
// wire, failing with ChecksumError on mismatch.
func (d *Decoder) handleIntegrity(c *cursor, cfg *Options, control byte) (value.Value, error) {
	prefix := control >= opcode.IntegrityPrefixBase && control < opcode.IntegrityPrefixBase+6
	var algo checksum.Algorithm
	if prefix {
		algo = checksum.Algorithm(control - opcode.IntegrityPrefixBase)
	} else {
		algo = checksum.Algorithm(control - opcode.IntegritySuffixBase)
	}

	if prefix {
		want, err := c.readN(algo.Size())
		if err != nil {
			return value.Value{}, err
		}

		h, err := c.pushHash(algo)
		if err != nil {
			return value.Value{}, err
		}
		v, err := d.decodeValue(c, cfg)
		c.popHash()
		if err != nil {
			return value.Value{}, err
		}
		if got := h.Digest(); !bytes.Equal(want, got) {
			return value.Value{}, errs.NewChecksumError(algo.String(), want, got)
		}

		return v, nil
	}

	h, err := c.pushHash(algo)
	if err != nil {
		return value.Value{}, err
	}
	v, err := d.decodeValue(c, cfg)
	c.popHash()
	if err != nil {
		return value.Value{}, err
	}
	got := h.Digest()
	want, err := c.readN(algo.Size())
	if err != nil {
		return value.Value{}, err
	}
	if !bytes.Equal(want, got) {
		return value.Value{}, errs.NewChecksumError(algo.String(), want, got)
	}

	return v, nil
}
