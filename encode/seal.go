package encode

import (
	"github.com/jksn-go/jksn/checksum"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// Seal encodes v and wraps it with a whole-value checksum (spec §4.1
// integrity family, §4.3): the control byte always comes first; in prefix
// form the digest follows it and precedes the encoded value, in suffix form
// the digest follows the encoded value. The digest
// covers exactly the inner encoded value (never a "jk!" magic); when
// header is true, the magic is prepended once to the final sealed output,
// the same way it prefixes any other top-level stream.
func (e *Encoder) Seal(v value.Value, algo checksum.Algorithm, prefix bool, header bool, checkCircular bool) ([]byte, error) {
	encoded, err := e.Encode(v, WithHeader(false), WithCheckCircular(checkCircular))
	if err != nil {
		return nil, err
	}

	h, err := checksum.New(algo)
	if err != nil {
		return nil, err
	}
	h.Update(encoded)
	digest := h.Digest()

	var control byte
	if prefix {
		control = opcode.IntegrityPrefixBase + byte(algo)
	} else {
		control = opcode.IntegritySuffixBase + byte(algo)
	}

	out := make([]byte, 0, len(magicHeader)+1+len(digest)+len(encoded))
	if header {
		out = append(out, magicHeader...)
	}
	out = append(out, control)
	if prefix {
		out = append(out, digest...)
		out = append(out, encoded...)
	} else {
		out = append(out, encoded...)
		out = append(out, digest...)
	}

	return out, nil
}
