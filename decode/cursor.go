package decode

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math/big"

	"github.com/jksn-go/jksn/checksum"
	"github.com/jksn-go/jksn/errs"
)

// magicHeader mirrors encode's 3-byte "jk!" magic prefix (spec §4.1, §6).
var magicHeader = []byte{0x6A, 0x6B, 0x21}

// cursor is the decoder's byte-source abstraction: a single bufio.Reader
// for the whole decode lifetime gives it the Peek needed to probe-then-
// rewind the optional magic header, wrapped by checksum.StrictReader so
// every short read surfaces uniformly as errs.ErrUnexpectedEOF (spec §4.3,
// §7). A checksum seal (spec §4.1 integrity family) pushes a Hasher onto
// hashers for the duration of decoding the value it wraps, so every raw
// byte read in between is tapped into the digest — this is deliberately a
// tap on the one shared reader rather than a second nested bufio.Reader,
// which would read ahead past the sealed value's boundary and strand bytes
// the outer read (the trailing/leading digest itself) still needs.
type cursor struct {
	buf     *bufio.Reader
	strict  *checksum.StrictReader
	hashers []checksum.Hasher
}

func newCursor(r io.Reader) *cursor {
	buf := bufio.NewReader(r)

	return &cursor{buf: buf, strict: checksum.NewStrictReader(buf)}
}

// probeHeader consumes the magic prefix if present, leaving the stream
// untouched (a true rewind, since Peek does not advance the reader) when it
// is absent or the stream is too short to tell.
func (c *cursor) probeHeader() error {
	peeked, err := c.buf.Peek(len(magicHeader))
	if err != nil {
		return nil // too short to carry a header; nothing to consume
	}
	if bytes.Equal(peeked, magicHeader) {
		_, _ = c.buf.Discard(len(magicHeader))
	}

	return nil
}

// pushHash begins tapping every subsequent raw read into a fresh Hasher for
// algo, returning it so the caller can read its Digest() once popHash runs.
func (c *cursor) pushHash(algo checksum.Algorithm) (checksum.Hasher, error) {
	h, err := checksum.New(algo)
	if err != nil {
		return nil, err
	}
	c.hashers = append(c.hashers, h)

	return h, nil
}

// popHash stops tapping reads into the most recently pushed Hasher.
func (c *cursor) popHash() {
	c.hashers = c.hashers[:len(c.hashers)-1]
}

func (c *cursor) tap(b []byte) {
	for _, h := range c.hashers {
		h.Update(b)
	}
}

func (c *cursor) readByte() (byte, error) {
	b, err := c.strict.ReadByte()
	if err != nil {
		return 0, err
	}
	c.tap([]byte{b})

	return b, nil
}

func (c *cursor) readN(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if err := c.strict.ReadFull(buf); err != nil {
		return nil, err
	}
	c.tap(buf)

	return buf, nil
}

func (c *cursor) readUint16() (uint16, error) {
	b, err := c.readN(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.readN(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

// readVarint reads the self-terminating unsigned varint used by length
// classes, one byte at a time (the wire format gives no upfront length).
func (c *cursor) readVarint() (uint64, error) {
	var v uint64
	for i := 0; ; i++ {
		b, err := c.readByte()
		if err != nil {
			return 0, err
		}
		v = (v << 7) | uint64(b&0x7f)
		if b&0x80 == 0 {
			return v, nil
		}
		if i == 9 {
			return 0, errs.ErrMalformedVarint
		}
	}
}

// readVarintBig is readVarint's arbitrary-precision counterpart, used by
// the abs-int / delta-int varint sub-opcodes (spec §3).
func (c *cursor) readVarintBig() (*big.Int, error) {
	v := new(big.Int)
	for i := 0; ; i++ {
		b, err := c.readByte()
		if err != nil {
			return nil, err
		}
		v.Lsh(v, 7)
		v.Or(v, big.NewInt(int64(b&0x7f)))
		if b&0x80 == 0 {
			return v, nil
		}
		if i == 63 {
			return nil, errs.ErrMalformedVarint
		}
	}
}

// readCount reads the shared inline/uint16/uint8/varint length-class value
// given the control byte's low nibble already in hand (spec §4.1): most
// families encode a count or byte length this same way.
func (c *cursor) readCount(low, uint16Code, uint8Code, varintCode byte) (int, error) {
	switch low {
	case uint16Code:
		v, err := c.readUint16()
		return int(v), err
	case uint8Code:
		b, err := c.readByte()
		return int(b), err
	case varintCode:
		v, err := c.readVarint()
		return int(v), err
	default:
		return int(low), nil
	}
}
