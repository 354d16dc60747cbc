// Package wire implements the primitive codecs shared by the encoder and
// decoder: fixed-width big-endian unsigned integers (widths 1/2/4) and the
// self-terminating unsigned varint used by the "F" length-class and the
// 0xE/0xF integer sub-opcodes.
//
// Unlike mebo's endian.EndianEngine, JKSN's wire grammar fixes big-endian
// byte order for every multi-byte field (spec §4.1); there is no
// configurable endianness to abstract over, so this package exposes plain
// functions instead of an engine interface.
package wire

import (
	"encoding/binary"

	"github.com/jksn-go/jksn/errs"
)

// PutUint8 appends a single byte.
func PutUint8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

// PutUint16 appends a big-endian uint16.
func PutUint16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

// PutUint32 appends a big-endian uint32.
func PutUint32(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

// ReadUint8 reads one byte from src.
func ReadUint8(src []byte) (uint8, error) {
	if len(src) < 1 {
		return 0, errs.ErrUnexpectedEOF
	}

	return src[0], nil
}

// ReadUint16 reads a big-endian uint16 from src.
func ReadUint16(src []byte) (uint16, error) {
	if len(src) < 2 {
		return 0, errs.ErrUnexpectedEOF
	}

	return binary.BigEndian.Uint16(src), nil
}

// ReadUint32 reads a big-endian uint32 from src.
func ReadUint32(src []byte) (uint32, error) {
	if len(src) < 4 {
		return 0, errs.ErrUnexpectedEOF
	}

	return binary.BigEndian.Uint32(src), nil
}

// PutVarint appends the minimal self-terminating varint encoding of v: 7
// bits per byte, big-endian (most significant group first), continuation
// bit (0x80) set on every byte except the last.
func PutVarint(dst []byte, v uint64) []byte {
	// Count how many 7-bit groups v needs (at least one, even for v==0).
	n := 1
	for t := v >> 7; t != 0; t >>= 7 {
		n++
	}

	start := len(dst)
	dst = append(dst, make([]byte, n)...)
	for i := n - 1; i >= 0; i-- {
		b := byte(v & 0x7f)
		v >>= 7
		if i != n-1 {
			b |= 0x80
		}
		dst[start+i] = b
	}

	return dst
}

// VarintLen returns the number of bytes PutVarint would emit for v, without
// allocating.
func VarintLen(v uint64) int {
	n := 1
	for t := v >> 7; t != 0; t >>= 7 {
		n++
	}

	return n
}

// ReadVarint reads a self-terminating varint from src, returning the value
// and the number of bytes consumed.
func ReadVarint(src []byte) (uint64, int, error) {
	var v uint64
	for i, b := range src {
		v = (v << 7) | uint64(b&0x7f)
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
		if i == 9 {
			// 10 groups of 7 bits covers all of uint64; a longer run is malformed.
			return 0, 0, errs.ErrMalformedVarint
		}
	}

	return 0, 0, errs.ErrUnexpectedEOF
}
