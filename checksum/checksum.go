// Package checksum provides the streaming hashers used for JKSN's whole-value
// integrity sealing (spec §4.1, §4.4, §6) and the EOF-strict reader the
// decoder reads through. Feeding decoded bytes into a Hasher is done by the
// decoder's own cursor, not by a reader in this package.
//
// The Hasher interface mirrors mebo's compress.Compressor/Decompressor
// pairing: a small interface and a factory keyed by a wire-level type byte.
// Here the factory is a switch (no registry map) and the wire-level key is
// the checksum family's low nibble (0x0 DJB-8 .. 0x5 SHA-512) rather than a
// compression type.
package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"hash/crc32"

	"github.com/jksn-go/jksn/internal/djb8"
)

// Algorithm identifies one of the five sealing algorithms plus DJB-8, in the
// fixed order spec §4.1 assigns to the F0-F5 / F8-FD opcode sub-ranges.
type Algorithm uint8

const (
	DJB8 Algorithm = iota
	CRC32
	MD5
	SHA1
	SHA256
	SHA512
)

// Size returns the digest length in bytes for the algorithm.
func (a Algorithm) Size() int {
	switch a {
	case DJB8:
		return 1
	case CRC32:
		return 4
	case MD5:
		return 16
	case SHA1:
		return 20
	case SHA256:
		return 32
	case SHA512:
		return 64
	default:
		return 0
	}
}

func (a Algorithm) String() string {
	switch a {
	case DJB8:
		return "DJB-8"
	case CRC32:
		return "CRC32"
	case MD5:
		return "MD5"
	case SHA1:
		return "SHA-1"
	case SHA256:
		return "SHA-256"
	case SHA512:
		return "SHA-512"
	default:
		return "unknown"
	}
}

// Hasher is the streaming interface every sealing algorithm satisfies.
type Hasher interface {
	Update(data []byte)
	Digest() []byte
}

// stdHasher adapts the standard library's hash.Hash to Hasher.
type stdHasher struct{ h hash.Hash }

func (s *stdHasher) Update(data []byte) { s.h.Write(data) } //nolint:errcheck // hash.Hash.Write never errors
func (s *stdHasher) Digest() []byte     { return s.h.Sum(nil) }

// New creates a fresh Hasher for the given algorithm.
func New(a Algorithm) (Hasher, error) {
	switch a {
	case DJB8:
		return djb8.New(), nil
	case CRC32:
		return &stdHasher{crc32.NewIEEE()}, nil
	case MD5:
		return &stdHasher{md5.New()}, nil
	case SHA1:
		return &stdHasher{sha1.New()}, nil
	case SHA256:
		return &stdHasher{sha256.New()}, nil
	case SHA512:
		return &stdHasher{sha512.New()}, nil
	default:
		return nil, fmt.Errorf("checksum: unsupported algorithm %d", a)
	}
}
