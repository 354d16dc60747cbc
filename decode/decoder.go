// Package decode implements the JKSN decoder: opcode dispatch, the
// per-family readers, hash-table maintenance, tabular-transposition
// reconstruction, and checksum verification (spec §4.3).
package decode

import (
	"bytes"
	"io"
	"math/big"

	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/internal/options"
	"github.com/jksn-go/jksn/value"
)

// Decoder holds the stream-local state mirrored from the encoder's last-int
// register and dedup caches (spec §3): a decoded stream must be read with
// the same rolling state the encoder built it with. As with Encoder, this
// state is not reset between calls on the same instance (spec §9 open
// question 2), and a Decoder is not safe for concurrent use (spec §5).
//
// cur/curSrc carry the bufio-backed cursor across successive DecodeFrom
// calls on the same src: bufio.Reader's first Read fills its whole internal
// buffer from the underlying source, so a fresh cursor per call would strand
// any bytes read ahead of the value just decoded. Reusing the cursor while
// src is unchanged lets the next call resume exactly where the last one left
// off, the same way lastInt/textHash/blobHash persist.
type Decoder struct {
	lastInt  *big.Int
	textHash [256]*string
	blobHash [256][]byte

	cur    *cursor
	curSrc io.Reader
}

// New creates a fresh Decoder with empty stream-local state.
func New() *Decoder {
	return &Decoder{}
}

// Decode parses one value from data (spec §4.3 contract).
func (d *Decoder) Decode(data []byte, opts ...Option) (value.Value, error) {
	return d.DecodeFrom(bytes.NewReader(data), opts...)
}

// DecodeFrom parses one value from src (spec §4.3 contract).
func (d *Decoder) DecodeFrom(src io.Reader, opts ...Option) (value.Value, error) {
	cfg := defaultOptions()
	if err := options.Apply(&cfg, opts...); err != nil {
		return value.Value{}, err
	}

	c := d.cur
	if c == nil || d.curSrc != src {
		c = newCursor(src)
		d.cur = c
		d.curSrc = src
	}
	if cfg.Header {
		if err := c.probeHeader(); err != nil {
			return value.Value{}, wrapDecodeErr(err)
		}
	}

	v, err := d.decodeValue(c, &cfg)
	if err != nil {
		return value.Value{}, wrapDecodeErr(err)
	}

	return v, nil
}

func wrapDecodeErr(err error) error {
	if _, ok := err.(*errs.DecodeError); ok {
		return err
	}
	if _, ok := err.(*errs.ChecksumError); ok {
		return err
	}

	return errs.NewDecodeError(err, "")
}
