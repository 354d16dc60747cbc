// Package encode implements the JKSN encoder: value dispatch, minimal-size
// node construction, the tabular-transposition probe, the stream-local
// optimizer pass, and linearization to bytes (spec §4.2).
package encode

import (
	"io"
	"math/big"

	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/internal/options"
	"github.com/jksn-go/jksn/internal/pool"
	"github.com/jksn-go/jksn/value"
)

// magicHeader is the 3-byte "jk!" magic prefix (spec §4.1, §6).
var magicHeader = []byte{0x6A, 0x6B, 0x21}

// Encoder holds the stream-local state shared across successive Encode
// calls on the same instance: the rolling last-integer register and the
// two 256-slot dedup caches (spec §3). This state is NOT reset between
// calls — reusing an instance across independent streams deliberately
// carries cache lineage forward (spec §3, §9 open question 2); callers
// that need isolation should create a fresh Encoder per stream.
//
// An Encoder is not safe for concurrent use (spec §5).
type Encoder struct {
	lastInt  *big.Int
	textHash [256][]byte
	blobHash [256][]byte
}

// New creates a fresh Encoder with empty stream-local state.
func New() *Encoder {
	return &Encoder{}
}

// Encode serializes v to a new byte slice (spec §4.2 contract).
func (e *Encoder) Encode(v value.Value, opts ...Option) ([]byte, error) {
	cfg := defaultOptions()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	root, err := e.buildNode(v, newIdentitySet(cfg.CheckCircular))
	if err != nil {
		return nil, wrapEncodeErr(err)
	}
	e.optimize(root)

	size := root.Size()
	if cfg.Header {
		size += len(magicHeader)
	}

	bb := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(bb)
	bb.Grow(size)
	if cfg.Header {
		bb.MustWrite(magicHeader)
	}
	bb.B = root.AppendTo(bb.B)

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

// EncodeTo serializes v directly to sink (spec §4.2 contract). A write
// failure is reported as errs.ErrSinkWrite; any bytes already written are
// not rewound (spec §7).
func (e *Encoder) EncodeTo(sink io.Writer, v value.Value, opts ...Option) error {
	out, err := e.Encode(v, opts...)
	if err != nil {
		return err
	}
	if _, err := sink.Write(out); err != nil {
		return errs.NewEncodeError(errs.ErrSinkWrite, err.Error())
	}

	return nil
}

func wrapEncodeErr(err error) error {
	if _, ok := err.(*errs.EncodeError); ok {
		return err
	}

	return errs.NewEncodeError(err, "")
}
