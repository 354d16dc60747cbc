package checksum

import (
	"io"

	"github.com/jksn-go/jksn/errs"
)

// StrictReader wraps src so that any short read (io.ErrUnexpectedEOF or a
// Read returning fewer bytes than requested at EOF) surfaces as
// errs.ErrUnexpectedEOF, matching the decoder's EOF-strict contract
// (spec §4.3, §7).
type StrictReader struct {
	src io.Reader
}

// NewStrictReader wraps src.
func NewStrictReader(src io.Reader) *StrictReader {
	return &StrictReader{src: src}
}

// ReadFull reads exactly len(p) bytes from the underlying source or fails
// with errs.ErrUnexpectedEOF.
func (r *StrictReader) ReadFull(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := io.ReadFull(r.src, p)
	if err != nil || n != len(p) {
		return errs.ErrUnexpectedEOF
	}

	return nil
}

// ReadByte reads a single byte.
func (r *StrictReader) ReadByte() (byte, error) {
	var b [1]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}
