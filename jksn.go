// Package jksn provides the public façade over the encode and decode
// packages: one-shot Dumps/Dump/Loads/Load functions for callers with no
// need for stream-local state across calls, plus direct access to the
// instance-oriented Encoder/Decoder for callers that do (spec §6).
package jksn

import (
	"io"

	"github.com/jksn-go/jksn/decode"
	"github.com/jksn-go/jksn/encode"
	"github.com/jksn-go/jksn/value"
)

// Value is the JKSN value sum type (spec §3): re-exported so callers need
// not import the value package directly for the common case.
type Value = value.Value

// Encoder is the stateful encoder, re-exported for callers that reuse
// stream-local state (last-integer, dedup caches) across calls.
type Encoder = encode.Encoder

// Decoder is the stateful decoder counterpart to Encoder.
type Decoder = decode.Decoder

// EncodeOption configures a single Dumps/Dump call.
type EncodeOption = encode.Option

// DecodeOption configures a single Loads/Load call.
type DecodeOption = decode.Option

// WithHeader toggles the "jk!" magic prefix for encoding.
func WithHeader(enabled bool) EncodeOption { return encode.WithHeader(enabled) }

// WithCheckCircular toggles circular-container detection for encoding.
func WithCheckCircular(enabled bool) EncodeOption { return encode.WithCheckCircular(enabled) }

// WithDecodeHeader toggles probing for the "jk!" magic prefix on decode.
func WithDecodeHeader(enabled bool) DecodeOption { return decode.WithHeader(enabled) }

// WithOrderedMap toggles whether decoded maps preserve wire insertion
// order, duplicate keys included, instead of collapsing to last-write-wins.
func WithOrderedMap(enabled bool) DecodeOption { return decode.WithOrderedMap(enabled) }

// NewEncoder creates a fresh Encoder with empty stream-local state.
func NewEncoder() *Encoder { return encode.New() }

// NewDecoder creates a fresh Decoder with empty stream-local state.
func NewDecoder() *Decoder { return decode.New() }

// Dumps serializes v to a new byte slice using a fresh Encoder (spec §6).
func Dumps(v Value, opts ...EncodeOption) ([]byte, error) {
	return encode.New().Encode(v, opts...)
}

// Dump serializes v directly to sink using a fresh Encoder (spec §6).
func Dump(sink io.Writer, v Value, opts ...EncodeOption) error {
	return encode.New().EncodeTo(sink, v, opts...)
}

// Loads parses one value from data using a fresh Decoder (spec §6).
func Loads(data []byte, opts ...DecodeOption) (Value, error) {
	return decode.New().Decode(data, opts...)
}

// Load parses one value from src using a fresh Decoder (spec §6).
func Load(src io.Reader, opts ...DecodeOption) (Value, error) {
	return decode.New().DecodeFrom(src, opts...)
}
