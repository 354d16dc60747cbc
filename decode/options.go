package decode

import "github.com/jksn-go/jksn/internal/options"

// Options configures a single Decode/DecodeFrom call (spec §4.3 contract).
type Options struct {
	Header     bool
	OrderedMap bool
}

func defaultOptions() Options {
	return Options{Header: true, OrderedMap: false}
}

// Option configures Options, following mebo's internal/options functional
// option pattern.
type Option = options.Option[*Options]

// WithHeader toggles probing for the 3-byte "jk!" magic prefix, rewinding
// if absent (default true).
func WithHeader(enabled bool) Option {
	return options.NoError(func(o *Options) { o.Header = enabled })
}

// WithOrderedMap toggles whether decoded maps keep every wire-order pair,
// duplicate keys included (true), or collapse a repeated key to its last
// value in the position of its first occurrence (false, the default).
// Entry order follows the wire either way.
func WithOrderedMap(enabled bool) Option {
	return options.NoError(func(o *Options) { o.OrderedMap = enabled })
}
