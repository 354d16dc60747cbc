package encode

import "github.com/jksn-go/jksn/internal/options"

// Options configures a single Encode/EncodeTo call (spec §4.2 contract).
type Options struct {
	Header        bool
	CheckCircular bool
}

func defaultOptions() Options {
	return Options{Header: true, CheckCircular: true}
}

// Option configures Options, following mebo's internal/options functional
// option pattern.
type Option = options.Option[*Options]

// WithHeader toggles the 3-byte "jk!" magic prefix (default true).
func WithHeader(enabled bool) Option {
	return options.NoError(func(o *Options) { o.Header = enabled })
}

// WithCheckCircular toggles circular-container detection (default true).
func WithCheckCircular(enabled bool) Option {
	return options.NoError(func(o *Options) { o.CheckCircular = enabled })
}
