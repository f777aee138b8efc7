package mdsite

// Option configures conversion behavior.
type Option func(*config)

type config struct {
	strictDelimiters bool
}

// WithStrictDelimiters makes every inline delimiter pass mandatory: a block
// whose text lacks a code, bold or italic marker fails with
// ErrNoDelimiterFound. By default a pass without markers is skipped.
func WithStrictDelimiters(enabled bool) Option {
	return func(cfg *config) {
		cfg.strictDelimiters = enabled
	}
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
