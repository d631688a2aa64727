package param

// Option customises how descriptors are derived.
type Option func(*config)

type config struct {
	names    []string
	receiver bool
}

// WithNames assigns parameter names by position. Blank or missing entries
// fall back to argN.
func WithNames(names ...string) Option {
	return func(c *config) {
		c.names = append([]string(nil), names...)
	}
}

// WithReceiver controls whether FromMethod keeps the receiver as the first
// parameter. It has no effect on plain function types or interface methods.
func WithReceiver(keep bool) Option {
	return func(c *config) {
		c.receiver = keep
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
