package sparse

type options struct {
	initialCapacity int
}

// Option configures vector construction.
type Option func(*options)

// WithInitialCapacity presizes the store for n active entries so that the
// first n writes do not rehash.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}
