package windowsort

// options defines all configuration options for a WindowSort.
type options[E any] struct {
	buffer Buffer[E] // window buffer, nil selects the heap default
}

// Option is a function that configures a WindowSort.
type Option[E any] func(*options[E])

// WithBuffer sets the window buffer implementation. The buffer must be
// empty and must order elements consistently with the comparison passed to
// New; the comparison is still used to construct the default buffer when
// this option is absent.
func WithBuffer[E any](buf Buffer[E]) Option[E] {
	return func(o *options[E]) {
		o.buffer = buf
	}
}

// defaultOptions returns the default configuration.
func defaultOptions[E any]() options[E] {
	return options[E]{
		buffer: nil,
	}
}
