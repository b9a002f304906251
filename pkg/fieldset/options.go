package fieldset

import "github.com/google/uuid"

// Option customises a Builder.
type Option func(*options)

type options struct {
	labeler func(string) string
	nextID  func() string
}

func defaultOptions() options {
	return options{
		labeler: DefaultLabeler,
		nextID:  uuid.NewString,
	}
}

// WithLabeler overrides how display labels derive from machine names.
func WithLabeler(fn func(string) string) Option {
	return func(o *options) {
		if fn != nil {
			o.labeler = fn
		}
	}
}

// WithIDGenerator overrides the field ID source. The generator must return a
// fresh value per call; tests use it to make IDs deterministic.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.nextID = fn
		}
	}
}
