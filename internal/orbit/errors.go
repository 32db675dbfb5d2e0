package orbit

import (
	"errors"
	"fmt"
)

// Configuration errors. They are reported once, by [Validate] or [New],
// never while frames are being computed.
var (
	// ErrInvalidPeriod indicates an orbital period that is zero, negative or not finite.
	ErrInvalidPeriod = errors.New("orbit: period must be positive")

	// ErrInvalidRadius indicates a negative or non-finite orbital radius.
	ErrInvalidRadius = errors.New("orbit: radius must be non-negative")

	// ErrInvalidSize indicates a non-positive display size.
	ErrInvalidSize = errors.New("orbit: size must be positive")

	// ErrDuplicateBody indicates two bodies sharing one name.
	ErrDuplicateBody = errors.New("orbit: duplicate body name")

	// ErrNoBodies indicates an empty body set.
	ErrNoBodies = errors.New("orbit: no bodies configured")

	// ErrInvalidParams indicates an animation constant outside its valid range.
	ErrInvalidParams = errors.New("orbit: animation parameter out of range")
)

// ConfigError wraps a configuration error with the offending field.
type ConfigError struct {
	Body    string
	Field   string
	Value   float64
	Wrapped error
}

func (e *ConfigError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%v (%s=%g)", e.Wrapped, e.Field, e.Value)
	}
	return fmt.Sprintf("%v (body %q: %s=%g)", e.Wrapped, e.Body, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
