package flags

import "errors"

var (
	// ErrUnsafeValue is returned when a value would break out of its quoting.
	ErrUnsafeValue = errors.New("value cannot be quoted safely")
	// ErrUnknownStyle is returned for a quoting style the formatter does not know.
	ErrUnknownStyle = errors.New("unknown quoting style")
)
