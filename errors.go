package fixedbuf

import "github.com/pkg/errors"

// ErrOutOfRange is the cause of every bounds failure reported by this
// package: indexes, offsets and lengths outside a buffer's valid range.
// Callers can test for it with errors.Cause.
var ErrOutOfRange = errors.New("out of range")

func rangeErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOutOfRange, format, args...)
}
