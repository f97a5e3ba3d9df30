package binresource

import "errors"

// Error kinds. Every error returned by this package wraps exactly one of these.
var (
	ErrWriteMetadata = errors.New("binresource: cannot write metadata")
	ErrReadMetadata  = errors.New("binresource: cannot read metadata")
	ErrReader        = errors.New("binresource: reader")
	ErrWriter        = errors.New("binresource: writer")
)

// Causes, wrapped alongside a kind.
var (
	ErrFieldTooLong      = errors.New("field too long")
	ErrTruncated         = errors.New("short read")
	ErrIO                = errors.New("io error")
	ErrBadStream         = errors.New("bad stream")
	ErrInvalidMagic      = errors.New("wrong magic")
	ErrFutureVersion     = errors.New("header version in the future")
	ErrVersionMismatch   = errors.New("header version differs from the current one")
	ErrFinalized         = errors.New("writer finalized")
	ErrSeekBeforePayload = errors.New("seek before payload start")
)
