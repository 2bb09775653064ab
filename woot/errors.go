package woot

import "errors"

// Errors returned by Sequence operations.
var (
	// ErrIndexOutOfRange is returned by GenerateInsert and GenerateDelete
	// when the requested visible index has no corresponding element.
	ErrIndexOutOfRange = errors.New("woot: index out of range")
)
