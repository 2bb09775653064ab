package causalgraph

import "errors"

var (
	// ErrSiteMismatch is returned by Yarn.Merge when the operand yarns
	// belong to different sites.
	ErrSiteMismatch = errors.New("causalgraph: merge requires yarns of the same site")
	// ErrEmptyIterator is returned by Iterator.Next once an iterator has
	// been exhausted, including immediately for an empty yarn.
	ErrEmptyIterator = errors.New("causalgraph: iterator exhausted")
	// ErrUnsupportedMutation is returned by Yarn.Clear and Yarn.RetainAll:
	// a yarn is append-only and cannot be bulk-mutated in place. The
	// destructive GC utility is the separately named Yarn.Remove.
	ErrUnsupportedMutation = errors.New("causalgraph: yarn does not support this mutation")
)
