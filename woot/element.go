// Package woot implements the WOOT ("WithOut Operational Transform") linear
// sequence CRDT: a replicated, ordered list supporting commutative,
// idempotent, causality-respecting insert and delete operations across
// independent sites, following Oster et al.
package woot

import (
	"fmt"

	"github.com/go-woot/woot/id"
	"github.com/go-woot/woot/optional"
)

// Element is a single slot of a Sequence: a stable record carrying its
// identifier, an optional payload (absent only for the two sentinels), its
// visibility, and the neighbour hints it was inserted with.
//
// Elements are never physically removed once integrated — deletion only
// flips Visible to false, leaving a tombstone so later operations can still
// resolve their hints against it.
type Element[S id.Site[S], T any] struct {
	ID       id.ID[S]
	Value    optional.Option[T]
	Visible  bool
	PrevHint id.ID[S]
	NextHint id.ID[S]
}

func startElement[S id.Site[S], T any]() Element[S, T] {
	start, end := id.StartID[S](), id.EndID[S]()
	return Element[S, T]{ID: start, PrevHint: start, NextHint: end}
}

func endElement[S id.Site[S], T any]() Element[S, T] {
	start, end := id.StartID[S](), id.EndID[S]()
	return Element[S, T]{ID: end, PrevHint: start, NextHint: end}
}

func (e Element[S, T]) isSentinel() bool { return e.ID.Kind() != id.Elem }

func (e Element[S, T]) String() string {
	if e.isSentinel() {
		return e.ID.String()
	}
	v, _ := e.Value.Get()
	return fmt.Sprintf("%v=%v", e.ID, v)
}
