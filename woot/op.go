package woot

import (
	"github.com/go-woot/woot/id"
	"github.com/go-woot/woot/optional"
)

// Insert is the payload of an insertion operation: the element to integrate,
// carrying the neighbour hints it was generated against.
type Insert[S id.Site[S], T any] struct {
	Elem Element[S, T]
}

// Delete is the payload of a deletion operation: the element to mark
// invisible. Only its ID is significant; the Visible flag it carries over
// the wire is ignored by the receiving replica.
type Delete[S id.Site[S], T any] struct {
	Elem Element[S, T]
}

// Op is a WOOT operation: either an Insert or a Delete of an element. It
// embeds an Either so that the two alternatives are mutually exclusive by
// construction, the same guarantee a tagged variant gives in languages with
// closed sum types.
type Op[S id.Site[S], T any] struct {
	optional.Either[Insert[S, T], Delete[S, T]]
}

// InsertOp wraps e as an Insert operation.
func InsertOp[S id.Site[S], T any](e Element[S, T]) Op[S, T] {
	return Op[S, T]{optional.Left[Insert[S, T], Delete[S, T]](Insert[S, T]{Elem: e})}
}

// DeleteOp wraps e as a Delete operation.
func DeleteOp[S id.Site[S], T any](e Element[S, T]) Op[S, T] {
	return Op[S, T]{optional.Right[Insert[S, T], Delete[S, T]](Delete[S, T]{Elem: e})}
}

// opElement returns the element carried by op, regardless of its tag.
func opElement[S id.Site[S], T any](op Op[S, T]) Element[S, T] {
	if ins, ok := op.Left(); ok {
		return ins.Elem
	}
	del, _ := op.Right()
	return del.Elem
}

// OpEqual reports whether a and b are the same operation: same tag, same
// element identifier. The Visible flag and hints do not participate.
func OpEqual[S id.Site[S], T any](a, b Op[S, T]) bool {
	if a.IsLeft() != b.IsLeft() {
		return false
	}
	return opElement(a).ID.Equal(opElement(b).ID)
}
