package set

// PNSet is a two-phase set: a pair of grow-only sets, positive and negative.
// add(x) grows positive; remove(x) grows negative. Conventional membership
// is positive \ negative, but Size, IsEmpty and Elements below are defined
// in terms of positive ∪ negative rather than that conventional view — see
// Present for the conventional one.
type PNSet[T comparable] struct {
	positive GSet[T]
	negative GSet[T]
}

// EmptyPNSet returns the empty PN-Set.
func EmptyPNSet[T comparable]() PNSet[T] {
	return PNSet[T]{positive: EmptyGSet[T](), negative: EmptyGSet[T]()}
}

// PNSetOf returns a PN-Set with the given elements added, none removed.
func PNSetOf[T comparable](xs ...T) PNSet[T] {
	s := EmptyPNSet[T]()
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}

// Add returns a set with x recorded in the positive component.
func (s PNSet[T]) Add(x T) PNSet[T] {
	return PNSet[T]{positive: s.positive.Add(x), negative: s.negative}
}

// Remove returns a set with x recorded in the negative component.
func (s PNSet[T]) Remove(x T) PNSet[T] {
	return PNSet[T]{positive: s.positive, negative: s.negative.Add(x)}
}

// Contains reports conventional membership: x was added and not removed.
func (s PNSet[T]) Contains(x T) bool {
	return s.positive.Contains(x) && !s.negative.Contains(x)
}

// Merge merges positive and negative componentwise.
func (s PNSet[T]) Merge(other PNSet[T]) PNSet[T] {
	return PNSet[T]{
		positive: s.positive.Merge(other.positive),
		negative: s.negative.Merge(other.negative),
	}
}

// Size is |positive| - |positive ∪ negative|. This is generally NOT the
// number of present elements (use Present for that): it is never positive,
// being minus the number of elements removed without ever being added.
func (s PNSet[T]) Size() int {
	union := s.positive.Merge(s.negative)
	return s.positive.Len() - union.Len()
}

// IsEmpty is true iff positive ∪ negative equals positive, i.e. every
// removed element was also added.
func (s PNSet[T]) IsEmpty() bool {
	union := s.positive.Merge(s.negative)
	return union.Len() == s.positive.Len()
}

// Elements is positive \ (positive ∪ negative), which is always empty since
// positive is a subset of the union. Use Present for a useful view.
func (s PNSet[T]) Elements() []T {
	union := s.positive.Merge(s.negative)
	var out []T
	for _, x := range s.positive.Elements() {
		if !union.Contains(x) {
			out = append(out, x)
		}
	}
	return out
}

// Present returns the conventionally-present members: positive \ negative.
// This is the recommended view when Size/IsEmpty/Elements above are not
// what's wanted.
func (s PNSet[T]) Present() []T {
	var out []T
	for _, x := range s.positive.Elements() {
		if !s.negative.Contains(x) {
			out = append(out, x)
		}
	}
	return out
}
