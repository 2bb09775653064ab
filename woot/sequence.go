package woot

import (
	"sort"

	"github.com/go-woot/woot/id"
	"github.com/go-woot/woot/optional"
)

// Sequence is a single replica of a WOOT list: a replica-local, mutable
// object. Concurrency between replicas is handled entirely by the merge
// semantics below; a Sequence itself is not safe for concurrent use by
// multiple goroutines and must be externally serialized if shared.
type Sequence[S id.Site[S], T any] struct {
	site  S
	clock uint64

	elements []Element[S, T]
	pending  []Op[S, T]

	integrated map[integratedKey[S]]struct{}
}

type integratedKey[S id.Site[S]] struct {
	isInsert bool
	elemID   id.ID[S]
}

// New creates an empty sequence owned by site. The internal list begins as
// [Start, End].
func New[S id.Site[S], T any](site S) *Sequence[S, T] {
	return &Sequence[S, T]{
		site:       site,
		elements:   []Element[S, T]{startElement[S, T](), endElement[S, T]()},
		integrated: make(map[integratedKey[S]]struct{}),
	}
}

// Site returns the site identifier owning this replica.
func (s *Sequence[S, T]) Site() S { return s.site }

// Clock returns the current per-site clock, advanced only by local
// generates.
func (s *Sequence[S, T]) Clock() uint64 { return s.clock }

// Len returns the number of internal elements, including tombstones and the
// two sentinels. It never decreases.
func (s *Sequence[S, T]) Len() int { return len(s.elements) }

// PendingLen returns the number of operations currently held in the pending
// queue.
func (s *Sequence[S, T]) PendingLen() int { return len(s.pending) }

// Snapshot returns an independent deep copy of the replica's current state,
// under the same site identity. It does not advance the clock or mint a new
// site: the copy keeps the original's site and clock value.
func (s *Sequence[S, T]) Snapshot() *Sequence[S, T] {
	cp := &Sequence[S, T]{
		site:       s.site,
		clock:      s.clock,
		elements:   append([]Element[S, T](nil), s.elements...),
		pending:    append([]Op[S, T](nil), s.pending...),
		integrated: make(map[integratedKey[S]]struct{}, len(s.integrated)),
	}
	for k := range s.integrated {
		cp.integrated[k] = struct{}{}
	}
	return cp
}

// -----

func (s *Sequence[S, T]) positionOf(target id.ID[S]) (int, bool) {
	for i, e := range s.elements {
		if e.ID.Equal(target) {
			return i, true
		}
	}
	return 0, false
}

func (s *Sequence[S, T]) visibleAt(i int) (Element[S, T], bool) {
	if i < 0 {
		var zero Element[S, T]
		return zero, false
	}
	count := -1
	for _, e := range s.elements {
		if e.Visible {
			count++
			if count == i {
				return e, true
			}
		}
	}
	var zero Element[S, T]
	return zero, false
}

func (s *Sequence[S, T]) visibleCount() int {
	n := 0
	for _, e := range s.elements {
		if e.Visible {
			n++
		}
	}
	return n
}

func (s *Sequence[S, T]) insertElementAt(e Element[S, T], pos int) {
	s.elements = append(s.elements, Element[S, T]{})
	copy(s.elements[pos+1:], s.elements[pos:])
	s.elements[pos] = e
}

func (s *Sequence[S, T]) markIntegrated(isInsert bool, elemID id.ID[S]) {
	s.integrated[integratedKey[S]{isInsert: isInsert, elemID: elemID}] = struct{}{}
}

func (s *Sequence[S, T]) isIntegrated(isInsert bool, elemID id.ID[S]) bool {
	_, ok := s.integrated[integratedKey[S]{isInsert: isInsert, elemID: elemID}]
	return ok
}

// +------------+
// | Generation |
// +------------+

// GenerateInsert inserts v so that it becomes the visible element at index i
// (0 <= i <= current visible length), advances the local clock, integrates
// the insertion locally, and returns the operation to broadcast.
func (s *Sequence[S, T]) GenerateInsert(i int, v T) (Op[S, T], error) {
	var zero Op[S, T]
	n := s.visibleCount()
	if i < 0 || i > n {
		return zero, ErrIndexOutOfRange
	}
	s.clock++

	prev := s.elements[0] // Start
	if i > 0 {
		prev, _ = s.visibleAt(i - 1)
	}
	next := s.elements[len(s.elements)-1] // End
	if i < n {
		next, _ = s.visibleAt(i)
	}

	e := Element[S, T]{
		ID:       id.ElementID(s.site, s.clock),
		Value:    optional.Some(v),
		Visible:  true,
		PrevHint: prev.ID,
		NextHint: next.ID,
	}
	s.integrateInsert(e, prev.ID, next.ID)
	return InsertOp(e), nil
}

// GenerateDelete deletes the visible element at index i (0 <= i < current
// visible length), integrates the deletion locally, and returns the
// operation to broadcast.
func (s *Sequence[S, T]) GenerateDelete(i int) (Op[S, T], error) {
	var zero Op[S, T]
	n := s.visibleCount()
	if i < 0 || i >= n {
		return zero, ErrIndexOutOfRange
	}
	e, _ := s.visibleAt(i)
	s.integrateDelete(e)
	return DeleteOp(e), nil
}

// +-------------+
// | Enqueue     |
// +-------------+

// Enqueue adds op to the pending queue unless it is already redundant: an
// Insert whose element is already present in the internal list, or an
// operation already sitting in the queue. This is a pre-filter, not a
// correctness guarantee — ApplyPending still guards against double
// application via the integrated set.
func (s *Sequence[S, T]) Enqueue(op Op[S, T]) {
	if ins, ok := op.Left(); ok {
		if _, found := s.positionOf(ins.Elem.ID); found {
			return
		}
	}
	for _, p := range s.pending {
		if OpEqual(p, op) {
			return
		}
	}
	s.pending = append(s.pending, op)
}

// +--------------+
// | Executability |
// +--------------+

func (s *Sequence[S, T]) isExecutable(op Op[S, T]) bool {
	if ins, ok := op.Left(); ok {
		_, pok := s.positionOf(ins.Elem.PrevHint)
		_, nok := s.positionOf(ins.Elem.NextHint)
		return pok && nok
	}
	del, _ := op.Right()
	_, ok := s.positionOf(del.Elem.ID)
	return ok
}

// +-------------+
// | Integration |
// +-------------+

// integrateInsert places e in the internal list according to its (possibly
// stale) neighbour hints, resolving concurrent-insert ambiguity by scanning
// for the first sibling whose identifier already sorts at or after e's —
// an iterative rendering of the recursive free-room rule, since each pass
// always narrows to an adjacent bracket and thus the base case.
func (s *Sequence[S, T]) integrateInsert(e Element[S, T], prevID, nextID id.ID[S]) {
	for {
		p, pok := s.positionOf(prevID)
		n, nok := s.positionOf(nextID)
		if !pok || !nok {
			return
		}
		if n-1 == p {
			s.insertElementAt(e, n)
			s.markIntegrated(true, e.ID)
			return
		}
		k := n
		for idx := p + 1; idx < n; idx++ {
			if s.elements[idx].ID.Compare(e.ID) >= 0 {
				k = idx
				break
			}
		}
		prevID = s.elements[k-1].ID
		nextID = s.elements[k].ID
	}
}

func (s *Sequence[S, T]) integrateDelete(e Element[S, T]) {
	i, ok := s.positionOf(e.ID)
	if !ok {
		return
	}
	s.elements[i].Visible = false
	s.markIntegrated(false, e.ID)
}

// +---------------+
// | Apply pending |
// +---------------+

// ApplyPending drains the pending queue, integrating every operation whose
// prerequisites are currently satisfied. It stops when the queue is empty,
// when no operation at the head is executable (blocked on prerequisites not
// yet delivered), or immediately after encountering an already-integrated
// operation at the head, leaving the rest of the queue for the next call.
func (s *Sequence[S, T]) ApplyPending() {
	for len(s.pending) > 0 {
		head := s.pending[0]
		if !s.isExecutable(head) {
			sort.SliceStable(s.pending, func(i, j int) bool {
				return s.isExecutable(s.pending[i]) && !s.isExecutable(s.pending[j])
			})
			head = s.pending[0]
			if !s.isExecutable(head) {
				return
			}
		}
		s.pending = s.pending[1:]

		elem := opElement(head)
		if s.isIntegrated(head.IsLeft(), elem.ID) {
			return
		}
		if ins, ok := head.Left(); ok {
			s.integrateInsert(ins.Elem, ins.Elem.PrevHint, ins.Elem.NextHint)
		} else {
			del, _ := head.Right()
			s.integrateDelete(del.Elem)
		}
	}
}

// +------------+
// | Projection |
// +------------+

// Value returns the visible projection of the sequence: the payload of every
// element that is both visible and carries a value, in list order. The two
// sentinels are filtered out because they never carry a value.
func (s *Sequence[S, T]) Value() []T {
	var out []T
	for _, e := range s.elements {
		if !e.Visible {
			continue
		}
		if v, ok := e.Value.Get(); ok {
			out = append(out, v)
		}
	}
	return out
}
