// Package causalgraph provides the per-site append-only "yarn" structure
// and the causal graph that maps sites to yarns. Atoms are identified by
// (site, index) and carry an explicit dependency set, independent of the
// WOOT sequence's own identifier scheme.
package causalgraph

import "fmt"

// AtomID identifies an atom within a causal graph: the site that created it
// and its 0-based position within that site's yarn.
type AtomID[S comparable] struct {
	Site  S
	Index uint32
}

// String renders an identifier as "site@index".
func (id AtomID[S]) String() string {
	return fmt.Sprintf("%v@%d", id.Site, id.Index)
}

// Atom is an immutable operation, identified and dated by AtomID, together
// with the set of identifiers it causally depends on.
type Atom[O any, S comparable] struct {
	Op   O
	ID   AtomID[S]
	Deps map[AtomID[S]]struct{}
}

// DepsOf returns a fresh dependency set built from the given identifiers,
// suitable for passing to Yarn.Insert.
func DepsOf[S comparable](ids ...AtomID[S]) map[AtomID[S]]struct{} {
	deps := make(map[AtomID[S]]struct{}, len(ids))
	for _, id := range ids {
		deps[id] = struct{}{}
	}
	return deps
}

func copyDeps[S comparable](deps map[AtomID[S]]struct{}) map[AtomID[S]]struct{} {
	next := make(map[AtomID[S]]struct{}, len(deps))
	for id := range deps {
		next[id] = struct{}{}
	}
	return next
}
