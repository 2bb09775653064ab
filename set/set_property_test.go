package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/go-woot/woot/set"
)

func genGSet(t *rapid.T, label string) set.GSet[int] {
	n := rapid.IntRange(0, 8).Draw(t, label+"-n").(int)
	s := set.EmptyGSet[int]()
	for i := 0; i < n; i++ {
		x := rapid.IntRange(0, 5).Draw(t, label+"-x").(int)
		s = s.Add(x)
	}
	return s
}

func TestPropertyGSetLatticeLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genGSet(t, "a")
		b := genGSet(t, "b")
		c := genGSet(t, "c")

		assert.ElementsMatch(t, a.Merge(b).Elements(), b.Merge(a).Elements())
		assert.ElementsMatch(t, a.Merge(a).Elements(), a.Elements())
		assert.ElementsMatch(t,
			a.Merge(b).Merge(c).Elements(),
			a.Merge(b.Merge(c)).Elements(),
		)
	})
}

func genPNSet(t *rapid.T, label string) set.PNSet[int] {
	n := rapid.IntRange(0, 8).Draw(t, label+"-n").(int)
	s := set.EmptyPNSet[int]()
	for i := 0; i < n; i++ {
		x := rapid.IntRange(0, 5).Draw(t, label+"-x").(int)
		if rapid.Bool().Draw(t, label+"-rm").(bool) {
			s = s.Remove(x)
		} else {
			s = s.Add(x)
		}
	}
	return s
}

func TestPropertyPNSetLatticeLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genPNSet(t, "a")
		b := genPNSet(t, "b")
		c := genPNSet(t, "c")

		assert.ElementsMatch(t, a.Merge(b).Present(), b.Merge(a).Present())
		assert.ElementsMatch(t, a.Merge(a).Present(), a.Present())
		assert.ElementsMatch(t,
			a.Merge(b).Merge(c).Present(),
			a.Merge(b.Merge(c)).Present(),
		)
	})
}

func genMCSet(t *rapid.T, label string) set.MCSet[int] {
	n := rapid.IntRange(0, 8).Draw(t, label+"-n").(int)
	s := set.EmptyMCSet[int]()
	for i := 0; i < n; i++ {
		x := rapid.IntRange(0, 5).Draw(t, label+"-x").(int)
		if rapid.Bool().Draw(t, label+"-rm").(bool) {
			s = s.Remove(x)
		} else {
			s = s.Add(x)
		}
	}
	return s
}

func TestPropertyMCSetLatticeLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genMCSet(t, "a")
		b := genMCSet(t, "b")
		c := genMCSet(t, "c")

		assert.ElementsMatch(t, a.Merge(b).Elements(), b.Merge(a).Elements())
		assert.ElementsMatch(t, a.Merge(a).Elements(), a.Elements())
		assert.ElementsMatch(t,
			a.Merge(b).Merge(c).Elements(),
			a.Merge(b.Merge(c)).Elements(),
		)
	})
}
