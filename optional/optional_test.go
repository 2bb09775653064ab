package optional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-woot/woot/optional"
)

func TestOption(t *testing.T) {
	some := optional.Some(42)
	none := optional.None[int]()

	assert.True(t, some.IsSome())
	assert.False(t, some.IsNone())
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, some.MustGet())
	assert.Equal(t, 42, some.OrElse(-1))

	assert.True(t, none.IsNone())
	_, ok = none.Get()
	assert.False(t, ok)
	assert.Equal(t, -1, none.OrElse(-1))
}

func TestOptionMustGetPanicsOnNone(t *testing.T) {
	assert.Panics(t, func() {
		optional.None[string]().MustGet()
	})
}

func TestEither(t *testing.T) {
	left := optional.Left[string, int]("hi")
	right := optional.Right[string, int](7)

	assert.True(t, left.IsLeft())
	assert.False(t, left.IsRight())
	v, ok := left.Left()
	assert.True(t, ok)
	assert.Equal(t, "hi", v)
	_, ok = left.Right()
	assert.False(t, ok)

	assert.True(t, right.IsRight())
	n, ok := right.Right()
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	_, ok = right.Left()
	assert.False(t, ok)
}
