package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/value"
)

func TestNew_StartsAtDepthOne(t *testing.T) {
	s := New()
	assert.Equal(t, 1, s.Depth())
}

func TestPushPop_Balance(t *testing.T) {
	s := New()
	s.Push()
	s.Push()
	assert.Equal(t, 3, s.Depth())
	s.Pop()
	assert.Equal(t, 2, s.Depth())
	s.Pop()
	assert.Equal(t, 1, s.Depth())
}

func TestPop_GlobalFramePanics(t *testing.T) {
	s := New()
	assert.Panics(t, func() { s.Pop() })
}

func TestDeclare_ShadowsOuterInInnerFrame(t *testing.T) {
	s := New()
	s.Declare("x", value.Int{V: 1})

	s.Push()
	s.Declare("x", value.Int{V: 2})

	cell, ok := s.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Int{V: 2}, cell.V)

	s.Pop()
	cell, ok = s.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Int{V: 1}, cell.V, "outer binding is visible again once the shadowing frame pops")
}

func TestLookup_MissingNameIsNotFound(t *testing.T) {
	s := New()
	_, ok := s.Lookup("nope")
	assert.False(t, ok)
}

func TestLookup_InnerScansBeforeOuter(t *testing.T) {
	s := New()
	s.Declare("x", value.Int{V: 10})
	s.Push()
	s.Push()
	s.Declare("y", value.Int{V: 20})

	_, ok := s.Lookup("x")
	assert.True(t, ok, "an outer binding stays reachable from a deeply nested frame")

	cell, _ := s.Lookup("y")
	assert.Equal(t, value.Int{V: 20}, cell.V)
}

func TestDeclare_ReturnsTheNewCell(t *testing.T) {
	s := New()
	cell := s.Declare("x", value.Int{V: 5})
	looked, ok := s.Lookup("x")
	require.True(t, ok)
	assert.Same(t, cell, looked)
}
