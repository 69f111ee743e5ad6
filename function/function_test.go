package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumen-lang/lumen/ast"
)

func TestTable_DefineAndLookup(t *testing.T) {
	table := NewTable()
	body := ast.NewBlock(0, nil)
	fn := &Function{Name: "add", Params: []string{"a", "b"}, Body: body}

	table.Define(fn)

	got, ok := table.Lookup("add")
	assert.True(t, ok)
	assert.Same(t, fn, got)
}

func TestTable_LookupMissingIsNotFound(t *testing.T) {
	table := NewTable()
	_, ok := table.Lookup("missing")
	assert.False(t, ok)
}

func TestTable_RedefinitionOverwrites(t *testing.T) {
	table := NewTable()
	table.Define(&Function{Name: "f", Params: []string{"x"}, Body: ast.NewBlock(0, nil)})
	table.Define(&Function{Name: "f", Params: []string{"x", "y"}, Body: ast.NewBlock(0, nil)})

	got, ok := table.Lookup("f")
	assert.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, got.Params)
}

func TestFunction_String(t *testing.T) {
	fn := &Function{Name: "add", Params: []string{"a", "b"}, Body: ast.NewBlock(0, nil)}
	assert.Equal(t, "func(add(a, b))", fn.String())
}

func TestFunction_StringNoParams(t *testing.T) {
	fn := &Function{Name: "f", Body: ast.NewBlock(0, nil)}
	assert.Equal(t, "func(f())", fn.String())
}
