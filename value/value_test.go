package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeref_ResolvesReferenceOnce(t *testing.T) {
	cell := &Cell{V: Int{V: 42}}
	ref := Reference{C: cell}

	assert.Equal(t, Int{V: 42}, Deref(ref))
	assert.Equal(t, Int{V: 7}, Deref(Int{V: 7}), "a plain value passes through unchanged")
}

func TestReference_LoadAndStore(t *testing.T) {
	cell := &Cell{V: Int{V: 1}}
	ref := Reference{C: cell}

	ref.Store(Int{V: 99})
	assert.Equal(t, Int{V: 99}, ref.Load())
	assert.Equal(t, Int{V: 99}, cell.V, "Store mutates the underlying cell, not a copy")
}

func TestTruthy_Numeric(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"zero int", Int{V: 0}, false},
		{"nonzero int", Int{V: 1}, true},
		{"zero float", Float{V: 0}, false},
		{"nonzero float", Float{V: 0.1}, true},
		{"zero char", Char{V: 0}, false},
		{"nonzero char", Char{V: 'a'}, true},
	}
	for _, c := range cases {
		got, err := Truthy(c.v)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got, c.name)
	}
}

func TestTruthy_NonNumericIsError(t *testing.T) {
	_, err := Truthy(String{V: "x"})
	assert.Error(t, err)

	_, err = Truthy(Void{})
	assert.Error(t, err)
}

func TestTruthy_DereferencesFirst(t *testing.T) {
	ref := Reference{C: &Cell{V: Int{V: 5}}}
	got, err := Truthy(ref)
	assert.NoError(t, err)
	assert.True(t, got)
}

func TestKindAndString(t *testing.T) {
	assert.Equal(t, KindInt, Int{V: 1}.Kind())
	assert.Equal(t, "1", Int{V: 1}.String())

	assert.Equal(t, KindFloat, Float{V: 1.5}.Kind())
	assert.Equal(t, "1.5", Float{V: 1.5}.String())

	assert.Equal(t, KindChar, Char{V: 'z'}.Kind())
	assert.Equal(t, "z", Char{V: 'z'}.String())

	assert.Equal(t, KindString, String{V: "hi"}.Kind())
	assert.Equal(t, "hi", String{V: "hi"}.String())

	assert.Equal(t, KindVoid, Void{}.Kind())
	assert.Equal(t, "", Void{}.String())
}
