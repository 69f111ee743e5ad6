package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorMode_SetValid(t *testing.T) {
	var m colorMode
	assert.NoError(t, m.Set("always"))
	assert.Equal(t, colorAlways, m)
	assert.Equal(t, "always", m.String())
}

func TestColorMode_SetInvalid(t *testing.T) {
	var m colorMode
	err := m.Set("sometimes")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestColorMode_Type(t *testing.T) {
	var m colorMode
	assert.Equal(t, "color", m.Type())
}

func TestResolveColor_ExplicitModesBypassIsatty(t *testing.T) {
	var out nopWriter
	assert.True(t, resolveColor("always", out))
	assert.False(t, resolveColor("never", out))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
