package diagnostics

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumen-lang/lumen/parser"
)

func TestLexError_PlainOutput(t *testing.T) {
	var out strings.Builder
	p := NewPrinter(&out, false)
	p.LexError(7)
	assert.Equal(t, "Lexer error at: 7\n", out.String())
}

func TestParseErrors_OneLinePerDiagnostic(t *testing.T) {
	var out strings.Builder
	p := NewPrinter(&out, false)
	p.ParseErrors([]parser.Diagnostic{
		{Message: "Expected ';' after statement", Offset: 3},
		{Message: "Invalid expression", Offset: 9},
	})
	assert.Equal(t, "Expected ';' after statement at: 3\nInvalid expression at: 9\n", out.String())
}

func TestRuntimeError_NoOffset(t *testing.T) {
	var out strings.Builder
	p := NewPrinter(&out, false)
	p.RuntimeError(errors.New("Division by zero"))
	assert.Equal(t, "Division by zero\n", out.String())
}

func TestLine_ColorModeDoesNotAlterPlainText(t *testing.T) {
	// color.NoColor is typically forced true under `go test` (non-tty),
	// so colorized output degrades to the same plain text either way.
	var out strings.Builder
	p := NewPrinter(&out, true)
	p.RuntimeError(errors.New("boom"))
	assert.Contains(t, out.String(), "boom")
}
