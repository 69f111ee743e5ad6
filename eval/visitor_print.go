package eval

import (
	"github.com/juju/errors"

	"github.com/lumen-lang/lumen/value"
)

// printVisitor produces the textual representation Print writes after
// the ">> " prefix, grounded in the original interpreter's PrintVisitor.
// It does not perform I/O itself: Eval's evalPrint writes the returned
// value's String() to the configured writer, keeping this visitor pure.
type printVisitor struct{}

func (printVisitor) VisitReference(r value.Reference) (value.Value, error) {
	return r.Load().Accept(printVisitor{})
}

func (printVisitor) VisitVoid(value.Void) (value.Value, error) {
	return nil, errors.Errorf("Value is void")
}

func (printVisitor) VisitInt(v value.Int) (value.Value, error)       { return v, nil }
func (printVisitor) VisitFloat(v value.Float) (value.Value, error)   { return v, nil }
func (printVisitor) VisitChar(v value.Char) (value.Value, error)     { return v, nil }
func (printVisitor) VisitString(v value.String) (value.Value, error) { return v, nil }
