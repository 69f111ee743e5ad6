package eval

import (
	"github.com/juju/errors"

	"github.com/lumen-lang/lumen/value"
)

// unaryVisitor specializes the '-' operator per concrete value kind,
// grounded in the original interpreter's UnaryOperationVisitor.
type unaryVisitor struct {
	op string
}

func (u unaryVisitor) VisitInt(v value.Int) (value.Value, error) {
	return value.Int{V: -v.V}, nil
}

func (u unaryVisitor) VisitFloat(v value.Float) (value.Value, error) {
	return value.Float{V: -v.V}, nil
}

func (u unaryVisitor) VisitChar(v value.Char) (value.Value, error) {
	return value.Char{V: byte(-int(v.V))}, nil
}

func (u unaryVisitor) VisitString(value.String) (value.Value, error) {
	return nil, errors.Errorf("Cannot perform unary operation on string")
}

func (u unaryVisitor) VisitReference(r value.Reference) (value.Value, error) {
	return r.Load().Accept(u)
}

func (u unaryVisitor) VisitVoid(value.Void) (value.Value, error) {
	return nil, errors.Errorf("Value is void")
}
