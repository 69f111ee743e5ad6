package eval

import (
	"github.com/juju/errors"

	"github.com/lumen-lang/lumen/value"
)

// binaryVisitor specializes a binary operator against the left operand's
// concrete kind. other is the already-evaluated, already-dereferenced
// right operand; for numeric left operands it is coerced to the left's
// type before the operator is applied (left-driven coercion), which is
// the source of the documented 0.9 && 1 / 1 && 0.9 asymmetry: casting
// is always toward the left operand's type, never a common supertype.
type binaryVisitor struct {
	op    string
	other value.Value
}

func (b binaryVisitor) VisitReference(r value.Reference) (value.Value, error) {
	return r.Load().Accept(b)
}

func (b binaryVisitor) VisitVoid(value.Void) (value.Value, error) {
	return nil, errors.Errorf("Value is void")
}

func (b binaryVisitor) VisitInt(lhs value.Int) (value.Value, error) {
	coerced, err := b.other.Accept(castVisitor{target: "int"})
	if err != nil {
		return nil, errors.Errorf("Types are not compatible in binary operation")
	}
	rhs := coerced.(value.Int)
	return intOp(b.op, lhs.V, rhs.V)
}

func (b binaryVisitor) VisitFloat(lhs value.Float) (value.Value, error) {
	coerced, err := b.other.Accept(castVisitor{target: "float"})
	if err != nil {
		return nil, errors.Errorf("Types are not compatible in binary operation")
	}
	rhs := coerced.(value.Float)
	return floatOp(b.op, lhs.V, rhs.V)
}

func (b binaryVisitor) VisitChar(lhs value.Char) (value.Value, error) {
	coerced, err := b.other.Accept(castVisitor{target: "char"})
	if err != nil {
		return nil, errors.Errorf("Types are not compatible in binary operation")
	}
	rhs := coerced.(value.Char)
	return intOp(b.op, int64(lhs.V), int64(rhs.V))
}

func (b binaryVisitor) VisitString(lhs value.String) (value.Value, error) {
	other := value.Deref(b.other)
	rhs, ok := other.(value.String)
	if !ok {
		return nil, errors.Errorf("Types are not compatible in binary operation")
	}
	switch b.op {
	case "+":
		return value.String{V: lhs.V + rhs.V}, nil
	case "==":
		return boolInt(lhs.V == rhs.V), nil
	}
	return nil, errors.Errorf("Binary operator is not supported on string")
}

func boolInt(b bool) value.Int {
	if b {
		return value.Int{V: 1}
	}
	return value.Int{V: 0}
}

// intOp evaluates op over two int64 operands. Integer division by zero
// is a runtime error rather than following Go's own panic-on-divide
// behavior, so it surfaces through the usual error channel instead of
// crashing the interpreter process.
func intOp(op string, lhs, rhs int64) (value.Value, error) {
	switch op {
	case "+":
		return value.Int{V: lhs + rhs}, nil
	case "-":
		return value.Int{V: lhs - rhs}, nil
	case "*":
		return value.Int{V: lhs * rhs}, nil
	case "/":
		if rhs == 0 {
			return nil, errors.Errorf("Division by zero")
		}
		return value.Int{V: lhs / rhs}, nil
	case "==":
		return boolInt(lhs == rhs), nil
	case "<=":
		return boolInt(lhs <= rhs), nil
	case ">=":
		return boolInt(lhs >= rhs), nil
	case "<":
		return boolInt(lhs < rhs), nil
	case ">":
		return boolInt(lhs > rhs), nil
	case "&&":
		return boolInt(lhs != 0 && rhs != 0), nil
	case "||":
		return boolInt(lhs != 0 || rhs != 0), nil
	}
	return nil, errors.Errorf("Binary operator is not supported on type")
}

// floatOp evaluates op over two float64 operands. Division by zero
// follows IEEE-754 (±Inf or NaN), matching the host numeric model.
func floatOp(op string, lhs, rhs float64) (value.Value, error) {
	switch op {
	case "+":
		return value.Float{V: lhs + rhs}, nil
	case "-":
		return value.Float{V: lhs - rhs}, nil
	case "*":
		return value.Float{V: lhs * rhs}, nil
	case "/":
		return value.Float{V: lhs / rhs}, nil
	case "==":
		return boolInt(lhs == rhs), nil
	case "<=":
		return boolInt(lhs <= rhs), nil
	case ">=":
		return boolInt(lhs >= rhs), nil
	case "<":
		return boolInt(lhs < rhs), nil
	case ">":
		return boolInt(lhs > rhs), nil
	case "&&":
		return boolInt(lhs != 0 && rhs != 0), nil
	case "||":
		return boolInt(lhs != 0 || rhs != 0), nil
	}
	return nil, errors.Errorf("Binary operator is not supported on type")
}
