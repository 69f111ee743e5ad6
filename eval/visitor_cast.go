package eval

import (
	"strconv"

	"github.com/juju/errors"

	"github.com/lumen-lang/lumen/value"
)

// castVisitor specializes a cast to target ("int", "float", "char", or
// "string") per concrete source kind, grounded in the original
// interpreter's CastVisitor.
type castVisitor struct {
	target string
}

func (c castVisitor) VisitReference(r value.Reference) (value.Value, error) {
	return r.Load().Accept(c)
}

func (c castVisitor) VisitVoid(value.Void) (value.Value, error) {
	return nil, errors.Errorf("Value is void")
}

func (c castVisitor) VisitInt(v value.Int) (value.Value, error) {
	switch c.target {
	case "int":
		return v, nil
	case "float":
		return value.Float{V: float64(v.V)}, nil
	case "char":
		return value.Char{V: byte(((v.V % 256) + 256) % 256)}, nil
	case "string":
		return value.String{V: strconv.FormatInt(v.V, 10)}, nil
	}
	return nil, errors.Errorf("Cannot cast int to %s", c.target)
}

func (c castVisitor) VisitFloat(v value.Float) (value.Value, error) {
	switch c.target {
	case "int":
		return value.Int{V: int64(v.V)}, nil
	case "float":
		return v, nil
	case "string":
		return value.String{V: strconv.FormatFloat(v.V, 'g', -1, 64)}, nil
	}
	return nil, errors.Errorf("Cannot cast float to %s", c.target)
}

func (c castVisitor) VisitChar(v value.Char) (value.Value, error) {
	switch c.target {
	case "int":
		return value.Int{V: int64(v.V)}, nil
	case "float":
		return value.Float{V: float64(v.V)}, nil
	case "char":
		return v, nil
	case "string":
		return value.String{V: string(v.V)}, nil
	}
	return nil, errors.Errorf("Cannot cast char to %s", c.target)
}

func (c castVisitor) VisitString(v value.String) (value.Value, error) {
	switch c.target {
	case "int":
		i, err := strconv.ParseInt(v.V, 10, 64)
		if err != nil {
			return nil, errors.Errorf("String is not a valid number")
		}
		return value.Int{V: i}, nil
	case "float":
		f, err := strconv.ParseFloat(v.V, 64)
		if err != nil {
			return nil, errors.Errorf("String is not a valid number")
		}
		return value.Float{V: f}, nil
	case "string":
		return v, nil
	}
	return nil, errors.Errorf("Cannot convert string to %s", c.target)
}
