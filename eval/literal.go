package eval

import (
	"strconv"

	"github.com/juju/errors"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/token"
	"github.com/lumen-lang/lumen/value"
)

// parseLiteral materializes the Value a Literal node's lexeme denotes.
// Number parsing is deferred to here, rather than done in the parser,
// so the parser stays a pure syntax step with no numeric-format
// knowledge.
func parseLiteral(n *ast.Literal) (value.Value, error) {
	switch n.DataType {
	case token.Int:
		i, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			return nil, errors.Annotatef(err, "invalid integer literal %q", n.Text)
		}
		return value.Int{V: i}, nil
	case token.Float:
		f, err := strconv.ParseFloat(n.Text, 64)
		if err != nil {
			return nil, errors.Annotatef(err, "invalid float literal %q", n.Text)
		}
		return value.Float{V: f}, nil
	case token.Char:
		if len(n.Text) == 0 {
			return nil, errors.Errorf("empty char literal")
		}
		return value.Char{V: n.Text[0]}, nil
	case token.String:
		return value.String{V: n.Text}, nil
	}
	return nil, errors.Errorf("unknown literal data type %q", n.DataType)
}
