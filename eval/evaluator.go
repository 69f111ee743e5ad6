// Package eval walks an AST produced by the parser, maintaining the
// scope stack, the function table, and the I/O streams print/input
// read and write against.
//
// AST dispatch is a plain type switch in Eval, not a second visitor
// layer — the value-level visitor pattern (unary/binary/cast/print) is
// a different mechanism serving a different purpose: specializing an
// operation per concrete value kind, where Go has no pattern matching
// on interface-typed sum variants as convenient as a type switch
// already provides for the AST.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/juju/errors"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/function"
	"github.com/lumen-lang/lumen/scope"
	"github.com/lumen-lang/lumen/value"
)

// controlReturn is the sentinel wrapper threaded through statement
// evaluation to implement non-local return without panic/recover. Every
// statement-evaluating method checks for it and, if seen, stops
// executing further statements in its own sequence, pops its own scope,
// and re-propagates it unchanged to its caller. A call frame is the
// only place a controlReturn is consumed rather than re-propagated.
type controlReturn struct {
	Value value.Value
}

func (controlReturn) Error() string { return "return outside function" }

// isReturn reports whether err is a controlReturn sentinel, and if so
// returns its carried value. The sentinel is never wrapped on its way
// up, so a direct type assertion suffices.
func isReturn(err error) (value.Value, bool) {
	if cr, ok := err.(*controlReturn); ok {
		return cr.Value, true
	}
	return nil, false
}

// Evaluator holds all interpreter state across one REPL session or one
// file run: the scope stack, function table, and the streams print and
// input read and write against.
type Evaluator struct {
	Scope     *scope.Scope
	Functions *function.Table
	Writer    io.Writer
	Reader    *bufio.Reader

	callDepth int
}

// New creates an Evaluator with a fresh global scope, an empty function
// table, and I/O wired to the process's stdout/stdin.
func New() *Evaluator {
	return &Evaluator{
		Scope:     scope.New(),
		Functions: function.NewTable(),
		Writer:    os.Stdout,
		Reader:    bufio.NewReader(os.Stdin),
	}
}

// Eval dispatches node to its evaluation rule by concrete type. The
// returned Value is Void for every pure statement; expressions return
// their result (possibly a Reference, left for the caller to
// dereference as needed).
func (e *Evaluator) Eval(node ast.Node) (value.Value, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return e.evalLiteral(n)
	case *ast.Identifier:
		return e.evalIdentifier(n)
	case *ast.Unary:
		return e.evalUnary(n)
	case *ast.Binary:
		return e.evalBinary(n)
	case *ast.Let:
		return e.evalLet(n)
	case *ast.Assignment:
		return e.evalAssignment(n)
	case *ast.If:
		return e.evalIf(n)
	case *ast.While:
		return e.evalWhile(n)
	case *ast.Print:
		return e.evalPrint(n)
	case *ast.Cast:
		return e.evalCast(n)
	case *ast.Input:
		return e.evalInput(n)
	case *ast.Block:
		return e.evalBlock(n)
	case *ast.Function:
		return e.evalFunction(n)
	case *ast.Call:
		return e.evalCall(n)
	case *ast.Return:
		return e.evalReturn(n)
	}
	return nil, errors.Errorf("unhandled node type %T", node)
}

// deref evaluates node and, if the result is a Reference, resolves it
// to the cell's current value.
func (e *Evaluator) deref(node ast.Node) (value.Value, error) {
	v, err := e.Eval(node)
	if err != nil {
		return nil, err
	}
	return value.Deref(v), nil
}

func (e *Evaluator) evalLiteral(n *ast.Literal) (value.Value, error) {
	return parseLiteral(n)
}

func (e *Evaluator) evalIdentifier(n *ast.Identifier) (value.Value, error) {
	cell, ok := e.Scope.Lookup(n.Name)
	if !ok {
		return nil, errors.Errorf("Symbol does not exist error")
	}
	return value.Reference{C: cell}, nil
}

func (e *Evaluator) evalUnary(n *ast.Unary) (value.Value, error) {
	operand, err := e.deref(n.Operand)
	if err != nil {
		return nil, err
	}
	return operand.Accept(unaryVisitor{op: n.Op})
}

func (e *Evaluator) evalBinary(n *ast.Binary) (value.Value, error) {
	lhs, err := e.deref(n.LHS)
	if err != nil {
		return nil, err
	}
	rhs, err := e.deref(n.RHS)
	if err != nil {
		return nil, err
	}
	return lhs.Accept(binaryVisitor{op: n.Op, other: rhs})
}

func (e *Evaluator) evalLet(n *ast.Let) (value.Value, error) {
	v, err := e.deref(n.Expr)
	if err != nil {
		return nil, err
	}
	e.Scope.Declare(n.Name, v)
	return value.Void{}, nil
}

func (e *Evaluator) evalAssignment(n *ast.Assignment) (value.Value, error) {
	cell, ok := e.Scope.Lookup(n.Target)
	if !ok {
		return nil, errors.Errorf("Symbol does not exist error")
	}
	v, err := e.deref(n.Expr)
	if err != nil {
		return nil, err
	}
	cell.V = v
	return value.Void{}, nil
}

func (e *Evaluator) evalIf(n *ast.If) (value.Value, error) {
	cond, err := e.deref(n.Cond)
	if err != nil {
		return nil, err
	}
	truthy, err := value.Truthy(cond)
	if err != nil {
		return nil, err
	}
	branch := n.Then
	if !truthy {
		branch = n.Else
	}
	if branch != nil {
		if _, err := e.Eval(branch); err != nil {
			return nil, err
		}
	}
	return value.Void{}, nil
}

func (e *Evaluator) evalWhile(n *ast.While) (value.Value, error) {
	for {
		cond, err := e.deref(n.Cond)
		if err != nil {
			return nil, err
		}
		truthy, err := value.Truthy(cond)
		if err != nil {
			return nil, err
		}
		if !truthy {
			return value.Void{}, nil
		}
		if _, err := e.Eval(n.Body); err != nil {
			return nil, err
		}
	}
}

func (e *Evaluator) evalPrint(n *ast.Print) (value.Value, error) {
	v, err := e.deref(n.Expr)
	if err != nil {
		return nil, err
	}
	rendered, err := v.Accept(printVisitor{})
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(e.Writer, ">> %s\n", rendered.String())
	return value.Void{}, nil
}

func (e *Evaluator) evalCast(n *ast.Cast) (value.Value, error) {
	v, err := e.deref(n.Expr)
	if err != nil {
		return nil, err
	}
	return v.Accept(castVisitor{target: n.TypeTag})
}

func (e *Evaluator) evalInput(n *ast.Input) (value.Value, error) {
	fmt.Fprint(e.Writer, "Input: ")
	line, err := e.Reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Trace(err)
	}
	line = trimNewline(line)
	return value.String{V: line}, nil
}

// evalBlock pushes a fresh scope, evaluates statements in source order,
// and pops the scope on every exit path: normal completion, an error,
// or a propagating controlReturn.
func (e *Evaluator) evalBlock(n *ast.Block) (value.Value, error) {
	e.Scope.Push()
	defer e.Scope.Pop()

	for _, stmt := range n.Stmts {
		if _, err := e.Eval(stmt); err != nil {
			return nil, err
		}
	}
	return value.Void{}, nil
}

func (e *Evaluator) evalFunction(n *ast.Function) (value.Value, error) {
	e.Functions.Define(&function.Function{Name: n.Name, Params: n.Params, Body: n.Body})
	return value.Void{}, nil
}

// evalCall resolves the callee, checks arity, evaluates every actual
// argument fully (dereferencing each) before binding any of them —
// so that later actuals never observe bindings written for earlier
// ones, since parameters land in the same fresh scope as the body's
// own Let statements — then runs the body and unwraps a propagating
// controlReturn into its carried value, or Void if the body fell
// through.
func (e *Evaluator) evalCall(n *ast.Call) (value.Value, error) {
	fn, ok := e.Functions.Lookup(n.Name)
	if !ok {
		return nil, errors.Errorf("Function does not exist")
	}
	if len(fn.Params) != len(n.Args) {
		return nil, errors.Errorf("Incorrect number of arguments in function call")
	}

	argValues := make([]value.Value, len(n.Args))
	for i, argExpr := range n.Args {
		v, err := e.deref(argExpr)
		if err != nil {
			return nil, err
		}
		argValues[i] = v
	}

	e.Scope.Push()
	e.callDepth++
	defer func() {
		e.callDepth--
		e.Scope.Pop()
	}()

	for i, param := range fn.Params {
		e.Scope.Declare(param, argValues[i])
	}

	for _, stmt := range fn.Body.Stmts {
		_, err := e.Eval(stmt)
		if err == nil {
			continue
		}
		if retVal, ok := isReturn(err); ok {
			return retVal, nil
		}
		return nil, err
	}

	return value.Void{}, nil
}

// evalReturn is only legal while callDepth is positive. It evaluates
// its optional expression, dereferences it, and wraps it in a
// controlReturn sentinel for the enclosing blocks to propagate
// unmodified up to the call frame that consumes it.
func (e *Evaluator) evalReturn(n *ast.Return) (value.Value, error) {
	if e.callDepth == 0 {
		return nil, errors.Errorf("Cannot return outside function")
	}

	if n.Expr == nil {
		return nil, &controlReturn{Value: value.Void{}}
	}

	v, err := e.deref(n.Expr)
	if err != nil {
		return nil, err
	}
	return nil, &controlReturn{Value: v}
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
