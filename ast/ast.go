// Package ast defines the closed set of syntax tree nodes the parser
// produces and the evaluator consumes. Every node owns its children
// outright and carries the byte offset of its leading token, so that a
// runtime error raised deep in a tree can still be reported against a
// source position.
package ast

import "github.com/lumen-lang/lumen/token"

// Node is implemented by every AST variant. Offset returns the byte
// position of the node's leading token, for diagnostics.
type Node interface {
	Offset() int
	node()
}

type base struct {
	Pos int
}

func (b base) Offset() int { return b.Pos }
func (base) node()         {}

// Literal is an integer, float, char, or string literal, carrying its
// lexeme text and data type so the evaluator can parse the text lazily
// rather than duplicating number-parsing in the parser.
type Literal struct {
	base
	DataType token.DataType
	Text     string
}

// Identifier names a variable to resolve through the scope stack.
type Identifier struct {
	base
	Name string
}

// Unary is the negation operator applied to one operand.
type Unary struct {
	base
	Op      string
	Operand Node
}

// Binary is a two-operand arithmetic, comparison, or logical expression.
type Binary struct {
	base
	Op  string
	LHS Node
	RHS Node
}

// Let introduces a new binding in the innermost scope.
type Let struct {
	base
	Name string
	Expr Node
}

// Assignment mutates an existing binding reachable from the current scope.
type Assignment struct {
	base
	Target string
	Expr   Node
}

// If evaluates Cond and runs Then or, if present, Else.
type If struct {
	base
	Cond Node
	Then Node
	Else Node // nil if no else branch
}

// While repeats Body while Cond is truthy.
type While struct {
	base
	Cond Node
	Body Node
}

// Print evaluates Expr and writes its representation to the configured
// output stream.
type Print struct {
	base
	Expr Node
}

// Cast converts the value of Expr to TypeTag ("int", "float", "char",
// or "string").
type Cast struct {
	base
	TypeTag string
	Expr    Node
}

// Input reads one line from the configured input stream at evaluation
// time, after writing the "Input: " prompt.
type Input struct {
	base
}

// Block is a sequence of statements evaluated in a fresh nested scope.
type Block struct {
	base
	Stmts []Node
}

// Function defines a named function: Body runs with Params bound to the
// call's actuals.
type Function struct {
	base
	Name   string
	Params []string
	Body   *Block
}

// Call invokes a previously defined function by name with Args as
// actual parameter expressions.
type Call struct {
	base
	Name string
	Args []Node
}

// Return exits the enclosing call non-locally. Expr is nil for a bare
// "ret" with no value.
type Return struct {
	base
	Expr Node // nil if no expression
}

// at positions a base at offset pos; embedded by every concrete node's
// constructor below.
func at(pos int) base { return base{Pos: pos} }

// NewLiteral builds a Literal node.
func NewLiteral(pos int, dataType token.DataType, text string) *Literal {
	return &Literal{base: at(pos), DataType: dataType, Text: text}
}

// NewIdentifier builds an Identifier node.
func NewIdentifier(pos int, name string) *Identifier {
	return &Identifier{base: at(pos), Name: name}
}

// NewUnary builds a Unary node.
func NewUnary(pos int, op string, operand Node) *Unary {
	return &Unary{base: at(pos), Op: op, Operand: operand}
}

// NewBinary builds a Binary node.
func NewBinary(pos int, op string, lhs, rhs Node) *Binary {
	return &Binary{base: at(pos), Op: op, LHS: lhs, RHS: rhs}
}

// NewLet builds a Let node.
func NewLet(pos int, name string, expr Node) *Let {
	return &Let{base: at(pos), Name: name, Expr: expr}
}

// NewAssignment builds an Assignment node.
func NewAssignment(pos int, target string, expr Node) *Assignment {
	return &Assignment{base: at(pos), Target: target, Expr: expr}
}

// NewIf builds an If node.
func NewIf(pos int, cond, then, els Node) *If {
	return &If{base: at(pos), Cond: cond, Then: then, Else: els}
}

// NewWhile builds a While node.
func NewWhile(pos int, cond, body Node) *While {
	return &While{base: at(pos), Cond: cond, Body: body}
}

// NewPrint builds a Print node.
func NewPrint(pos int, expr Node) *Print {
	return &Print{base: at(pos), Expr: expr}
}

// NewCast builds a Cast node.
func NewCast(pos int, typeTag string, expr Node) *Cast {
	return &Cast{base: at(pos), TypeTag: typeTag, Expr: expr}
}

// NewInput builds an Input node.
func NewInput(pos int) *Input {
	return &Input{base: at(pos)}
}

// NewBlock builds a Block node.
func NewBlock(pos int, stmts []Node) *Block {
	return &Block{base: at(pos), Stmts: stmts}
}

// NewFunction builds a Function node.
func NewFunction(pos int, name string, params []string, body *Block) *Function {
	return &Function{base: at(pos), Name: name, Params: params, Body: body}
}

// NewCall builds a Call node.
func NewCall(pos int, name string, args []Node) *Call {
	return &Call{base: at(pos), Name: name, Args: args}
}

// NewReturn builds a Return node.
func NewReturn(pos int, expr Node) *Return {
	return &Return{base: at(pos), Expr: expr}
}
