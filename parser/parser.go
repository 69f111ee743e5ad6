// Package parser implements a recursive-descent parser with a small
// backtracking primitive, turning a token stream into a list of
// top-level statements.
//
// The grammar is precedence-climbing for expressions (logic →
// comparison → sum → product → unary → primary) and right-associative
// throughout: every binary rule recurses into itself (not a lower
// precedence level) for its right operand, matching the original
// source's parse_binary_expr loop structure reshaped into recursion.
package parser

import (
	"fmt"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/token"
)

// Diagnostic is one parser error: a message paired with the byte
// offset of the token that triggered it.
type Diagnostic struct {
	Message string
	Offset  int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at: %d", d.Message, d.Offset)
}

// Parser walks a fixed token slice with an index cursor and a
// save/restore pair for speculative parsing, mirroring the original
// source's m_index / save_index / load_index.
type Parser struct {
	tokens      []token.Token
	index       int
	saved       int
	diagnostics []Diagnostic
}

// New creates a Parser over tokens. tokens must end in an EOF token, as
// produced by lexer.Tokenize.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) current() token.Token { return p.tokens[p.index] }

func (p *Parser) peek(n int) token.Token {
	if p.index+n < len(p.tokens) {
		return p.tokens[p.index+n]
	}
	return p.tokens[len(p.tokens)-1] // EOF
}

func (p *Parser) advance() {
	if p.index < len(p.tokens)-1 {
		p.index++
	}
}

// save records the current cursor position for a later restore.
func (p *Parser) save() { p.saved = p.index }

// restore rewinds the cursor to the last save. Used when a speculative
// sub-parse fails and the parser needs to try a different production
// from the same starting point.
func (p *Parser) restore() { p.index = p.saved }

func (p *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Parse runs the full grammar over the token stream: a sequence of
// top-level statements separated by ';', with a trailing ';' optional
// before EOF. On any per-statement error, the parser records the
// diagnostic and resynchronizes by advancing to the next ';' or EOF,
// then continues parsing subsequent statements. Returns either the
// full statement list (diagnostics empty) or the diagnostic list
// (statements nil) — per spec, a non-empty diagnostic list suppresses
// evaluation of the entire batch.
func (p *Parser) Parse() ([]ast.Node, []Diagnostic) {
	var stmts []ast.Node

	for p.current().Kind != token.EOF {
		node, err := p.parseTopLevel()
		if err != nil {
			p.diagnostics = append(p.diagnostics, Diagnostic{Message: err.Error(), Offset: p.current().Offset})
			for p.current().IsNot(token.SPECIAL, ";") && p.current().Kind != token.EOF {
				p.advance()
			}
		} else {
			stmts = append(stmts, node)
		}

		if p.current().IsNot(token.SPECIAL, ";") {
			if p.current().Kind != token.EOF {
				p.diagnostics = append(p.diagnostics, Diagnostic{Message: "Expected ';' after statement", Offset: p.current().Offset})
			}
		} else {
			p.advance()
		}
	}

	if len(p.diagnostics) > 0 {
		return nil, p.diagnostics
	}
	return stmts, nil
}

// parseTopLevel recognizes a function definition or falls through to a
// regular statement.
func (p *Parser) parseTopLevel() (ast.Node, error) {
	if p.current().Is(token.KEYWORD, "fn") {
		return p.parseFunctionDef()
	}
	return p.parseStmt()
}

// parseFunctionDef parses 'fn' IDENT '(' (IDENT (',' IDENT)*)? ')' block.
func (p *Parser) parseFunctionDef() (ast.Node, error) {
	start := p.current().Offset
	p.advance() // consume 'fn'

	if p.current().Kind != token.IDENTIFIER {
		return nil, p.errorf("Expected function name after 'fn'")
	}
	name := p.current().Literal
	p.advance()

	if p.current().IsNot(token.SPECIAL, "(") {
		return nil, p.errorf("Expected '(' after function name")
	}
	p.advance()

	var params []string
	if p.current().IsNot(token.SPECIAL, ")") {
		for {
			if p.current().Kind != token.IDENTIFIER {
				return nil, p.errorf("Expected parameter name")
			}
			params = append(params, p.current().Literal)
			p.advance()
			if p.current().Is(token.SPECIAL, ",") {
				p.advance()
				continue
			}
			break
		}
	}

	if p.current().IsNot(token.SPECIAL, ")") {
		return nil, p.errorf("Expected ')' after parameter list")
	}
	p.advance()

	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}

	return ast.NewFunction(start, name, params, body), nil
}

// parseBlockBody parses '{' (stmt ';')* '}' and returns the resulting
// Block node. Used both for function bodies and the block statement.
func (p *Parser) parseBlockBody() (*ast.Block, error) {
	start := p.current().Offset
	if p.current().IsNot(token.SPECIAL, "{") {
		return nil, p.errorf("Expected '{' to open block")
	}
	p.advance()

	var stmts []ast.Node
	for p.current().IsNot(token.SPECIAL, "}") && p.current().Kind != token.EOF {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.current().Is(token.SPECIAL, ";") {
			p.advance()
		} else {
			return nil, p.errorf("Expected ';' after statement in block")
		}
	}

	if p.current().IsNot(token.SPECIAL, "}") {
		return nil, p.errorf("Expected '}' to close block")
	}
	p.advance()

	return ast.NewBlock(start, stmts), nil
}

// parseStmt dispatches to the production matching the current token,
// falling back to a bare expression statement.
func (p *Parser) parseStmt() (ast.Node, error) {
	switch {
	case p.current().Is(token.SPECIAL, "{"):
		return p.parseBlockBody()
	case p.current().Is(token.KEYWORD, "print"):
		return p.parsePrint()
	case p.current().Is(token.KEYWORD, "ret"):
		return p.parseRet()
	case p.current().Is(token.KEYWORD, "let"):
		return p.parseLet()
	case p.current().Is(token.KEYWORD, "if"):
		return p.parseIf()
	case p.current().Is(token.KEYWORD, "while"):
		return p.parseWhile()
	}

	if p.current().Kind == token.IDENTIFIER {
		if node, ok := p.tryAssignment(); ok {
			return node, nil
		}
		if node, ok := p.tryCallStmt(); ok {
			return node, nil
		}
	}

	return p.parseExpr()
}

func (p *Parser) parsePrint() (ast.Node, error) {
	start := p.current().Offset
	p.advance() // consume 'print'
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewPrint(start, expr), nil
}

// parseRet parses 'ret' expr?. The expression is optional: if the
// current token can't start an expression (it's ';' or '}'), ret has
// no payload and produces Void at evaluation time.
func (p *Parser) parseRet() (ast.Node, error) {
	start := p.current().Offset
	p.advance() // consume 'ret'

	if p.current().Is(token.SPECIAL, ";") || p.current().Is(token.SPECIAL, "}") || p.current().Kind == token.EOF {
		return ast.NewReturn(start, nil), nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewReturn(start, expr), nil
}

func (p *Parser) parseLet() (ast.Node, error) {
	start := p.current().Offset
	p.advance() // consume 'let'

	if p.current().Kind != token.IDENTIFIER {
		return nil, p.errorf("Expected identifier after 'let'")
	}
	name := p.current().Literal
	p.advance()

	if p.current().IsNot(token.OPERATOR, ":=") {
		return nil, p.errorf("Expected assignment operator ':=' after identifier")
	}
	p.advance()

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewLet(start, name, expr), nil
}

// tryAssignment speculatively parses IDENT ':=' expr. On failure the
// cursor is restored so the caller can attempt a different production
// from the same identifier.
func (p *Parser) tryAssignment() (ast.Node, bool) {
	p.save()
	start := p.current().Offset
	name := p.current().Literal
	p.advance()

	if p.current().IsNot(token.OPERATOR, ":=") {
		p.restore()
		return nil, false
	}
	p.advance()

	expr, err := p.parseExpr()
	if err != nil {
		p.restore()
		return nil, false
	}
	return ast.NewAssignment(start, name, expr), true
}

// tryCallStmt speculatively parses IDENT '(' (expr (',' expr)*)? ')'
// as a bare call statement (its result, if any, is discarded as Void
// context — the call still evaluates to a Value when used as an
// expression elsewhere).
func (p *Parser) tryCallStmt() (ast.Node, bool) {
	p.save()
	node, err := p.parseCall()
	if err != nil {
		p.restore()
		return nil, false
	}
	return node, true
}

func (p *Parser) parseIf() (ast.Node, error) {
	start := p.current().Offset
	p.advance() // consume 'if'

	if p.current().IsNot(token.SPECIAL, "(") {
		return nil, p.errorf("Expected '(' after 'if'")
	}
	p.advance()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.current().IsNot(token.SPECIAL, ")") {
		return nil, p.errorf("Expected ')' after if condition")
	}
	p.advance()

	then, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	var elseStmt ast.Node
	if p.current().Is(token.KEYWORD, "else") {
		p.advance()
		elseStmt, err = p.parseStmt()
		if err != nil {
			return nil, err
		}
	}

	return ast.NewIf(start, cond, then, elseStmt), nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	start := p.current().Offset
	p.advance() // consume 'while'

	if p.current().IsNot(token.SPECIAL, "(") {
		return nil, p.errorf("Expected '(' after 'while'")
	}
	p.advance()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.current().IsNot(token.SPECIAL, ")") {
		return nil, p.errorf("Expected ')' after while condition")
	}
	p.advance()

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	return ast.NewWhile(start, cond, body), nil
}

// parseCall parses IDENT '(' (expr (',' expr)*)? ')'.
func (p *Parser) parseCall() (ast.Node, error) {
	start := p.current().Offset
	name := p.current().Literal
	p.advance()

	if p.current().IsNot(token.SPECIAL, "(") {
		return nil, p.errorf("Expected '(' after function name")
	}
	p.advance()

	var args []ast.Node
	if p.current().IsNot(token.SPECIAL, ")") {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.current().Is(token.SPECIAL, ",") {
				p.advance()
				continue
			}
			break
		}
	}

	if p.current().IsNot(token.SPECIAL, ")") {
		return nil, p.errorf("Expected ')' after call arguments")
	}
	p.advance()

	return ast.NewCall(start, name, args), nil
}

func (p *Parser) parseExpr() (ast.Node, error) {
	return p.parseLogic()
}

var logicOps = map[string]bool{"&&": true, "||": true}

// parseLogic implements logic := comparison (('&&'|'||') logic)?: the
// right operand recurses at the same rule, producing a right-
// associative tree for chained logical operators.
func (p *Parser) parseLogic() (ast.Node, error) {
	lhs, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if p.current().Kind == token.OPERATOR && logicOps[p.current().Literal] {
		op := p.current().Literal
		start := p.current().Offset
		p.advance()
		rhs, err := p.parseLogic()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(start, op, lhs, rhs), nil
	}
	return lhs, nil
}

var comparisonOps = map[string]bool{">": true, "<": true, "==": true, ">=": true, "<=": true}

func (p *Parser) parseComparison() (ast.Node, error) {
	lhs, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.current().Kind == token.OPERATOR && comparisonOps[p.current().Literal] {
		op := p.current().Literal
		start := p.current().Offset
		p.advance()
		rhs, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(start, op, lhs, rhs), nil
	}
	return lhs, nil
}

var sumOps = map[string]bool{"+": true, "-": true}

func (p *Parser) parseSum() (ast.Node, error) {
	lhs, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	if p.current().Kind == token.OPERATOR && sumOps[p.current().Literal] {
		op := p.current().Literal
		start := p.current().Offset
		p.advance()
		rhs, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(start, op, lhs, rhs), nil
	}
	return lhs, nil
}

var productOps = map[string]bool{"*": true, "/": true}

func (p *Parser) parseProduct() (ast.Node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.current().Kind == token.OPERATOR && productOps[p.current().Literal] {
		op := p.current().Literal
		start := p.current().Offset
		p.advance()
		rhs, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(start, op, lhs, rhs), nil
	}
	return lhs, nil
}

func (p *Parser) parseUnary() (ast.Node, error) {
	if p.current().Is(token.OPERATOR, "-") {
		start := p.current().Offset
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(start, "-", operand), nil
	}
	return p.parsePrimary()
}

// parsePrimary recognizes literals, 'input', casts, calls, identifiers,
// and parenthesized expressions. Cast and parenthesization both begin
// with '(', and call and bare identifier both begin with IDENT; each
// ambiguous pair is resolved by trying the more specific production
// first and restoring the cursor on failure.
func (p *Parser) parsePrimary() (ast.Node, error) {
	start := p.current().Offset

	switch p.current().Kind {
	case token.LITERAL:
		tok := p.current()
		p.advance()
		return ast.NewLiteral(start, tok.DataType, tok.Literal), nil
	case token.IDENTIFIER:
		if node, ok := p.tryCallStmt(); ok {
			return node, nil
		}
		name := p.current().Literal
		p.advance()
		return ast.NewIdentifier(start, name), nil
	}

	if p.current().Is(token.KEYWORD, "input") {
		p.advance()
		return ast.NewInput(start), nil
	}

	if node, ok := p.tryCast(); ok {
		return node, nil
	}

	if p.current().Is(token.SPECIAL, "(") {
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.current().IsNot(token.SPECIAL, ")") {
			return nil, p.errorf("Expected ')' in parenthesised expression")
		}
		p.advance()
		return expr, nil
	}

	return nil, p.errorf("Invalid expression")
}

// tryCast speculatively parses '(' TYPE ')' primary.
func (p *Parser) tryCast() (ast.Node, bool) {
	if p.current().IsNot(token.SPECIAL, "(") || p.peek(1).Kind != token.TYPE {
		return nil, false
	}
	p.save()
	start := p.current().Offset
	p.advance() // consume '('
	typeTag := p.current().Literal
	p.advance() // consume TYPE

	if p.current().IsNot(token.SPECIAL, ")") {
		p.restore()
		return nil, false
	}
	p.advance() // consume ')'

	operand, err := p.parsePrimary()
	if err != nil {
		p.restore()
		return nil, false
	}
	return ast.NewCast(start, typeTag, operand), true
}
