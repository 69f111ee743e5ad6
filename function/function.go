// Package function implements the evaluator's process-wide function
// table: a name-to-definition mapping populated as Function nodes are
// evaluated.
//
// Unlike the teacher's Function type, there is no captured defining
// scope here: the table is process-wide and a function body only ever
// sees the scope stack live at call time. Recursion works because
// lookup happens on invocation, not at definition, so a function can
// call itself (or a function defined after it, at the top level)
// without any closure machinery.
package function

import (
	"fmt"

	"github.com/lumen-lang/lumen/ast"
)

// Function is a registered definition: its parameter names and body.
type Function struct {
	Name   string
	Params []string
	Body   *ast.Block
}

// String renders the function for debugging, e.g. "func(add(a, b))".
func (f *Function) String() string {
	args := ""
	for i, p := range f.Params {
		if i > 0 {
			args += ", "
		}
		args += p
	}
	return fmt.Sprintf("func(%s(%s))", f.Name, args)
}

// Table is the process-wide function table. Redefinition overwrites
// the previous entry outright.
type Table struct {
	defs map[string]*Function
}

// NewTable creates an empty function table.
func NewTable() *Table {
	return &Table{defs: make(map[string]*Function)}
}

// Define registers fn under its own name, overwriting any prior
// definition of that name.
func (t *Table) Define(fn *Function) {
	t.defs[fn.Name] = fn
}

// Lookup returns the function registered under name, if any.
func (t *Table) Lookup(name string) (*Function, bool) {
	fn, ok := t.defs[name]
	return fn, ok
}
