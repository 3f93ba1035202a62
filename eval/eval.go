// Package eval compiles walk predicates from expression strings.
//
// Expressions use the expr language and must evaluate to a boolean. The
// environment of an expression is supplied per node by an env function, so
// callers decide what a node exposes (its value, depth, leaf-ness, ...).
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CompileFilter compiles src into a predicate over nodes. env builds the
// expression environment for one node.
//
// Compilation failures are returned. An evaluation failure at walk time
// panics with the evaluation error: a failing predicate aborts the walk, it
// is never silently treated as false.
func CompileFilter[N any](src string, env func(N) map[string]any) (func(N) bool, error) {
	program, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return func(n N) bool {
		out, err := vm.Run(program, env(n))
		if err != nil {
			panic(fmt.Errorf("error evaluating %q: %w", src, err))
		}
		return out.(bool)
	}, nil
}
