package eval

import (
	"fmt"

	"github.com/signadot/tony-format/go-jdoc/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Env map[string]any

// Compile compiles script with the path functions bound to doc. When env
// is not nil, its variables are type checked.
func Compile(doc *ir.Node, script string, env Env) (*vm.Program, error) {
	opts := exprOpts(doc)
	if env != nil {
		opts = append(opts, expr.Env(map[string]any(env)))
	}
	prg, err := expr.Compile(script, opts...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", script, err)
	}
	return prg, nil
}

// Eval compiles and runs script against doc.
func Eval(doc *ir.Node, script string, env Env) (any, error) {
	prg, err := Compile(doc, script, env)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", script, err)
	}
	return res, nil
}

// EvalNode is Eval with the result converted to a tree.
func EvalNode(doc *ir.Node, script string, env Env) (*ir.Node, error) {
	res, err := Eval(doc, script, env)
	if err != nil {
		return nil, err
	}
	return FromAny(res)
}
