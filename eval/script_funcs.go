package eval

import (
	"fmt"
	"os"

	"github.com/signadot/tony-format/go-jdoc/debug"
	"github.com/signadot/tony-format/go-jdoc/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	resolve := func(params []any) *ir.Node {
		p := params[0].(string)
		res := doc.Resolve(p)
		if debug.Path() {
			debug.Logf("eval: %q resolved to %s\n", p, debug.Doc{Node: res})
		}
		return res
	}
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res := resolve(params)
			if err := res.Err(); err != nil {
				return nil, fmt.Errorf("%s: %w", params[0], err)
			}
			return res.ToAny(), nil
		},
			new(func(string) any)),
		expr.Function("getstr", func(params ...any) (any, error) {
			return resolve(params).AsString(), nil
		},
			new(func(string) string)),
		expr.Function("getint", func(params ...any) (any, error) {
			return int(resolve(params).AsInt()), nil
		},
			new(func(string) int)),
		expr.Function("getnum", func(params ...any) (any, error) {
			return float64(resolve(params).AsNumber()), nil
		},
			new(func(string) float64)),
		expr.Function("getbool", func(params ...any) (any, error) {
			return resolve(params).AsBool(), nil
		},
			new(func(string) bool)),
		expr.Function("getlen", func(params ...any) (any, error) {
			return resolve(params).Len(), nil
		},
			new(func(string) int)),
		expr.Function("getkeys", func(params ...any) (any, error) {
			return resolve(params).Keys(), nil
		},
			new(func(string) []string)),
		expr.Function("haspath", func(params ...any) (any, error) {
			return !resolve(params).IsError(), nil
		},
			new(func(string) bool)),
		expr.Function("truthy", func(params ...any) (any, error) {
			return ir.Truth(resolve(params)), nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
