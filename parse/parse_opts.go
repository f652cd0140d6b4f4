package parse

import (
	"github.com/signadot/tony-format/go-jdoc/ir"
	"github.com/signadot/tony-format/go-jdoc/token"
)

// MaxDepth is the default maximum nesting of objects and arrays.
const MaxDepth = 512

type parseOpts struct {
	maxDepth  int
	positions map[*ir.Node]token.Pos
	trailing  bool
}

type ParseOption func(*parseOpts)

// ParseMaxDepth sets the maximum container nesting. Containers nested deeper
// are replaced by NestingTooDeep error nodes. Values below 1 are ignored.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// ParsePositions records the start position of every parsed node in m.
func ParsePositions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// ParseTrailing makes non-whitespace bytes after the document an error.
func ParseTrailing(v bool) ParseOption {
	return func(o *parseOpts) { o.trailing = v }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
