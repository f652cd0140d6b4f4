package libdiff

import (
	"fmt"

	"github.com/signadot/tony-format/go-jdoc/encode"
	"github.com/signadot/tony-format/go-jdoc/ir"
	"github.com/signadot/tony-format/go-jdoc/ir/jpath"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Change is one difference. From is nil for additions and To is nil for
// removals. Path locates From in the source tree, or To for additions.
type Change struct {
	Path *jpath.JPath
	Kind Kind
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	p := c.Path.String()
	if p == "" {
		p = "."
	}
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s: %s", p, sketch(c.To))
	case Removed:
		return fmt.Sprintf("- %s: %s", p, sketch(c.From))
	default:
		if c.From.Type == ir.StringType && c.To.Type == ir.StringType {
			return fmt.Sprintf("~ %s: %s", p, InlineString(c.From.String, c.To.String))
		}
		return fmt.Sprintf("~ %s: %s -> %s", p, sketch(c.From), sketch(c.To))
	}
}

func sketch(n *ir.Node) string {
	if n.IsError() {
		return "<" + n.Err().Error() + ">"
	}
	return encode.MustString(n, encode.EncodeWire(true))
}
