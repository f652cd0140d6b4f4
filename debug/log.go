package debug

import (
	"fmt"

	"github.com/signadot/tony-format/go-jdoc/encode"
	"github.com/signadot/tony-format/go-jdoc/ir"

	"github.com/valyala/bytebufferpool"
)

func sketch(x *ir.Node) string {
	if x == nil {
		return "<nil>"
	}
	if x.Type == ir.ErrorType {
		return fmt.Sprintf("<%v>", x.Err())
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %s %v", x.Type, err)
	}
	return buf.String()
}

// Doc formats a node as compact JSON in Logf arguments.
type Doc struct{ Node *ir.Node }

func (d Doc) String() string {
	return sketch(d.Node)
}
