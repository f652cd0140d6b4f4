package encode

import (
	"strings"

	"github.com/signadot/tony-format/go-jdoc/ir"

	"github.com/valyala/bytebufferpool"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
