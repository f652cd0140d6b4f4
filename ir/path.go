package ir

import (
	"github.com/signadot/tony-format/go-jdoc/ir/jpath"
)

// Resolve evaluates path against n by chaining Member and Element calls.
// Failures propagate as error nodes: once a step fails every later step
// re-fails with TypeMismatch. A malformed path yields an InvalidPath error
// node.
//
// Example:
//
//	root.Resolve("meshes[0]/primitives[0]/attributes/POSITION")
func (n *Node) Resolve(path string) *Node {
	p, err := jpath.Parse(path)
	if err != nil {
		return accessErr(InvalidPath)
	}
	return n.ResolvePath(p)
}

// ResolvePath is Resolve for a parsed path. A nil path resolves to n.
func (n *Node) ResolvePath(p *jpath.JPath) *Node {
	res := n
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Index != nil:
			res = res.Element(*x.Index)
		case x.Field != nil:
			res = res.Member(*x.Field)
		}
	}
	return res
}
