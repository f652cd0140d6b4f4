// Package ir contains the in-memory document tree produced by the parser.
//
// A document is a strict tree of [Node] values. Each node carries a [Type]
// tag and exactly one payload matching it:
//
//   - [StringType]: String, a private copy of the input bytes
//   - [IntegerType]: Int, a signed 32-bit integer
//   - [FloatingType]: Float, a 32-bit float
//   - [ObjectType]: Fields (String nodes) and Values, in document order
//   - [ArrayType]: Values, in document order
//   - [BoolType]: Bool
//   - [NullType]: no payload
//   - [ErrorType]: Error, an [*Error] describing a parse or access failure;
//     [Node.Err] returns it as an error
//
// # Errors are values
//
// Parse failures are embedded in the tree as [ErrorType] nodes and accessor
// failures are returned as [ErrorType] nodes. Since [Node.Member] and
// [Node.Element] reject every type other than the container they expect,
// chains of accessor calls short circuit on the first failure:
//
//	pos := root.Member("meshes").Element(0).Member("primitives")
//	if pos.IsError() {
//		return pos.Err()
//	}
//
// [Node.Resolve] does the same from a path expression, see
// [github.com/signadot/tony-format/go-jdoc/ir/jpath].
//
// # Ownership
//
// Strings never alias the parsed buffer, so the buffer may be discarded as
// soon as parsing returns. [Release] empties a tree; consumers copy out what
// they need before calling it. A released root is Null and releasing it again
// does nothing.
//
// Finished trees have no mutation API and may be read from several goroutines.
package ir
