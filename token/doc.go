// Package token provides the positional byte scanner used by the parser.
//
// [Scanner] is a cursor over an immutable byte buffer tracking the byte offset
// together with a 1-based line and column. It is a small value type: copying
// a Scanner takes a snapshot that can be advanced independently and assigned
// back to commit, which is how the parser looks ahead without consuming input.
//
// Reads past either end of the buffer are bounds-checked and yield 0.
package token
