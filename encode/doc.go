// Package encode writes [ir.Node] trees as JSON or YAML text.
//
// # Usage
//
//	node := parse.Parse(data)
//	err := encode.Encode(node, os.Stdout)
//
//	// compact single line output
//	err = encode.Encode(node, w, encode.EncodeWire(true))
//
//	// YAML
//	err = encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
// Floating point values always contain a '.', so a document written by
// Encode and parsed again keeps its Integer and Floating types. Trees
// containing error nodes cannot be encoded.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-jdoc/ir - value representation
//   - github.com/signadot/tony-format/go-jdoc/parse - parse text to ir
package encode
