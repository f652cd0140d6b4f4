// Package jpath parses the path expressions used to navigate documents.
//
// A path is a sequence of segments separated by '/'. A segment is an object
// key, optionally followed by one or more array indices in brackets:
//
//	meshes[0]/primitives[0]/attributes/POSITION
//
// A leading '/' is ignored and the empty path addresses the root. Keys may
// not contain '/' or '['; there is no escaping.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-jdoc/ir - Node.Resolve evaluates paths
package jpath
