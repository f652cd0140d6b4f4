// Package eval evaluates expr-lang expressions against a document tree and
// converts between trees and plain Go values.
//
// Scripts reach into the document with path functions:
//
//	getpath("meshes[0]")           the value at a path as plain Go data
//	getstr, getint, getnum, getbool typed reads, zero on mismatch
//	getlen("meshes")               number of members or elements
//	getkeys("asset")               member names of an object
//	haspath("meshes[0]/name")      whether a path resolves
//
// Strings may embed expressions as $[expr]; see [ExpandString].
package eval
