// Package parse provides a tolerant recursive-descent JSON parser.
//
// [Parse] turns a byte buffer into an [ir.Node] tree. It never returns a Go
// error: failures are [ir.ErrorType] nodes carrying the kind of failure and
// the 1-based line and column where it was detected.
//
// The grammar is deliberately lenient in places:
//
//   - a trailing comma before '}' or ']' is accepted;
//   - in objects, a missing comma is accepted only before the closing '}';
//   - in arrays, commas are not validated at all, so [1 2] has two elements;
//   - the letters of true, false and null are not checked, only counted;
//   - numbers are runs of digits, '-' and '.'; malformed runs convert to 0;
//   - strings end at the next '"'; there are no escape sequences.
//
// A document must start with '{' or '['. Structural errors inside a container
// replace that container with an error node and the parser resumes after its
// closing bracket, so siblings of a malformed value are still parsed.
//
// Strings in the result are copies; the input buffer is not retained.
package parse
