// Package libdiff computes structural differences between two document
// trees.
//
// Object members are aligned by key and array elements by a summary of
// their type and scalar value, both with the diff-match-patch algorithm, so
// an insertion in the middle of an array reports one addition rather than a
// change at every following index.
package libdiff
