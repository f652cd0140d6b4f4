// Package jsonpatch applies RFC 6902 JSON Patches and RFC 7386 Merge Patches
// to document trees.
//
// The tree is encoded to JSON, patched, and the result decoded back into a
// tree with [eval.UnmarshalJSON]. Patch results are produced by
// encoding/json, so they may contain string escapes, and object members come
// back sorted by key.
package jsonpatch
