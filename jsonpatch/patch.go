package jsonpatch

import (
	"errors"
	"fmt"

	"github.com/signadot/tony-format/go-jdoc/debug"
	"github.com/signadot/tony-format/go-jdoc/eval"
	"github.com/signadot/tony-format/go-jdoc/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Apply applies the RFC 6902 patch document patch to doc and returns the
// patched tree. doc is not modified.
func Apply(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding patch: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("jsonpatch: %d ops on %s\n", len(ops), debug.Doc{Node: doc})
	}
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return unmarshal(out)
}

// Merge applies the RFC 7386 merge patch patch to doc.
func Merge(doc *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("jsonpatch: merge %s into %s\n", patch, debug.Doc{Node: doc})
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return unmarshal(out)
}

// CreateMerge returns a merge patch turning from into to.
func CreateMerge(from, to *ir.Node) ([]byte, error) {
	a, err := eval.MarshalJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := eval.MarshalJSON(to)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

func unmarshal(d []byte) (*ir.Node, error) {
	res, err := eval.UnmarshalJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding result: %w", ErrPatch, err)
	}
	return res, nil
}
