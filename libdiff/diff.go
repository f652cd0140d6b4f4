package libdiff

import (
	"github.com/signadot/tony-format/go-jdoc/ir"
	"github.com/signadot/tony-format/go-jdoc/ir/jpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in document order. Equal
// trees have no changes.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff(nil, from, to, &res)
	return res
}

// Equal reports whether from and to have no differences.
func Equal(from, to *ir.Node) bool {
	return len(Diff(from, to)) == 0
}

func diff(p *jpath.JPath, from, to *ir.Node, res *[]Change) {
	if from.Type != to.Type {
		*res = append(*res, Change{Path: p, Kind: Changed, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		diffObject(p, from, to, res)
	case ir.ArrayType:
		diffArray(p, from, to, res)
	default:
		if !leafEqual(from, to) {
			*res = append(*res, Change{Path: p, Kind: Changed, From: from, To: to})
		}
	}
}

func leafEqual(from, to *ir.Node) bool {
	switch from.Type {
	case ir.StringType:
		return from.String == to.String
	case ir.IntegerType:
		return from.Int == to.Int
	case ir.FloatingType:
		return from.Float == to.Float
	case ir.BoolType:
		return from.Bool == to.Bool
	case ir.ErrorType:
		return *from.Error == *to.Error
	default:
		return true
	}
}

// diffObject aligns the key sequences of from and to. Keys present on both
// sides are compared recursively.
func diffObject(p *jpath.JPath, from, to *ir.Node, res *[]Change) {
	m := map[string]rune{}
	fromRunes := keyRunes(m, from)
	toRunes := keyRunes(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				*res = append(*res, Change{
					Path: p.Append(jpath.Field(from.Fields[fi].String)),
					Kind: Removed,
					From: from.Values[fi],
				})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				*res = append(*res, Change{
					Path: p.Append(jpath.Field(to.Fields[ti].String)),
					Kind: Added,
					To:   to.Values[ti],
				})
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				diff(p.Append(jpath.Field(from.Fields[fi].String)), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		}
	}
}

func keyRunes(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		rs[i] = intern(m, f.String)
	}
	return rs
}

// intern maps s to a rune unique within m, skipping the surrogate range
// which does not survive conversion to a string.
func intern(m map[string]rune, s string) rune {
	r, ok := m[s]
	if !ok {
		r = rune(len(m))
		if r >= 0xD800 {
			r += 0x800
		}
		m[s] = r
	}
	return r
}
