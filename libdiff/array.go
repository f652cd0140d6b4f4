package libdiff

import (
	"strconv"

	"github.com/signadot/tony-format/go-jdoc/ir"
	"github.com/signadot/tony-format/go-jdoc/ir/jpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray aligns the elements of from and to:
//
//  1. summarise each element as <type>-<value> for scalars and <type> for
//     containers
//  2. diff the sequences of summaries
//  3. recurse into aligned elements; only containers can differ there
//  4. a deletion directly followed by an insertion is a change
func diffArray(p *jpath.JPath, from, to *ir.Node, res *[]Change) {
	m := map[string]rune{}
	fromRunes := summaryRunes(m, from)
	toRunes := summaryRunes(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
				i++
			}
			paired := min(n, ins)
			for range paired {
				*res = append(*res, Change{
					Path: p.Append(jpath.Index(fi)),
					Kind: Changed,
					From: from.Values[fi],
					To:   to.Values[ti],
				})
				fi++
				ti++
			}
			for range n - paired {
				*res = append(*res, Change{Path: p.Append(jpath.Index(fi)), Kind: Removed, From: from.Values[fi]})
				fi++
			}
			for range ins - paired {
				*res = append(*res, Change{Path: p.Append(jpath.Index(ti)), Kind: Added, To: to.Values[ti]})
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				*res = append(*res, Change{Path: p.Append(jpath.Index(ti)), Kind: Added, To: to.Values[ti]})
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				diff(p.Append(jpath.Index(fi)), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		}
	}
}

func summaryRunes(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		rs[i] = intern(m, summaryStr(v))
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		return node.Type.String() + "-" + node.String
	case ir.IntegerType:
		return node.Type.String() + "-" + strconv.FormatInt(int64(node.Int), 10)
	case ir.FloatingType:
		return node.Type.String() + "-" + strconv.FormatFloat(float64(node.Float), 'g', -1, 32)
	case ir.ErrorType:
		return node.Type.String() + "-" + node.Err().Error()
	default:
		return node.Type.String()
	}
}
