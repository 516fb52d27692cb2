package libdiff

import (
	"github.com/sexp-format/sexp/debug"
	"github.com/sexp-format/sexp/encode"
	"github.com/sexp-format/sexp/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type DiffFunc func(from, to *ir.Node) *ir.Node

// Diff computes a structural diff of two trees, nil when they are
// equal. Lists with the same name diff child by child; everything
// else becomes a replace marker.
func Diff(from, to *ir.Node) *ir.Node {
	if ir.Compare(from, to) == 0 {
		return nil
	}
	if debug.Diff() {
		debug.Logf("diff %v against %v\n", from, to)
	}
	if from.Type == ir.ListType && to.Type == ir.ListType && from.Name == to.Name {
		return diffChildren(from, to)
	}
	return MakeDiff(from, to)
}

// MakeDiff builds one marker form: (insert v) when from is absent,
// (delete v) when to is absent, (replace (from v) (to v)) otherwise.
func MakeDiff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil:
		return ir.NewList("insert", to.Clone())
	case to == nil:
		return ir.NewList("delete", from.Clone())
	default:
		return ir.NewList("replace",
			ir.NewList("from", from.Clone()),
			ir.NewList("to", to.Clone()))
	}
}

// diffChildren aligns the two child sequences by key, mapping each
// key to a rune so diffmatchpatch can do the sequence alignment, then
// recurses on aligned pairs.
func diffChildren(from, to *ir.Node) *ir.Node {
	keyMap := map[string]rune{}
	fromRunes := mapChildrenTo(keyMap, from)
	toRunes := mapChildrenTo(keyMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := ir.NewList(from.Name)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				res.Append(MakeDiff(from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				if d := Diff(from.Values[fi], to.Values[ti]); d != nil {
					res.Append(d)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				res.Append(MakeDiff(nil, to.Values[ti]))
				ti++
			}
		}
	}
	if len(res.Values) == 0 {
		return nil
	}
	return res
}

func mapChildrenTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		key := childKey(v)
		r, ok := m[key]
		if !ok {
			r = rune(len(m))
			m[key] = r
		}
		rs[i] = r
	}
	return rs
}

// childKey aligns list children by name and scalar children by their
// flat serialization. Same-key children still diff by content in the
// recursion.
func childKey(v *ir.Node) string {
	if v.Type == ir.ListType {
		return "(" + v.Name
	}
	return encode.MustString(v, encode.EncodePretty(false))
}
