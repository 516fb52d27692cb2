package ir

import (
	"encoding/json"
	"maps"
	"slices"
	"strconv"

	"github.com/sexp-format/sexp/token"
)

// ToAny projects a tree onto plain Go values for JSON and YAML
// encoders: a list becomes an array led by its name, a seq becomes an
// array of its elements, text kinds become strings, numbers float64,
// null nil. The projection drops the Atom/QuotedString distinction;
// FromAny is its best-effort inverse, not an exact one.
func ToAny(n *Node) any {
	switch n.Type {
	case ListType:
		res := make([]any, 0, len(n.Values)+1)
		res = append(res, n.Name)
		for _, v := range n.Values {
			res = append(res, ToAny(v))
		}
		return res
	case SeqType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToAny(v)
		}
		return res
	case AtomType, StringType, RawType:
		return n.Text
	case NumberType:
		return n.Float64
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny builds a tree from plain Go values as decoded by JSON and
// YAML unmarshalers. An array led by a string that reads as a bare
// symbol becomes a list of that name; any other array becomes a list
// named "list". A map becomes a list named "map" with one (key value)
// child per key, keys sorted. Strings become atoms when bare enough
// and quoted strings otherwise.
func FromAny(v any) *Node {
	switch t := v.(type) {
	case nil:
		return Null()
	case *Node:
		return t.Clone()
	case bool:
		return FromAtom(strconv.FormatBool(t))
	case string:
		return textValue(t)
	case float64:
		return FromFloat(t)
	case int:
		return FromFloat(float64(t))
	case int64:
		return FromFloat(float64(t))
	case uint64:
		return FromFloat(float64(t))
	case []any:
		if len(t) > 0 {
			if name, ok := t[0].(string); ok && !token.NeedsQuote(name) {
				res := NewList(name)
				for _, elt := range t[1:] {
					res.Append(FromAny(elt))
				}
				return res
			}
		}
		res := NewList("list")
		for _, elt := range t {
			res.Append(FromAny(elt))
		}
		return res
	case map[string]any:
		res := NewList("map")
		for _, key := range slices.Sorted(maps.Keys(t)) {
			res.AppendList(key).Append(FromAny(t[key]))
		}
		return res
	default:
		return FromString(stringify(t))
	}
}

func textValue(s string) *Node {
	if token.NeedsQuote(s) {
		return FromString(s)
	}
	return FromAtom(s)
}

func stringify(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(d)
}
