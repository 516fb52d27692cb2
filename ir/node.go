package ir

import (
	"fmt"
	"strconv"
)

type Node struct {
	Type Type

	// Name is the head symbol of a ListType node. It is emitted
	// verbatim, never quoted, even when it would need quoting as a
	// value.
	Name string

	// Values holds the ordered children of ListType and SeqType
	// nodes. Order is semantically significant. The slice is the
	// live backing store; callers treat it as read-only and mutate
	// through the node methods.
	Values []*Node

	// Text holds the content of AtomType, StringType and RawType
	// nodes.
	Text string

	// Float64 holds the value of NumberType nodes. Numbers are
	// float64 end to end; whether a number renders as an integer is
	// decided at encode time only.
	Float64 float64
}

// NewList builds a ListType node from a name and initial values,
// normalized as by FromValue.
func NewList(name string, values ...any) *Node {
	res := &Node{Type: ListType, Name: name}
	return res.Append(values...)
}

func FromAtom(v string) *Node {
	return &Node{Type: AtomType, Text: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, Text: v}
}

// FromRaw builds a legacy raw string value. It renders like an atom;
// it exists so call sites that predate the typed constructors can
// keep passing bare strings.
func FromRaw(v string) *Node {
	return &Node{Type: RawType, Text: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: f}
}

func FromSeq(values ...any) *Node {
	res := &Node{Type: SeqType}
	return res.Append(values...)
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromValue normalizes a Go value into a node. Nodes pass through,
// strings become raw legacy values, numeric kinds become NumberType,
// nil becomes NullType. Anything else falls back to its fmt.Sprint
// text as a raw value.
func FromValue(v any) *Node {
	switch t := v.(type) {
	case nil:
		return Null()
	case *Node:
		return t
	case string:
		return FromRaw(t)
	case float64:
		return FromFloat(t)
	case float32:
		return FromFloat(float64(t))
	case int:
		return FromFloat(float64(t))
	case int64:
		return FromFloat(float64(t))
	case bool:
		return FromAtom(strconv.FormatBool(t))
	default:
		return FromRaw(fmt.Sprint(t))
	}
}

// Append appends values to the node's children and returns the node
// itself for chaining.
func (n *Node) Append(values ...any) *Node {
	for _, v := range values {
		n.Values = append(n.Values, FromValue(v))
	}
	return n
}

// RemoveIf removes every child for which pred returns true. The
// predicate sees each child with its original index; survivors keep
// their relative order. Returns the node itself.
func (n *Node) RemoveIf(pred func(v *Node, i int) bool) *Node {
	dst := n.Values[:0]
	for i, v := range n.Values {
		if pred(v, i) {
			continue
		}
		dst = append(dst, v)
	}
	clear(n.Values[len(dst):])
	n.Values = dst
	return n
}

// AppendList builds a new ListType child, inserts it as the last
// child, and returns the child so building can continue downward.
func (n *Node) AppendList(name string, values ...any) *Node {
	child := NewList(name, values...)
	n.Values = append(n.Values, child)
	return child
}

// FindChild returns the first direct ListType child named name, or
// nil. The search is shallow: grandchildren never match.
func (n *Node) FindChild(name string) *Node {
	for _, v := range n.Values {
		if v.Type == ListType && v.Name == name {
			return v
		}
	}
	return nil
}

// FindChildren returns all direct ListType children named name in
// insertion order.
func (n *Node) FindChildren(name string) []*Node {
	var res []*Node
	for _, v := range n.Values {
		if v.Type == ListType && v.Name == name {
			res = append(res, v)
		}
	}
	return res
}

// ValueText extracts child i as plain text when it is a raw string,
// atom or quoted string. Any other kind, and any out of range index,
// gives "".
func (n *Node) ValueText(i int) string {
	if i < 0 || i >= len(n.Values) {
		return ""
	}
	v := n.Values[i]
	if !v.Type.IsText() {
		return ""
	}
	return v.Text
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Name = n.Name
	dst.Text = n.Text
	dst.Float64 = n.Float64
	if n.Values == nil {
		dst.Values = nil
		return dst
	}
	dst.Values = make([]*Node, len(n.Values))
	for i, v := range n.Values {
		dst.Values[i] = v.Clone()
	}
	return dst
}

// Visit walks the tree rooted at n. f runs once before and once after
// a node's children, with isPost telling the two apart; returning
// false from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
