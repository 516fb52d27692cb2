package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Kinds order before contents, so an Atom and a QuotedString holding
// the same text are unequal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case NumberType:
		return cmp.Compare(a.Float64, b.Float64)
	case AtomType, StringType, RawType:
		return strings.Compare(a.Text, b.Text)
	case SeqType:
		return compareValues(a, b)
	case ListType:
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return compareValues(a, b)
	}
	return 0
}

// Equal reports whether a and b match in name, kind and structure.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Number < Atom < String < Raw < Seq < List
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case NumberType:
		return 1
	case AtomType:
		return 2
	case StringType:
		return 3
	case RawType:
		return 4
	case SeqType:
		return 5
	case ListType:
		return 6
	}
	return 100
}

func compareValues(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
