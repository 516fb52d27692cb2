package ir

import (
	"github.com/google/uuid"
)

// XY builds a coordinate pair form (xy x y).
func XY(x, y float64) *Node {
	return NewList("xy", x, y)
}

// At builds a position form (at x y), with an optional rotation angle
// as a third numeric.
func At(x, y float64, angle ...float64) *Node {
	res := NewList("at", x, y)
	if len(angle) > 0 {
		res.Append(angle[0])
	}
	return res
}

// Property builds (property "key" "value"). Key and value are always
// quoted.
func Property(key, value string) *Node {
	return NewList("property", FromString(key), FromString(value))
}

// UUID builds (uuid "id"). The identifier is always quoted.
func UUID(id uuid.UUID) *Node {
	return NewList("uuid", FromString(id.String()))
}
