package ir

import (
	"encoding/json"
	"fmt"
)

// irBase is the wire shape of the lossless JSON representation of a
// node. Kind-specific content joins it in MarshalJSON.
type irBase struct {
	Type    Type     `json:"type"`
	Name    string   `json:"name,omitempty"`
	Values  []*Node  `json:"values,omitempty"`
	Float64 *float64 `json:"float,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   n.Type,
		Name:   n.Name,
		Values: n.Values,
	}
	switch n.Type {
	case NumberType:
		f := n.Float64
		base.Float64 = &f
		return json.Marshal(base)
	case AtomType, StringType, RawType:
		type C struct {
			irBase
			Text string `json:"text"`
		}
		return json.Marshal(C{irBase: *base, Text: n.Text})
	default:
		return json.Marshal(base)
	}
}

func (n *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		Text string `json:"text"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.Type = tmp.Type
	n.Name = tmp.Name
	n.Values = tmp.Values
	n.Text = tmp.Text
	n.Float64 = 0
	if tmp.Float64 != nil {
		n.Float64 = *tmp.Float64
	}

	if n.Type.IsLeaf() && len(n.Values) != 0 {
		return fmt.Errorf("%s node with %d values", n.Type, len(n.Values))
	}
	if n.Type != ListType && n.Name != "" {
		return fmt.Errorf("%s node with name %q", n.Type, n.Name)
	}
	return nil
}
