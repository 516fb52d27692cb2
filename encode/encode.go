package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/sexp-format/sexp/ir"
	"github.com/sexp-format/sexp/token"
)

type EncState struct {
	pretty   bool
	compact  bool
	quoteAll bool
	width    int
	indent   string
	depth    int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the serialization of node to w, followed by a final
// newline. The zero configuration pretty-prints with two-space
// indents against an 80 column width.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		pretty:  true,
		compact: true,
		width:   80,
		indent:  "  ",
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ListType:
		return encodeList(node, w, es)
	case ir.SeqType:
		return encodeSeq(node, w, es)
	case ir.AtomType, ir.RawType:
		return writeString(w, applyColor(es, node.Type, ValueColor, bareText(node.Text, es)))
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, token.Quote(node.Text)))
	case ir.NumberType:
		return writeString(w, applyColor(es, ir.NumberType, ValueColor, formatNumber(node.Float64)))
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "nil"))
	default:
		// unknown kinds degrade to their text rather than failing
		// the whole serialization
		return writeString(w, node.Text)
	}
}

// encodeList renders one parenthesized form, choosing single-line or
// multi-line layout per the width budget and the node's simplicity.
func encodeList(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 || !es.pretty || fitsOneLine(node, es) {
		return encodeListFlat(node, w, es)
	}
	if err := writeOpen(node, w, es); err != nil {
		return err
	}
	es.depth++
	prefix := "\n" + strings.Repeat(es.indent, es.depth)
	for _, v := range node.Values {
		if err := writeString(w, prefix); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	// the closing paren rides on the last child's line
	return writeString(w, applyColor(es, ir.ListType, SepColor, ")"))
}

// fitsOneLine is the layout decision: a node renders on one line when
// its single-line form fits the width and either it is simple (no
// nested list) with at most two children, or compacting is on.
func fitsOneLine(node *ir.Node, es *EncState) bool {
	if lineLen(node, es) > es.width {
		return false
	}
	return es.compact || simpleEnough(node)
}

func simpleEnough(node *ir.Node) bool {
	if len(node.Values) > 2 {
		return false
	}
	for _, v := range node.Values {
		if v.Type == ir.ListType {
			return false
		}
	}
	return true
}

func encodeListFlat(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeOpen(node, w, es); err != nil {
		return err
	}
	for _, v := range node.Values {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ListType, SepColor, ")"))
}

// writeOpen writes "(name". The name is emitted verbatim, never
// quoted, even when it would need quoting as a value.
func writeOpen(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ListType, SepColor, "(")); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ListType, NameColor, node.Name))
}

func encodeSeq(node *ir.Node, w io.Writer, es *EncState) error {
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return nil
}

// lineLen is the length of node's single-line form.
func lineLen(node *ir.Node, es *EncState) int {
	switch node.Type {
	case ir.ListType:
		n := 1 + len(node.Name) + 1
		for i, v := range node.Values {
			if i > 0 {
				n++
			}
			n += lineLen(v, es)
		}
		return n + 1
	case ir.SeqType:
		n := 0
		for i, v := range node.Values {
			if i > 0 {
				n++
			}
			n += lineLen(v, es)
		}
		return n
	case ir.AtomType, ir.RawType:
		return len(bareText(node.Text, es))
	case ir.StringType:
		return len(token.Quote(node.Text))
	case ir.NumberType:
		return len(formatNumber(node.Float64))
	case ir.NullType:
		return len("nil")
	default:
		return len(node.Text)
	}
}

// bareText renders atom and raw legacy text, quoting only when the
// text demands it (or always under the quote-all option).
func bareText(v string, es *EncState) string {
	if es.quoteAll || token.NeedsQuote(v) {
		return token.Quote(v)
	}
	return v
}

// formatNumber renders integral values as plain decimal integers and
// everything else with six fractional digits, trailing zeros and a
// then-trailing point stripped.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
