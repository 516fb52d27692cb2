package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sexp-format/sexp/encode"
	"github.com/sexp-format/sexp/ir"
	"github.com/sexp-format/sexp/parse"

	"github.com/goccy/go-yaml"
)

// Encode writes node to w in format f. JSON and YAML go through the
// natural projection (ir.ToAny), which drops the atom/quoted-string
// distinction; only the sexp form round-trips exactly.
func Encode(w io.Writer, node *ir.Node, f Format, opts ...encode.EncodeOption) error {
	switch f {
	case SexpFormat:
		return encode.Encode(node, w, opts...)
	case JSONFormat:
		d, err := json.MarshalIndent(ir.ToAny(node), "", "  ")
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		return err
	case YAMLFormat:
		d, err := yaml.Marshal(ir.ToAny(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}

// Decode reads one tree from d in format f. JSON and YAML input goes
// through ir.FromAny.
func Decode(d []byte, f Format) (*ir.Node, error) {
	switch f {
	case SexpFormat:
		return parse.Parse(d)
	case JSONFormat:
		var v any
		if err := json.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		return ir.FromAny(v), nil
	case YAMLFormat:
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		return ir.FromAny(v), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}
