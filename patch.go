package sexp

import (
	"encoding/json"
	"fmt"

	"github.com/sexp-format/sexp/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 JSON patch to doc and returns the
// patched tree. Patch paths address the lossless JSON representation
// of nodes, e.g. /values/0/text. The input tree is not modified.
func ApplyPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	res := &ir.Node{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("patch result is not a valid document: %w", err)
	}
	return res, nil
}
