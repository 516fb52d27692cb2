package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString renders a character-level diff of two serializations,
// insertions green and deletions red, for terminal display.
func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs)
}
