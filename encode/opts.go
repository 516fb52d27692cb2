package encode

type EncodeOption func(*EncState)

// EncodePretty switches the layout algorithm on and off. With pretty
// off every node renders on a single line regardless of width.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// EncodeCompact controls whether non-simple nodes that fit the width
// may render on a single line.
func EncodeCompact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

// EncodeQuoteAll forces quoting of atom and raw values that would
// otherwise render bare.
func EncodeQuoteAll(v bool) EncodeOption {
	return func(es *EncState) { es.quoteAll = v }
}

// EncodeWidth sets the preferred maximum line width.
func EncodeWidth(n int) EncodeOption {
	return func(es *EncState) { es.width = n }
}

// EncodeIndent sets the indent unit for multi-line layout.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// Depth sets the starting indent depth.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
