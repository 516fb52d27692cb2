// Package ir provides the in-memory representation for s-expression
// documents.
//
// # Overview
//
// The ir package defines the tree of nodes every s-expression document
// becomes: parsed from text, built programmatically, or produced by
// the conversion bridges. A document is one *Node and its descendants.
//
// The IR is a closed tagged union over a fixed set of kinds; every
// consumer (quoting, layout length computation, serialization,
// comparison) handles the kinds exhaustively.
//
// # Node Kinds
//
// The Type field indicates the node's kind:
//
//   - NullType: an absent value; serializes as the bare token nil
//   - NumberType: a float64 value; there is no integer kind, whole
//     values render as integers at encode time only
//   - AtomType: bare text, quoted on output only when required
//   - StringType: text that is always quoted on output
//   - RawType: legacy raw text, rendered exactly like an atom but
//     constructed from bare Go strings at older call sites
//   - ListType: a named parenthesized form (name value ...)
//   - SeqType: an inline value grouping, space-joined, no parentheses
//
// # Structure Constraints
//
// Only ListType and SeqType nodes have Values; only ListType nodes
// have a Name. Names are emitted verbatim and never quoted, even when
// the same text would be quoted as a value. Text kinds are immutable
// by convention: mutation happens at the list level through Append,
// AppendList and RemoveIf.
//
// Each node belongs to at most one parent. The tree carries no parent
// back-references; navigation is root-down, via FindChild,
// FindChildren, Lookup and Visit.
//
// # Creating Nodes
//
// Use the constructor functions:
//
//	pad := ir.NewList("pad", "1", ir.FromAtom("smd"))
//	pad.AppendList("at", 1.27, -2.54).Append(90)
//	name := ir.FromString("GND")
//
// NewList, Append and AppendList normalize plain Go values as by
// FromValue: strings become raw legacy values, numbers float64.
//
// # Paths
//
// Lookup addresses nodes with '/'-separated steps:
//
//	n, err := doc.Lookup("module/pad[2]/at")
//
// # Bridges
//
// Nodes marshal to a lossless JSON representation via MarshalJSON and
// back via UnmarshalJSON. ToAny and FromAny project trees onto the
// plain Go values used by JSON and YAML encoders; that projection
// drops the Atom/QuotedString distinction and is documented where it
// is lossy.
package ir
