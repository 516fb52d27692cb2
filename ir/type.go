package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	AtomType
	StringType
	RawType
	ListType
	SeqType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		NumberType: "Number",
		AtomType:   "Atom",
		StringType: "String",
		RawType:    "Raw",
		ListType:   "List",
		SeqType:    "Seq",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Number": NumberType,
		"Atom":   AtomType,
		"String": StringType,
		"Raw":    RawType,
		"List":   ListType,
		"Seq":    SeqType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		AtomType,
		StringType,
		RawType,
		ListType,
		SeqType,
	}
}

// IsLeaf reports whether nodes of type t never have children.
func (t Type) IsLeaf() bool {
	switch t {
	case ListType, SeqType:
		return false
	default:
		return true
	}
}

// IsText reports whether nodes of type t carry plain text: raw legacy
// strings, atoms and quoted strings.
func (t Type) IsText() bool {
	switch t {
	case AtomType, StringType, RawType:
		return true
	default:
		return false
	}
}
