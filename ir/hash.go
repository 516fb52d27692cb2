package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// Hash returns a 64-bit structural hash of the node. Equal nodes hash
// equal within one process; maphash seeds differ across runs.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashTo(&h)
	return h.Sum64()
}

var hashSeed = maphash.MakeSeed()

func (n *Node) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(n.Type))
	switch n.Type {
	case NullType:
	case NumberType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.Float64))
		h.Write(b[:])
	case AtomType, StringType, RawType:
		h.WriteString(n.Text)
	case ListType:
		h.WriteString(n.Name)
		h.WriteByte(0)
		for _, v := range n.Values {
			v.hashTo(h)
		}
	case SeqType:
		for _, v := range n.Values {
			v.hashTo(h)
		}
	}
}
