package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a node in a tree. Steps are separated by '/': a
// named step "pad" resolves to the first direct child list named pad,
// "pad[2]" to the third, and a value step ".1" to the child value at
// index 1 whatever its kind. The empty path addresses the node
// itself.
type Path struct {
	Name       string
	Index      int
	ValueIndex *int
	Next       *Path
}

func (p *Path) String() string {
	buf := &bytes.Buffer{}
	for x := p; x != nil; x = x.Next {
		if buf.Len() > 0 {
			buf.WriteByte('/')
		}
		if x.ValueIndex != nil {
			fmt.Fprintf(buf, ".%d", *x.ValueIndex)
			continue
		}
		buf.WriteString(x.Name)
		if x.Index != 0 {
			fmt.Fprintf(buf, "[%d]", x.Index)
		}
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if p == "" {
		return nil, nil
	}
	var root, last *Path
	for _, frag := range strings.Split(p, "/") {
		step, err := parseStep(frag)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", p, err)
		}
		if last == nil {
			root, last = step, step
			continue
		}
		last.Next = step
		last = step
	}
	return root, nil
}

func parseStep(frag string) (*Path, error) {
	if frag == "" {
		return nil, fmt.Errorf("%w: empty step", ErrPath)
	}
	if frag[0] == '.' {
		i, err := strconv.Atoi(frag[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: bad value index %q", ErrPath, frag)
		}
		return &Path{ValueIndex: &i}, nil
	}
	name, rest := frag, ""
	if i := strings.IndexByte(frag, '['); i != -1 {
		name, rest = frag[:i], frag[i:]
	}
	if name == "" {
		return nil, fmt.Errorf("%w: empty name in %q", ErrPath, frag)
	}
	step := &Path{Name: name}
	if rest == "" {
		return step, nil
	}
	if rest[len(rest)-1] != ']' {
		return nil, fmt.Errorf("%w: expected '[' <index> ']' in %q", ErrPath, frag)
	}
	idx, err := strconv.ParseUint(rest[1:len(rest)-1], 10, 31)
	if err != nil {
		return nil, fmt.Errorf("%w: bad index in %q", ErrPath, frag)
	}
	step.Index = int(idx)
	return step, nil
}

// Lookup resolves path against the tree rooted at n. A named step
// that matches nothing gives (nil, nil); a value step out of range is
// an error, as is a malformed path.
func (n *Node) Lookup(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := n
	for x := p; x != nil; x = x.Next {
		if x.ValueIndex != nil {
			i := *x.ValueIndex
			if i < 0 || i >= len(res.Values) {
				return nil, fmt.Errorf("%w: value index %d out of range (len %d)", ErrPath, i, len(res.Values))
			}
			res = res.Values[i]
			continue
		}
		kids := res.FindChildren(x.Name)
		if x.Index >= len(kids) {
			return nil, nil
		}
		res = kids[x.Index]
	}
	return res, nil
}
