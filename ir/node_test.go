package ir

import (
	"testing"
)

func TestAppendChaining(t *testing.T) {
	n := NewList("pad").Append("1").Append(2.5, 3)
	if len(n.Values) != 3 {
		t.Fatalf("got %d values", len(n.Values))
	}
	if n.Values[0].Type != RawType || n.Values[0].Text != "1" {
		t.Errorf("value 0: %s %q", n.Values[0].Type, n.Values[0].Text)
	}
	if n.Values[1].Type != NumberType || n.Values[1].Float64 != 2.5 {
		t.Errorf("value 1: %s %v", n.Values[1].Type, n.Values[1].Float64)
	}
	if n.Values[2].Type != NumberType || n.Values[2].Float64 != 3 {
		t.Errorf("value 2: %s %v", n.Values[2].Type, n.Values[2].Float64)
	}
}

func TestAppendListReturnsChild(t *testing.T) {
	root := NewList("module")
	at := root.AppendList("at", 1, 2)
	if at == root {
		t.Fatal("AppendList returned the parent")
	}
	if at.Name != "at" || len(at.Values) != 2 {
		t.Fatalf("child is %q with %d values", at.Name, len(at.Values))
	}
	if len(root.Values) != 1 || root.Values[0] != at {
		t.Fatal("child not appended to parent")
	}
	// continue building downward
	at.AppendList("angle", 90)
	if root.Values[0].FindChild("angle") == nil {
		t.Fatal("grandchild missing")
	}
}

func TestValueText(t *testing.T) {
	n := NewList("p",
		"raw",
		FromAtom("atom"),
		FromString("quoted"),
		FromFloat(4),
		NewList("sub"),
	)
	tests := []struct {
		i    int
		want string
	}{
		{0, "raw"},
		{1, "atom"},
		{2, "quoted"},
		{3, ""},
		{4, ""},
		{5, ""},
		{-1, ""},
	}
	for _, tc := range tests {
		if got := n.ValueText(tc.i); got != tc.want {
			t.Errorf("ValueText(%d) = %q want %q", tc.i, got, tc.want)
		}
	}
}

func TestRemoveIf(t *testing.T) {
	n := NewList("l", 0, 1, 2, 3, 4, 5)
	n.RemoveIf(func(v *Node, i int) bool {
		return i%2 == 1
	})
	if len(n.Values) != 3 {
		t.Fatalf("got %d values", len(n.Values))
	}
	for i, want := range []float64{0, 2, 4} {
		if n.Values[i].Float64 != want {
			t.Errorf("value %d = %v want %v", i, n.Values[i].Float64, want)
		}
	}
	// predicate over values
	m := NewList("l", FromAtom("keep"), FromAtom("drop"), FromAtom("keep"))
	m.RemoveIf(func(v *Node, i int) bool {
		return v.Text == "drop"
	})
	if len(m.Values) != 2 {
		t.Fatalf("got %d values", len(m.Values))
	}
	for _, v := range m.Values {
		if v.Text != "keep" {
			t.Errorf("survivor %q", v.Text)
		}
	}
}

func TestFindChildShallow(t *testing.T) {
	root := NewList("module")
	inner := root.AppendList("group")
	inner.AppendList("pad", "hidden")
	root.AppendList("pad", "1")
	root.AppendList("pad", "2")

	first := root.FindChild("pad")
	if first == nil || first.ValueText(0) != "1" {
		t.Fatalf("FindChild: %v", first)
	}
	all := root.FindChildren("pad")
	if len(all) != 2 {
		t.Fatalf("FindChildren found %d", len(all))
	}
	if all[0].ValueText(0) != "1" || all[1].ValueText(0) != "2" {
		t.Errorf("order broken: %q %q", all[0].ValueText(0), all[1].ValueText(0))
	}
	if root.FindChild("group").FindChild("pad").ValueText(0) != "hidden" {
		t.Error("grandchild unreachable through its own parent")
	}
	if root.FindChild("missing") != nil {
		t.Error("missing name found")
	}
	// atoms with matching text never match
	root.Append(FromAtom("pad"))
	if len(root.FindChildren("pad")) != 2 {
		t.Error("atom matched as child list")
	}
}

func TestCloneIndependent(t *testing.T) {
	orig := NewList("module", FromAtom("a"))
	orig.AppendList("at", 1, 2)
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone differs")
	}
	cp.FindChild("at").Append(90)
	if Equal(orig, cp) {
		t.Fatal("clone shares children with original")
	}
}

func TestVisit(t *testing.T) {
	root := NewList("a", NewList("b", NewList("c")), FromAtom("d"))
	var pre, post []string
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		label := n.Name
		if n.Type == AtomType {
			label = n.Text
		}
		if isPost {
			post = append(post, label)
		} else {
			pre = append(pre, label)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	wantPre := []string{"a", "b", "c", "d"}
	for i := range wantPre {
		if pre[i] != wantPre[i] {
			t.Errorf("pre[%d] = %q want %q", i, pre[i], wantPre[i])
		}
	}
	if post[len(post)-1] != "a" {
		t.Errorf("last post is %q", post[len(post)-1])
	}
}

func TestFromValueFallback(t *testing.T) {
	n := FromValue(struct{ X int }{1})
	if n.Type != RawType {
		t.Errorf("fallback type %s", n.Type)
	}
	if FromValue(nil).Type != NullType {
		t.Error("nil not null")
	}
	if FromValue(int64(3)).Float64 != 3 {
		t.Error("int64 not normalized")
	}
}
