package ir

import (
	"testing"

	"github.com/google/uuid"
)

func TestHelpers(t *testing.T) {
	xy := XY(1.5, -2)
	if xy.Name != "xy" || xy.Values[0].Float64 != 1.5 || xy.Values[1].Float64 != -2 {
		t.Errorf("XY: %v", xy)
	}

	at := At(1, 2)
	if at.Name != "at" || len(at.Values) != 2 {
		t.Errorf("At: %v", at)
	}
	rot := At(1, 2, 90)
	if len(rot.Values) != 3 || rot.Values[2].Float64 != 90 {
		t.Errorf("At with angle: %v", rot)
	}

	p := Property("Reference", "R1")
	if p.Name != "property" {
		t.Fatalf("Property: %v", p)
	}
	for i, want := range []string{"Reference", "R1"} {
		if v := p.Values[i]; v.Type != StringType || v.Text != want {
			t.Errorf("Property value %d: %s %q", i, v.Type, v.Text)
		}
	}

	id := uuid.MustParse("b8a9c7d6-1234-4abc-9def-0123456789ab")
	u := UUID(id)
	if u.Name != "uuid" || u.Values[0].Type != StringType || u.Values[0].Text != id.String() {
		t.Errorf("UUID: %v", u)
	}
}
