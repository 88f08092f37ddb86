package grid

import "testing"

// panel is a Host that is not grid-like.
type panel struct {
	Attached
}

func assertSizes(t *testing.T, defs *Definitions, want ...Value) {
	t.Helper()
	got := defs.Sizes()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (sizes %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
