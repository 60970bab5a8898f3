package libdiff

import (
	"testing"
)

func TestSummarize(t *testing.T) {
	changes := []Change{
		{Path: "root.a", Kind: Addition},
		{Path: "root.b", Kind: Deletion},
		{Path: "root.c", Kind: Modification},
		{Path: "root.d", Kind: Modification},
	}
	s := Summarize(changes)
	if s.Additions != 1 || s.Deletions != 1 || s.Modifications != 2 {
		t.Errorf("bad summary: %+v", s)
	}
	if s.Total() != len(changes) {
		t.Errorf("total %d, want %d", s.Total(), len(changes))
	}
	if z := Summarize(nil); z.Total() != 0 {
		t.Errorf("empty change set should summarize to zero: %+v", z)
	}
}
