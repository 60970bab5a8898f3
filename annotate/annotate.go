// Package annotate marks up the raw source and target texts with
// per-line change indicators derived from a structural change set.
package annotate

import (
	"strings"

	"github.com/confkit/confdiff/libdiff"
)

// Line markers.
const (
	MarkKeep   = " "
	MarkDelete = "-"
	MarkInsert = "+"
	MarkModify = "~"
)

// Annotated holds both inputs line by line, each line prefixed with a
// change marker and a space.
type Annotated struct {
	Source []string `json:"source"`
	Target []string `json:"target"`
}

// Annotate marks each raw line of the two inputs by matching change
// path fragments as substrings: a source line mentioning a deleted
// path fragment is marked "-", else a modified fragment "~", else
// unchanged; target lines symmetrically with "+" for additions.
//
// This is a heuristic, not a line-to-node mapping: a line whose text
// happens to contain a matching token can be over-marked, and
// reformatted or multi-line values can be missed.  That behavior is
// kept deliberately; see AnnotateLines for the stricter alternative.
func Annotate(source, target string, changes []libdiff.Change) *Annotated {
	var del, add, mod [][]string
	for i := range changes {
		frags := libdiff.Fragments(changes[i].Path)
		switch changes[i].Kind {
		case libdiff.Deletion:
			del = append(del, frags)
		case libdiff.Addition:
			add = append(add, frags)
		case libdiff.Modification:
			mod = append(mod, frags)
		}
	}
	res := &Annotated{}
	for _, line := range strings.Split(source, "\n") {
		switch {
		case lineMentions(line, del):
			res.Source = append(res.Source, MarkDelete+" "+line)
		case lineMentions(line, mod):
			res.Source = append(res.Source, MarkModify+" "+line)
		default:
			res.Source = append(res.Source, MarkKeep+" "+line)
		}
	}
	for _, line := range strings.Split(target, "\n") {
		switch {
		case lineMentions(line, add):
			res.Target = append(res.Target, MarkInsert+" "+line)
		case lineMentions(line, mod):
			res.Target = append(res.Target, MarkModify+" "+line)
		default:
			res.Target = append(res.Target, MarkKeep+" "+line)
		}
	}
	return res
}

func lineMentions(line string, fragLists [][]string) bool {
	for _, frags := range fragLists {
		for _, frag := range frags {
			if strings.Contains(line, frag) {
				return true
			}
		}
	}
	return false
}
