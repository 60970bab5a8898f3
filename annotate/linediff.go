package annotate

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// AnnotateLines is the strict alternative to Annotate: a real
// line-level text diff of the two inputs.  Lines only present in the
// source are marked "-", lines only present in the target "+"; there
// is no "~" marker since a textual diff has no notion of modification
// in place.  Offered as an explicit opt-in, never the default.
func AnnotateLines(source, target string) *Annotated {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(source, target)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	res := &Annotated{}
	for i := range diffs {
		d := &diffs[i]
		lines := splitChunk(d.Text)
		switch d.Type {
		case diffpatch.DiffEqual:
			for _, l := range lines {
				res.Source = append(res.Source, MarkKeep+" "+l)
				res.Target = append(res.Target, MarkKeep+" "+l)
			}
		case diffpatch.DiffDelete:
			for _, l := range lines {
				res.Source = append(res.Source, MarkDelete+" "+l)
			}
		case diffpatch.DiffInsert:
			for _, l := range lines {
				res.Target = append(res.Target, MarkInsert+" "+l)
			}
		}
	}
	return res
}

// splitChunk splits a diff chunk into lines, dropping the trailing
// empty piece a final newline produces.
func splitChunk(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
