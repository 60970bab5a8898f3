package confdiff

import (
	"github.com/confkit/confdiff/annotate"
	"github.com/confkit/confdiff/libdiff"
)

// Result is the complete outcome of one comparison.  Its JSON form is
// the wire shape the transport layer returns verbatim.
type Result struct {
	Summary       libdiff.Summary     `json:"summary"`
	Diff          []libdiff.Change    `json:"diff"`
	FormattedDiff *annotate.Annotated `json:"formatted_diff"`
}

// HasChanges reports whether the comparison found any difference.
func (r *Result) HasChanges() bool {
	return r.Summary.Total() > 0
}
