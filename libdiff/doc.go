// Package libdiff computes path-addressed structural diffs over IR
// trees.
//
// # Usage
//
//	changes := libdiff.Diff(from, to,
//	    libdiff.IgnoreKeys("secret"),
//	    libdiff.Strict(false))
//	summary := libdiff.Summarize(changes)
//
// Each change carries a dotted path rooted at "root", a kind (addition,
// deletion, modification), and the old/new values verbatim.  The walk
// recurses through nested objects only; arrays are compared as whole
// values, positionally under strict mode and as unordered multisets
// otherwise.
//
// # Related Packages
//
//   - github.com/confkit/confdiff/ir - IR representation
//   - github.com/confkit/confdiff/annotate - Line-level annotation of changes
package libdiff
