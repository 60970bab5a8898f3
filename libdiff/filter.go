package libdiff

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// FilterEnv is the expression environment a filter predicate runs in.
type FilterEnv struct {
	Path string `expr:"path"`
	Kind string `expr:"kind"`
}

// Filter keeps the changes for which the expr predicate src evaluates
// to true, e.g. `kind == "deletion" && path startsWith "root.server"`.
// Compile and runtime failures are caller errors.
func Filter(changes []Change, src string) ([]Change, error) {
	prog, err := expr.Compile(src, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad filter expression %q: %w", src, err)
	}
	var res []Change
	for i := range changes {
		env := FilterEnv{
			Path: changes[i].Path,
			Kind: changes[i].Kind.String(),
		}
		out, err := expr.Run(prog, env)
		if err != nil {
			return nil, fmt.Errorf("filter expression %q: %w", src, err)
		}
		if keep, _ := out.(bool); keep {
			res = append(res, changes[i])
		}
	}
	return res, nil
}
