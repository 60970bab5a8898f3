package debug

import (
	"fmt"
	"os"

	"github.com/confkit/confdiff/encode"
	"github.com/confkit/confdiff/ir"
)

// Logf writes debug output to stderr, rendering *ir.Node arguments as
// YAML.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = encode.MustString(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
