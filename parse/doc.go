// Package parse provides the format adapters turning raw JSON, YAML,
// or XML text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(data, parse.ParseYAML())
//	if err != nil {
//	    var pe *parse.ParseError
//	    errors.As(err, &pe) // pe.Format names the offending format
//	}
//
// All three adapters produce the same canonical shape, so trees from
// different runs of the same adapter are directly comparable.  Mapping
// key order is preserved in every format, which is what makes change
// paths and change ordering deterministic.
//
// The XML adapter has reduced fidelity: element text is hoisted under
// the reserved key "text", repeated sibling tags fold into arrays, and
// attributes are ignored.
//
// # Related Packages
//
//   - github.com/confkit/confdiff/ir - IR representation
//   - github.com/confkit/confdiff/libdiff - Structural diff over IR nodes
package parse
