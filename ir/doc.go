// Package ir provides the intermediate representation (IR) for parsed
// configuration documents.
//
// # Overview
//
// All documents confdiff compares - whether JSON, YAML, or XML - are
// represented as ir.Node trees.  The IR is a simple recursive tagged
// union over {null, bool, number, string, object, array} and carries no
// position information from the input text, making it purely semantic.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ObjectType: key-value pairs (fields and values, source order)
//   - ArrayType: ordered list of nodes
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "key", Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Numbers
//
// Number values are placed under Int64 if integral and Float64 if
// floating point.  The distinction is deliberate: JSON and YAML
// distinguish 1 from 1.0, and the differ treats them as unequal.
//
// # Comparison
//
// ir.Compare defines a deterministic total order over nodes; equality
// under Compare is strict structural equality:
//
//	equal := ir.Compare(a, b) == 0
//
// # Thread Safety
//
// Node structures are not thread-safe.  Trees are parsed once per
// comparison, owned by that comparison, and discarded with it.
//
// # Related Packages
//
//   - github.com/confkit/confdiff/parse - Parses text into IR nodes
//   - github.com/confkit/confdiff/encode - Encodes IR nodes to text
//   - github.com/confkit/confdiff/libdiff - Structural diff over IR nodes
package ir
