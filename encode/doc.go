// Package encode renders IR nodes as display text for the CLI.
//
// # Usage
//
//	// YAML (the default)
//	err := encode.Encode(node, w)
//
//	// pretty JSON with colors
//	err := encode.Encode(node, w,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/confkit/confdiff/ir - IR representation
//   - github.com/confkit/confdiff/format - Format enumeration
package encode
