// Package format enumerates the document formats confdiff can compare.
//
// # Related Packages
//
//   - github.com/confkit/confdiff/parse - Parses text into IR nodes
//   - github.com/confkit/confdiff/encode - Encodes IR nodes to text
package format
