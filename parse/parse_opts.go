package parse

import (
	"github.com/confkit/confdiff/format"
)

// DefaultMaxDepth bounds document nesting so adversarial input cannot
// grow the stack without limit.
const DefaultMaxDepth = 1000

type parseOpts struct {
	format   format.Format
	maxDepth int
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseXML() ParseOption {
	return ParseFormat(format.XMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
