package parse

import (
	"errors"
	"fmt"

	"github.com/confkit/confdiff/format"
	"github.com/confkit/confdiff/ir"
)

// ErrParse matches any *ParseError via errors.Is.
var ErrParse = errors.New("parse error")

// ParseError reports input text that does not conform to its declared
// format's grammar.  It wraps the underlying decoder error.
type ParseError struct {
	Format format.Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Parse decodes d into an IR tree according to the configured format
// (JSON when no format option is given).  A failure is always a
// *ParseError; partial trees are never returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		res, err = parseJSON(d, pOpts)
	case format.YAMLFormat:
		res, err = parseYAML(d, pOpts)
	case format.XMLFormat:
		res, err = parseXML(d, pOpts)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return nil, &ParseError{Format: pOpts.format, Err: err}
	}
	return res, nil
}
