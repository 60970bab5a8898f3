package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/confkit/confdiff/ir"
)

// TextKey is the reserved object key holding an element's direct text
// content.
const TextKey = "text"

// parseXML folds an XML document into the generic IR shape: every
// element becomes an object, trimmed text before the first child goes
// under TextKey, and repeated sibling tags promote the entry to an
// array in occurrence order.  Attributes are not modeled.
func parseXML(d []byte, opts *parseOpts) (*ir.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("no root element")
		}
		if err != nil {
			return nil, err
		}
		if _, ok := tok.(xml.StartElement); !ok {
			continue
		}
		// the root element's own tag is dropped; its content becomes
		// the top-level object
		root, err := xmlElement(dec, 1, opts.maxDepth)
		if err != nil {
			return nil, err
		}
		for {
			tok, err := dec.Token()
			if err == io.EOF {
				return root, nil
			}
			if err != nil {
				return nil, err
			}
			if _, ok := tok.(xml.StartElement); ok {
				return nil, fmt.Errorf("multiple root elements")
			}
		}
	}
}

func xmlElement(dec *xml.Decoder, depth, maxDepth int) (*ir.Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("document exceeds max nesting depth %d", maxDepth)
	}
	res := &ir.Node{Type: ir.ObjectType}
	var text strings.Builder
	sawChild := false
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !sawChild {
				sawChild = true
				// text after the first child is tail text, dropped
				if s := strings.TrimSpace(text.String()); s != "" {
					res.Put(TextKey, ir.FromString(s))
				}
			}
			child, err := xmlElement(dec, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			addXMLChild(res, t.Name.Local, child)
		case xml.CharData:
			if !sawChild {
				text.Write(t)
			}
		case xml.EndElement:
			if !sawChild {
				if s := strings.TrimSpace(text.String()); s != "" {
					res.Put(TextKey, ir.FromString(s))
				}
			}
			return res, nil
		}
	}
}

// addXMLChild appends an entry for tag; a repeated tag promotes the
// prior entry to an array, first occurrence before the second.
func addXMLChild(res *ir.Node, tag string, child *ir.Node) {
	prior := ir.Get(res, tag)
	if prior == nil {
		res.Put(tag, child)
		return
	}
	if prior.Type == ir.ArrayType {
		prior.Values = append(prior.Values, child)
		return
	}
	res.Put(tag, ir.FromSlice([]*ir.Node{prior, child}))
}
