package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/confkit/confdiff/ir"
)

// parseJSON decodes from the token stream rather than into an untyped
// map so object key order survives into the IR.
func parseJSON(d []byte, opts *parseOpts) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, fmt.Errorf("empty document")
	}
	if err != nil {
		return nil, err
	}
	res, err := jsonValue(dec, tok, 1, opts.maxDepth)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after document")
	}
	return res, nil
}

func jsonValue(dec *json.Decoder, tok json.Token, depth, maxDepth int) (*ir.Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("document exceeds max nesting depth %d", maxDepth)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec, depth, maxDepth)
		case '[':
			return jsonArray(dec, depth, maxDepth)
		default:
			return nil, fmt.Errorf("unexpected %q", t)
		}
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		return jsonNumber(t), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func jsonObject(dec *json.Decoder, depth, maxDepth int) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := jsonValue(dec, valTok, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		// duplicate keys: last occurrence wins
		res.Put(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

func jsonArray(dec *json.Decoder, depth, maxDepth int) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ArrayType}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := jsonValue(dec, tok, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

func jsonNumber(n json.Number) *ir.Node {
	if i, err := n.Int64(); err == nil {
		return ir.FromInt(i)
	}
	f, err := n.Float64()
	if err != nil {
		// the decoder only produces syntactically valid numbers
		return ir.FromString(n.String())
	}
	return ir.FromFloat(f)
}
