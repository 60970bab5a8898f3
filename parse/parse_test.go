package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/confkit/confdiff/format"
	"github.com/confkit/confdiff/ir"
)

func TestParseJSONKeyOrder(t *testing.T) {
	node, err := Parse([]byte(`{"b": 1, "a": 2}`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("expected object, got %s", node.Type)
	}
	if node.Fields[0] != "b" || node.Fields[1] != "a" {
		t.Errorf("key order not preserved: %v", node.Fields)
	}
}

func TestParseJSONNumbers(t *testing.T) {
	node, err := Parse([]byte(`{"i": 1, "f": 1.0, "e": 1e3}`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	i := ir.Get(node, "i")
	if i.Int64 == nil || *i.Int64 != 1 {
		t.Errorf("1 should be an integer, got %+v", i)
	}
	f := ir.Get(node, "f")
	if f.Float64 == nil || *f.Float64 != 1.0 {
		t.Errorf("1.0 should be a float, got %+v", f)
	}
	e := ir.Get(node, "e")
	if e.Float64 == nil || *e.Float64 != 1000 {
		t.Errorf("1e3 should be a float, got %+v", e)
	}
}

func TestParseJSONScalars(t *testing.T) {
	node, err := Parse([]byte(`{"s": "x", "b": true, "n": null, "a": [1, 2]}`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	if s := ir.Get(node, "s"); s.Type != ir.StringType || s.String != "x" {
		t.Errorf("bad string: %+v", s)
	}
	if b := ir.Get(node, "b"); b.Type != ir.BoolType || !b.Bool {
		t.Errorf("bad bool: %+v", b)
	}
	if n := ir.Get(node, "n"); n.Type != ir.NullType {
		t.Errorf("bad null: %+v", n)
	}
	if a := ir.Get(node, "a"); a.Type != ir.ArrayType || len(a.Values) != 2 {
		t.Errorf("bad array: %+v", a)
	}
}

type parseErrTest struct {
	name   string
	input  string
	opt    ParseOption
	format format.Format
}

var parseErrTests = []parseErrTest{
	{"json syntax", `{"a":}`, ParseJSON(), format.JSONFormat},
	{"json trailing", `{"a": 1} {"b": 2}`, ParseJSON(), format.JSONFormat},
	{"json empty", ``, ParseJSON(), format.JSONFormat},
	{"yaml syntax", "a: [1, 2", ParseYAML(), format.YAMLFormat},
	{"xml malformed", `<a><b></a>`, ParseXML(), format.XMLFormat},
	{"xml no root", `   `, ParseXML(), format.XMLFormat},
}

func TestParseErrors(t *testing.T) {
	for _, tc := range parseErrTests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.input), tc.opt)
			if err == nil {
				t.Fatalf("expected error for %q", tc.input)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error does not match ErrParse: %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error is not a *ParseError: %v", err)
			}
			if pe.Format != tc.format {
				t.Errorf("error names format %s, want %s", pe.Format, tc.format)
			}
			if !strings.Contains(err.Error(), tc.format.String()) {
				t.Errorf("error message %q does not name %s", err, tc.format)
			}
		})
	}
}

func TestParseDepthGuard(t *testing.T) {
	_, err := Parse([]byte(`{"a": {"b": {"c": 1}}}`), ParseJSON(), MaxDepth(2))
	if err == nil {
		t.Fatal("expected depth guard to trip")
	}
	if !strings.Contains(err.Error(), "depth") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := Parse([]byte(`{"a": {"b": 1}}`), ParseJSON(), MaxDepth(2)); err != nil {
		t.Errorf("within guard, got %v", err)
	}
}
