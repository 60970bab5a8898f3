package parse

import (
	"testing"

	"github.com/confkit/confdiff/ir"
)

func TestParseYAMLScalars(t *testing.T) {
	in := `
i: 1
f: 1.5
s: hello
b: true
n: null
`
	node, err := Parse([]byte(in), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if i := ir.Get(node, "i"); i.Int64 == nil || *i.Int64 != 1 {
		t.Errorf("bad int: %+v", i)
	}
	if f := ir.Get(node, "f"); f.Float64 == nil || *f.Float64 != 1.5 {
		t.Errorf("bad float: %+v", f)
	}
	if s := ir.Get(node, "s"); s.Type != ir.StringType || s.String != "hello" {
		t.Errorf("bad string: %+v", s)
	}
	if b := ir.Get(node, "b"); b.Type != ir.BoolType || !b.Bool {
		t.Errorf("bad bool: %+v", b)
	}
	if n := ir.Get(node, "n"); n.Type != ir.NullType {
		t.Errorf("bad null: %+v", n)
	}
}

func TestParseYAMLKeyOrder(t *testing.T) {
	node, err := Parse([]byte("zebra: 1\nalpha: 2\nmiddle: 3\n"), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"zebra", "alpha", "middle"}
	for i, k := range want {
		if node.Fields[i] != k {
			t.Fatalf("key order not preserved: %v", node.Fields)
		}
	}
}

func TestParseYAMLAnchors(t *testing.T) {
	in := `
base: &b
  x: 1
  y: 2
copy: *b
`
	node, err := Parse([]byte(in), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	base := ir.Get(node, "base")
	cp := ir.Get(node, "copy")
	if base == nil || cp == nil {
		t.Fatal("missing base or copy")
	}
	if ir.Compare(base, cp) != 0 {
		t.Errorf("alias did not resolve to anchor value")
	}
}

func TestParseYAMLNested(t *testing.T) {
	in := `
server:
  ports:
    - 80
    - 443
`
	node, err := Parse([]byte(in), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	ports := ir.Get(ir.Get(node, "server"), "ports")
	if ports == nil || ports.Type != ir.ArrayType || len(ports.Values) != 2 {
		t.Fatalf("bad ports: %+v", ports)
	}
	if *ports.Values[0].Int64 != 80 || *ports.Values[1].Int64 != 443 {
		t.Errorf("bad port values")
	}
}
