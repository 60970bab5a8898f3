package encode

import (
	"strings"
	"testing"

	"github.com/confkit/confdiff/format"
	"github.com/confkit/confdiff/ir"
)

func sampleNode() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromInt(1)},
		{Key: "a", Val: ir.FromSlice([]*ir.Node{
			ir.FromFloat(1.5),
			ir.FromString("x"),
			ir.Null(),
		})},
	})
}

func TestEncodeYAML(t *testing.T) {
	var sb strings.Builder
	if err := Encode(sampleNode(), &sb); err != nil {
		t.Fatal(err)
	}
	want := "b: 1\na:\n- 1.5\n- x\n- null\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestEncodeJSON(t *testing.T) {
	var sb strings.Builder
	err := Encode(sampleNode(), &sb, EncodeFormat(format.JSONFormat))
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "b": 1,
  "a": [
    1.5,
    "x",
    null
  ]
}
`
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	var sb strings.Builder
	obj := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromBool(true)}})
	if err := Encode(obj, &sb, EncodeFormat(format.JSONFormat), Indent(4)); err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"k\": true\n}\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestEncodeJSONEmptyComposites(t *testing.T) {
	var sb strings.Builder
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "o", Val: ir.FromKeyVals(nil)},
		{Key: "a", Val: ir.FromSlice(nil)},
	})
	if err := Encode(obj, &sb, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"o\": {},\n  \"a\": []\n}\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(ir.FromInt(42)); got != "42" {
		t.Errorf("got %q", got)
	}
	if got := MustString(nil, EncodeFormat(format.JSONFormat)); got != "null" {
		t.Errorf("nil node: %q", got)
	}
}
