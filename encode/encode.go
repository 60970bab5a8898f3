package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/confkit/confdiff/format"
	"github.com/confkit/confdiff/ir"
)

// Encode renders a node as display text, YAML by default.  JSON output
// is pretty-printed and supports colors; XML is not an output format
// here, nodes parsed from XML display as YAML.
func Encode(y *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{format: format.YAMLFormat, indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.format == format.JSONFormat {
		var sb strings.Builder
		if err := encodeJSON(&sb, y, es, 0); err != nil {
			return err
		}
		sb.WriteByte('\n')
		_, err := io.WriteString(w, sb.String())
		return err
	}
	d, err := yaml.Marshal(toGo(y))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// MustString renders a node to a string, falling back to a raw
// representation when encoding fails.
func MustString(y *ir.Node, opts ...EncodeOption) string {
	var sb strings.Builder
	if err := Encode(y, &sb, opts...); err != nil {
		return fmt.Sprintf("[raw] %v", y)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func encodeJSON(sb *strings.Builder, y *ir.Node, es *EncState, depth int) error {
	if y == nil {
		sb.WriteString(es.literal("null"))
		return nil
	}
	switch y.Type {
	case ir.NullType:
		sb.WriteString(es.literal("null"))
	case ir.BoolType:
		sb.WriteString(es.literal(strconv.FormatBool(y.Bool)))
	case ir.NumberType:
		d, err := y.MarshalJSON()
		if err != nil {
			return err
		}
		sb.WriteString(es.number(string(d)))
	case ir.StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		sb.WriteString(es.str(string(d)))
	case ir.ArrayType:
		if len(y.Values) == 0 {
			sb.WriteString("[]")
			return nil
		}
		sb.WriteString("[\n")
		for i, yv := range y.Values {
			es.pad(sb, depth+1)
			if err := encodeJSON(sb, yv, es, depth+1); err != nil {
				return err
			}
			if i < len(y.Values)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		es.pad(sb, depth)
		sb.WriteByte(']')
	case ir.ObjectType:
		if len(y.Fields) == 0 {
			sb.WriteString("{}")
			return nil
		}
		sb.WriteString("{\n")
		for i, f := range y.Fields {
			es.pad(sb, depth+1)
			d, err := json.Marshal(f)
			if err != nil {
				return err
			}
			sb.WriteString(es.key(string(d)))
			sb.WriteString(": ")
			if err := encodeJSON(sb, y.Values[i], es, depth+1); err != nil {
				return err
			}
			if i < len(y.Fields)-1 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		es.pad(sb, depth)
		sb.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode node type %s", y.Type)
	}
	return nil
}

// toGo converts a node to plain Go values for the YAML encoder, using
// an ordered MapSlice so objects keep field order.
func toGo(y *ir.Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return y.Bool
	case ir.NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		return *y.Float64
	case ir.StringType:
		return y.String
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			res[i] = toGo(yv)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = yaml.MapItem{Key: f, Value: toGo(y.Values[i])}
		}
		return res
	}
	return nil
}
