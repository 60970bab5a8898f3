package parse

import (
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/confkit/confdiff/ir"
)

// parseYAML leans on goccy for the grammar: anchors and aliases are
// resolved and scalar tags inferred per the YAML spec.  UseOrderedMap
// keeps mapping key order so paths come out deterministic.
func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAML(v, 1, opts.maxDepth)
}

func fromYAML(v any, depth, maxDepth int) (*ir.Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("document exceeds max nesting depth %d", maxDepth)
	}
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromFloat(float64(x)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case string:
		return ir.FromString(x), nil
	case []any:
		res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, len(x))}
		for i, e := range x {
			val, err := fromYAML(e, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			res.Values[i] = val
		}
		return res, nil
	case yaml.MapSlice:
		res := &ir.Node{Type: ir.ObjectType}
		for _, item := range x {
			val, err := fromYAML(item.Value, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			res.Put(fmt.Sprintf("%v", item.Key), val)
		}
		return res, nil
	case map[string]any:
		// shouldn't arise under UseOrderedMap; sort for determinism
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := &ir.Node{Type: ir.ObjectType}
		for _, k := range keys {
			val, err := fromYAML(x[k], depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			res.Put(k, val)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported YAML value of type %T", v)
	}
}
