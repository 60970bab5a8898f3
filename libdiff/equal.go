package libdiff

import (
	"github.com/confkit/confdiff/ir"
)

// equalNodes is deep structural equality.  Object equality ignores key
// order in both modes; array equality is positional under strict and
// multiset-based otherwise.  Scalar equality follows ir.Compare, so
// numbers are equal only when effective type (integer vs. float) and
// value both match.
func equalNodes(a, b *ir.Node, strict bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ir.ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, key := range a.Fields {
			bv := ir.Get(b, key)
			if bv == nil {
				return false
			}
			if !equalNodes(a.Values[i], bv, strict) {
				return false
			}
		}
		return true
	case ir.ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		if strict {
			for i := range a.Values {
				if !equalNodes(a.Values[i], b.Values[i], strict) {
					return false
				}
			}
			return true
		}
		return equalMultiset(a, b)
	default:
		return ir.Compare(a, b) == 0
	}
}

// equalMultiset matches every element of a against a distinct,
// so-far-unused element of b.  Quadratic, but trees are small and
// request-scoped.
func equalMultiset(a, b *ir.Node) bool {
	used := make([]bool, len(b.Values))
	for _, av := range a.Values {
		found := false
		for j, bv := range b.Values {
			if used[j] {
				continue
			}
			if equalNodes(av, bv, false) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
