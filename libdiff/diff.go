package libdiff

import (
	"github.com/confkit/confdiff/ir"
)

type diffOpts struct {
	ignore map[string]bool
	strict bool
}

type Option func(*diffOpts)

// IgnoreKeys excludes keys by exact name: matching keys are neither
// recursed into nor reported.
func IgnoreKeys(keys ...string) Option {
	return func(o *diffOpts) {
		for _, k := range keys {
			o.ignore[k] = true
		}
	}
}

// Strict controls sequence comparison: true (the default) requires
// identical order, false compares sequences as unordered multisets.
func Strict(v bool) Option {
	return func(o *diffOpts) { o.strict = v }
}

// Diff walks from and to in lockstep and returns the ordered change
// set turning from into to.  Equal inputs yield nil.
//
// Additions and modifications at each object level are emitted in to's
// key order with nested results spliced in at the parent key, followed
// by deletions in from's key order.  Recursion never descends into
// arrays: a changed array is reported as one modification of the whole
// value.
func Diff(from, to *ir.Node, opts ...Option) []Change {
	o := &diffOpts{strict: true, ignore: map[string]bool{}}
	for _, f := range opts {
		f(o)
	}
	if from == nil {
		from = ir.Null()
	}
	if to == nil {
		to = ir.Null()
	}
	if from.Type == ir.ObjectType && to.Type == ir.ObjectType {
		return diffObjects(nil, from, to, RootPath, o)
	}
	// a bare scalar/sequence root, or a root type mismatch, is a
	// single root-level value
	if equalNodes(from, to, o.strict) {
		return nil
	}
	return []Change{{Path: RootPath, Kind: Modification, Old: from, New: to}}
}

func diffObjects(dst []Change, from, to *ir.Node, path string, o *diffOpts) []Change {
	for i, key := range to.Fields {
		if o.ignore[key] {
			continue
		}
		keyPath := path + PathSep + key
		tv := to.Values[i]
		sv := ir.Get(from, key)
		if sv == nil {
			dst = append(dst, Change{Path: keyPath, Kind: Addition, New: tv})
			continue
		}
		if equalNodes(sv, tv, o.strict) {
			continue
		}
		if sv.Type == ir.ObjectType && tv.Type == ir.ObjectType {
			dst = diffObjects(dst, sv, tv, keyPath, o)
			continue
		}
		dst = append(dst, Change{Path: keyPath, Kind: Modification, Old: sv, New: tv})
	}
	for i, key := range from.Fields {
		if o.ignore[key] {
			continue
		}
		if ir.Get(to, key) != nil {
			continue
		}
		dst = append(dst, Change{
			Path: path + PathSep + key,
			Kind: Deletion,
			Old:  from.Values[i],
		})
	}
	return dst
}
