package libdiff

import (
	"testing"

	"github.com/confkit/confdiff/ir"
	"github.com/confkit/confdiff/parse"
)

func mustJSON(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s), parse.ParseJSON())
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return n
}

type diffTest struct {
	name string
	from string
	to   string
	opts []Option
	want []Change
}

var diffTests = []diffTest{
	{
		name: "flat add and modify",
		from: `{"a": 1, "b": 2}`,
		to:   `{"a": 1, "b": 3, "c": 4}`,
		want: []Change{
			{Path: "root.b", Kind: Modification},
			{Path: "root.c", Kind: Addition},
		},
	},
	{
		name: "deletions after additions",
		from: `{"gone": 1, "kept": 2}`,
		to:   `{"kept": 2, "new": 3}`,
		want: []Change{
			{Path: "root.new", Kind: Addition},
			{Path: "root.gone", Kind: Deletion},
		},
	},
	{
		name: "nested recursion splices at parent key",
		from: `{"server": {"host": "a", "port": 80}, "tail": 1}`,
		to:   `{"server": {"host": "b", "port": 80}, "tail": 2}`,
		want: []Change{
			{Path: "root.server.host", Kind: Modification},
			{Path: "root.tail", Kind: Modification},
		},
	},
	{
		name: "int float mismatch",
		from: `{"n": 1}`,
		to:   `{"n": 1.0}`,
		want: []Change{
			{Path: "root.n", Kind: Modification},
		},
	},
	{
		name: "key order alone is no change",
		from: `{"a": 1, "b": 2}`,
		to:   `{"b": 2, "a": 1}`,
		want: nil,
	},
	{
		name: "array reorder strict",
		from: `{"xs": [1, 2, 3]}`,
		to:   `{"xs": [3, 2, 1]}`,
		want: []Change{
			{Path: "root.xs", Kind: Modification},
		},
	},
	{
		name: "array reorder lenient",
		from: `{"xs": [1, 2, 3]}`,
		to:   `{"xs": [3, 2, 1]}`,
		opts: []Option{Strict(false)},
		want: nil,
	},
	{
		name: "lenient respects multiplicity",
		from: `{"xs": [1, 1, 2]}`,
		to:   `{"xs": [1, 2, 2]}`,
		opts: []Option{Strict(false)},
		want: []Change{
			{Path: "root.xs", Kind: Modification},
		},
	},
	{
		name: "no per element array diffing",
		from: `{"xs": [{"a": 1}, {"a": 2}]}`,
		to:   `{"xs": [{"a": 1}, {"a": 3}]}`,
		want: []Change{
			{Path: "root.xs", Kind: Modification},
		},
	},
	{
		name: "ignored keys skipped entirely",
		from: `{"ts": 1, "v": {"ts": 2, "x": 1}}`,
		to:   `{"ts": 9, "v": {"x": 2}}`,
		opts: []Option{IgnoreKeys("ts")},
		want: []Change{
			{Path: "root.v.x", Kind: Modification},
		},
	},
	{
		name: "type change is one modification",
		from: `{"v": {"a": 1}}`,
		to:   `{"v": [1]}`,
		want: []Change{
			{Path: "root.v", Kind: Modification},
		},
	},
	{
		name: "null and absent differ",
		from: `{"v": null}`,
		to:   `{}`,
		want: []Change{
			{Path: "root.v", Kind: Deletion},
		},
	},
	{
		name: "root type mismatch",
		from: `{"a": 1}`,
		to:   `[1]`,
		want: []Change{
			{Path: "root", Kind: Modification},
		},
	},
	{
		name: "equal scalar roots",
		from: `3`,
		to:   `3`,
		want: nil,
	},
	{
		name: "unequal scalar roots",
		from: `3`,
		to:   `"3"`,
		want: []Change{
			{Path: "root", Kind: Modification},
		},
	},
}

func TestDiff(t *testing.T) {
	for _, tc := range diffTests {
		t.Run(tc.name, func(t *testing.T) {
			got := Diff(mustJSON(t, tc.from), mustJSON(t, tc.to), tc.opts...)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d changes, want %d: %+v", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i].Path != tc.want[i].Path {
					t.Errorf("change %d path %q, want %q", i, got[i].Path, tc.want[i].Path)
				}
				if got[i].Kind != tc.want[i].Kind {
					t.Errorf("change %d kind %s, want %s", i, got[i].Kind, tc.want[i].Kind)
				}
			}
		})
	}
}

func TestDiffChangePayloads(t *testing.T) {
	from := mustJSON(t, `{"a": 1, "b": 2}`)
	to := mustJSON(t, `{"b": 3, "c": 4}`)
	changes := Diff(from, to)
	for _, c := range changes {
		switch c.Kind {
		case Addition:
			if c.Old != nil || c.New == nil {
				t.Errorf("addition %s: old=%v new=%v", c.Path, c.Old, c.New)
			}
		case Deletion:
			if c.Old == nil || c.New != nil {
				t.Errorf("deletion %s: old=%v new=%v", c.Path, c.Old, c.New)
			}
		case Modification:
			if c.Old == nil || c.New == nil {
				t.Errorf("modification %s: old=%v new=%v", c.Path, c.Old, c.New)
			}
		}
	}
}

// Swapping the inputs swaps additions and deletions and preserves
// modifications.
func TestDiffSymmetry(t *testing.T) {
	from := mustJSON(t, `{"a": 1, "b": {"x": 1, "y": 2}, "d": 3}`)
	to := mustJSON(t, `{"a": 2, "b": {"x": 1, "z": 4}, "e": 5}`)
	fwd := Summarize(Diff(from, to))
	rev := Summarize(Diff(to, from))
	if fwd.Additions != rev.Deletions || fwd.Deletions != rev.Additions {
		t.Errorf("additions/deletions do not mirror: %+v vs %+v", fwd, rev)
	}
	if fwd.Modifications != rev.Modifications {
		t.Errorf("modification counts differ: %+v vs %+v", fwd, rev)
	}
}

func TestDiffSelf(t *testing.T) {
	doc := mustJSON(t, `{"a": [1, {"b": null}], "c": {"d": 1.5}}`)
	if got := Diff(doc, doc); got != nil {
		t.Errorf("self diff not empty: %+v", got)
	}
}
