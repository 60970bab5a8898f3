// Package confdiff compares two structured-configuration documents of
// the same format and reports their differences as a path-addressed
// change set, a summary, and a line-annotated rendering of both
// inputs.
//
// # Usage
//
//	res, err := confdiff.Compare(srcText, tgtText, format.YAMLFormat,
//	    confdiff.IgnoreKeys("timestamp"),
//	    confdiff.Strict(false))
//
// Comparisons are pure and request-scoped: nothing is shared between
// calls, so any number of comparisons may run concurrently.
package confdiff

import (
	"errors"

	"github.com/confkit/confdiff/annotate"
	"github.com/confkit/confdiff/debug"
	"github.com/confkit/confdiff/format"
	"github.com/confkit/confdiff/libdiff"
	"github.com/confkit/confdiff/parse"
)

// ErrInternal marks failures that indicate a defect in confdiff rather
// than a problem with the caller's input.  Parse failures are never
// internal; they satisfy errors.Is(err, parse.ErrParse) instead.
var ErrInternal = errors.New("internal comparison error")

type Config struct {
	IgnoreKeys []string
	Strict     bool
	Filter     string
	Precise    bool
	MaxDepth   int
}

type Option func(*Config)

// IgnoreKeys excludes keys by exact name from comparison and
// recursion.
func IgnoreKeys(keys ...string) Option {
	return func(c *Config) { c.IgnoreKeys = append(c.IgnoreKeys, keys...) }
}

// Strict controls sequence order sensitivity (default true).
func Strict(v bool) Option {
	return func(c *Config) { c.Strict = v }
}

// Filter applies an expr predicate over {path, kind} to the change set
// before summarizing and annotating.
func Filter(src string) Option {
	return func(c *Config) { c.Filter = src }
}

// PreciseAnnotation replaces the path-fragment heuristic with a real
// line diff of the two texts.
func PreciseAnnotation(v bool) Option {
	return func(c *Config) { c.Precise = v }
}

// MaxDepth overrides the default nesting guard on parsed documents.
func MaxDepth(n int) Option {
	return func(c *Config) { c.MaxDepth = n }
}

// Compare parses both inputs as f, diffs the trees, and derives the
// summary and the annotated rendering.  A parse failure of either
// input aborts the comparison; partial results are never returned.
func Compare(source, target string, f format.Format, opts ...Option) (*Result, error) {
	cfg := &Config{Strict: true, MaxDepth: parse.DefaultMaxDepth}
	for _, o := range opts {
		o(cfg)
	}
	pOpts := []parse.ParseOption{parse.ParseFormat(f), parse.MaxDepth(cfg.MaxDepth)}
	srcNode, err := parse.Parse([]byte(source), pOpts...)
	if err != nil {
		return nil, err
	}
	tgtNode, err := parse.Parse([]byte(target), pOpts...)
	if err != nil {
		return nil, err
	}
	changes := libdiff.Diff(srcNode, tgtNode,
		libdiff.IgnoreKeys(cfg.IgnoreKeys...),
		libdiff.Strict(cfg.Strict))
	if cfg.Filter != "" {
		changes, err = libdiff.Filter(changes, cfg.Filter)
		if err != nil {
			return nil, err
		}
	}
	if changes == nil {
		// wire shape: an empty diff is [], not null
		changes = []libdiff.Change{}
	}
	if debug.Diff() {
		debug.Logf("confdiff: %s: %d change(s)\n", f, len(changes))
	}
	var ann *annotate.Annotated
	if cfg.Precise {
		ann = annotate.AnnotateLines(source, target)
	} else {
		ann = annotate.Annotate(source, target, changes)
	}
	return &Result{
		Summary:       libdiff.Summarize(changes),
		Diff:          changes,
		FormattedDiff: ann,
	}, nil
}
