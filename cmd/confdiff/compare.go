package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/confkit/confdiff"
	"github.com/confkit/confdiff/encode"
	"github.com/confkit/confdiff/format"
	"github.com/confkit/confdiff/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func compare(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		cfg.Compare.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compare requires 2 args, got %v", cli.ErrUsage, args)
	}
	srcText, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	tgtText, err := readInput(cc, args[1])
	if err != nil {
		return err
	}
	f := cfg.resolveFormat(args)
	opts := []confdiff.Option{
		confdiff.IgnoreKeys(cfg.IgnoreKeys...),
		confdiff.Strict(!cfg.Lenient),
		confdiff.PreciseAnnotation(cfg.Precise),
	}
	if cfg.Filter != "" {
		opts = append(opts, confdiff.Filter(cfg.Filter))
	}
	res, err := confdiff.Compare(srcText, tgtText, f, opts...)
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		if err := writeResult(cfg, cc.Out, res); err != nil {
			return err
		}
	}
	if res.HasChanges() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func (cfg *CompareConfig) resolveFormat(args []string) format.Format {
	if cfg.Format != nil {
		return *cfg.Format
	}
	for _, a := range args {
		if a != "-" {
			return format.FromSuffix(a)
		}
	}
	return format.JSONFormat
}

func readInput(cc *cli.Context, file string) (string, error) {
	if file == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return "", fmt.Errorf("error reading: %w", err)
		}
		return string(d), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	d, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", file, err)
	}
	return string(d), nil
}

func writeResult(cfg *CompareConfig, w io.Writer, res *confdiff.Result) error {
	switch {
	case cfg.Patch:
		d, err := libdiff.JSONPatch(res.Diff)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return err
	case cfg.J:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		return writeAnnotated(cfg, w, res)
	}
}

func writeAnnotated(cfg *CompareConfig, w io.Writer, res *confdiff.Result) error {
	var delColor, insColor, modColor *color.Color
	if cfg.useColor(w) {
		delColor = color.New(color.FgRed)
		insColor = color.New(color.FgGreen)
		modColor = color.New(color.FgYellow)
	}
	writeLine := func(line string) {
		switch {
		case delColor != nil && strings.HasPrefix(line, "- "):
			delColor.Fprintln(w, line)
		case insColor != nil && strings.HasPrefix(line, "+ "):
			insColor.Fprintln(w, line)
		case modColor != nil && strings.HasPrefix(line, "~ "):
			modColor.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}

	encOpts := cfg.encOpts(w)
	for i := range res.Diff {
		c := &res.Diff[i]
		fmt.Fprintf(w, "%s: %s\n", c.Path, c.Kind)
		if c.Old != nil {
			fmt.Fprintf(w, "  old: %s\n", indented(encode.MustString(c.Old, encOpts...)))
		}
		if c.New != nil {
			fmt.Fprintf(w, "  new: %s\n", indented(encode.MustString(c.New, encOpts...)))
		}
	}
	if len(res.Diff) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "--- source")
	for _, line := range res.FormattedDiff.Source {
		writeLine(line)
	}
	fmt.Fprintln(w, "+++ target")
	for _, line := range res.FormattedDiff.Target {
		writeLine(line)
	}
	s := res.Summary
	_, err := fmt.Fprintf(w, "\n%d addition(s), %d deletion(s), %d modification(s)\n",
		s.Additions, s.Deletions, s.Modifications)
	return err
}

func indented(s string) string {
	return strings.ReplaceAll(s, "\n", "\n    ")
}
