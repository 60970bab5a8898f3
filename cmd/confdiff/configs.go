package main

import (
	"fmt"
	"io"
	"os"

	"github.com/confkit/confdiff/encode"
	"github.com/confkit/confdiff/format"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`
	J     bool `cli:"name=json aliases=j desc='emit the full result as JSON'"`

	Format *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Format = &f
		return f, nil
	})
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(format.JSONFormat),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	// it would be nicer if cli supported
	// pointers to builtin types as well...
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CompareConfig struct {
	*MainConfig

	Lenient bool   `cli:"name=lenient aliases=unordered desc='compare sequences as unordered multisets'"`
	Precise bool   `cli:"name=precise desc='annotate with a line diff instead of the path heuristic'"`
	Patch   bool   `cli:"name=patch desc='emit the change set as an RFC 6902 operation list'"`
	Quiet   bool   `cli:"name=q aliases=quiet desc='no output, exit status only'"`
	Filter  string `cli:"name=filter desc='expr predicate over {path, kind} selecting change records'"`

	IgnoreKeys []string

	Compare *cli.Command
}

func (cfg *CompareConfig) ignoreOpt() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		cfg.IgnoreKeys = append(cfg.IgnoreKeys, v)
		return v, nil
	})
}
