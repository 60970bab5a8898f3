package main

import (
	"fmt"

	"github.com/confkit/confdiff/format"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "f",
		Aliases:     []string{"format"},
		Description: "input format: json/j, yaml/y, xml/x",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "confdiff").
		WithSynopsis("confdiff [opts] command [opts]").
		WithDescription("confdiff compares structured configuration documents.").
		WithOpts(opts...).
		WithSubs(
			CompareCommand(cfg),
			FormatsCommand(cfg))
}

func CompareCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompareConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "i",
		Aliases:     []string{"ignore"},
		Description: "key name to exclude from comparison (repeatable)",
		Type:        cli.NamedFuncOpt(cfg.ignoreOpt(), "(key)"),
	})
	cmd := cli.NewCommand("compare").
		WithAliases("c", "cmp", "diff").
		WithSynopsis("compare [opts] <source> <target>").
		WithDescription("compare two configuration documents of the same format").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compare(cfg, cc, args)
		})
	cfg.Compare = cmd
	return cmd
}

func FormatsCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("formats").
		WithSynopsis("formats").
		WithDescription("list supported input formats").
		WithRun(func(cc *cli.Context, args []string) error {
			for _, f := range format.AllFormats() {
				fmt.Fprintf(cc.Out, "%s (%s)\n", f, f.Suffix())
			}
			return nil
		})
}
