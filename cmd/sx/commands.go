package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "width",
			Description: "preferred line width (default 80)",
			Type:        cli.NamedFuncOpt(cfg.widthOpt, "(columns)"),
		},
		&cli.Opt{
			Name:        "indent",
			Description: "spaces per indent level (default 2)",
			Type:        cli.NamedFuncOpt(cfg.indentOpt, "(count)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sx").
		WithSynopsis("sx [opts] command [opts]").
		WithDescription("sx is a tool for working with s-expression files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sxMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			ViewCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			ConvertCommand(cfg),
			VersionCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [files]").
		WithDescription("reformat s-expression files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("pretty print s-expression files, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("resolve a path like module/pad[2]/at against documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("list").
		WithAliases("l", "ls").
		WithSynopsis("list <query> [files]").
		WithDescription("evaluate an expression query against documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
	cfg.List = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-text] <file1> <file2>").
		WithDescription("diff two documents, structurally or by text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <patchfile> [files]").
		WithDescription("apply an RFC 6902 JSON patch to documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: sexp/s, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: sexp/s, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(fmtFunc(&cfg.OutFormat), "(format)"),
		},
	}
	cmd := cli.NewCommand("convert").
		WithAliases("c").
		WithSynopsis("convert [-I fmt] [-O fmt] [files]").
		WithDescription("convert documents between sexp, json and yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("version").
		WithSynopsis("version").
		WithDescription("print the sx version").
		WithRun(func(cc *cli.Context, args []string) error {
			return version(cc)
		})
}
