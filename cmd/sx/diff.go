package main

import (
	"fmt"

	"github.com/sexp-format/sexp/encode"
	"github.com/sexp-format/sexp/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	from, err := parseArg(args[0])
	if err != nil {
		return err
	}
	to, err := parseArg(args[1])
	if err != nil {
		return err
	}
	if cfg.Text {
		out := libdiff.DiffString(
			encode.MustString(from, cfg.encOpts(nil)...),
			encode.MustString(to, cfg.encOpts(nil)...))
		_, err := fmt.Fprintln(cc.Out, out)
		return err
	}
	d := libdiff.Diff(from, to)
	if d == nil {
		return nil
	}
	return encode.Encode(d, cc.Out, cfg.encOpts(cc.Out)...)
}
