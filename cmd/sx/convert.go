package main

import (
	"github.com/sexp-format/sexp/format"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	inFmt := format.SexpFormat
	if cfg.InFormat != nil {
		inFmt = *cfg.InFormat
	}
	outFmt := format.SexpFormat
	if cfg.OutFormat != nil {
		outFmt = *cfg.OutFormat
	}
	for _, arg := range orStdin(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		node, err := format.Decode(d, inFmt)
		if err != nil {
			return err
		}
		if err := format.Encode(cc.Out, node, outFmt, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
