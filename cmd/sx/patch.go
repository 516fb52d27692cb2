package main

import (
	"fmt"

	"github.com/sexp-format/sexp"
	"github.com/sexp-format/sexp/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchData, err := readArg(args[0])
	if err != nil {
		return err
	}
	for _, arg := range orStdin(args[1:]) {
		node, err := parseArg(arg)
		if err != nil {
			return err
		}
		res, err := sexp.ApplyPatch(node, patchData)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
