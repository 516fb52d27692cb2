package main

import (
	"fmt"

	"github.com/sexp-format/sexp/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range orStdin(args[1:]) {
		node, err := parseArg(arg)
		if err != nil {
			return err
		}
		res, err := node.Lookup(path)
		if err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", path, arg, err)
		}
		if res == nil {
			// nothing at that path, and no yelling either
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
