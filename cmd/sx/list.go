package main

import (
	"fmt"

	"github.com/sexp-format/sexp"
	"github.com/sexp-format/sexp/encode"
	"github.com/sexp-format/sexp/ir"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires a query argument", cli.ErrUsage)
	}
	query := args[0]
	for _, arg := range orStdin(args[1:]) {
		node, err := parseArg(arg)
		if err != nil {
			return err
		}
		res, err := sexp.Query(node, query)
		if err != nil {
			return fmt.Errorf("error querying %s with %q: %w", arg, query, err)
		}
		if err := writeResult(cfg, cc, res); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(cfg *ListConfig, cc *cli.Context, res any) error {
	switch v := res.(type) {
	case nil:
		return nil
	case *ir.Node:
		if v == nil {
			return nil
		}
		return encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...)
	case []*ir.Node:
		for _, n := range v {
			if err := encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(cc.Out, v)
		return err
	}
}
