package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sexp-format/sexp/ir"
	"github.com/sexp-format/sexp/parse"

	"github.com/scott-cotton/cli"
)

func sxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readArg reads one input argument, with "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, nil
}

// parseArg reads and parses one document argument.
func parseArg(arg string) (*ir.Node, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

// orStdin makes the empty argument list mean stdin.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
