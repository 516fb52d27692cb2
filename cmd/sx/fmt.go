package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sexp-format/sexp/encode"

	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range orStdin(args) {
		node, err := parseArg(arg)
		if err != nil {
			return err
		}
		if cfg.Write && arg != "-" {
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(node, buf, cfg.encOpts(buf)...); err != nil {
				return err
			}
			if err := os.WriteFile(arg, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", arg, err)
			}
			continue
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
