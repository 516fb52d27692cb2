package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

const sxVersion = "0.1.0"

func version(cc *cli.Context) error {
	_, err := fmt.Fprintf(cc.Out, "sx version %s\n", sxVersion)
	return err
}
