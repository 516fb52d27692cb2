package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sexp-format/sexp/encode"
	"github.com/sexp-format/sexp/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Plain    bool `cli:"name=plain desc='disable pretty printing'"`
	Wide     bool `cli:"name=wide desc='never compact nested forms onto one line'"`
	QuoteAll bool `cli:"name=quoteall desc='quote all bare values'"`
	Color    bool `cli:"name=color desc='encode with color'"`

	Width  int
	Indent int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) widthOpt(cc *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: bad width %q", cli.ErrUsage, a)
	}
	cfg.Width = n
	return n, nil
}

func (cfg *MainConfig) indentOpt(cc *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: bad indent %q", cli.ErrUsage, a)
	}
	cfg.Indent = n
	return n, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePretty(!cfg.Plain),
		encode.EncodeCompact(!cfg.Wide),
		encode.EncodeQuoteAll(cfg.QuoteAll),
	}
	if cfg.Width > 0 {
		res = append(res, encode.EncodeWidth(cfg.Width))
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(strings.Repeat(" ", cfg.Indent)))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write the result back to each file'"`
	Fmt   *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Text bool `cli:"name=text desc='character level text diff'"`
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	InFormat, OutFormat *format.Format

	Convert *cli.Command
}
