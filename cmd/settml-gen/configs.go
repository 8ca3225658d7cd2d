package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/settml/go-settml/encode"
	"github.com/settml/go-settml/schema"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
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

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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
	}
	return res
}

type GenerateConfig struct {
	*MainConfig

	Pkg      string `cli:"name=pkg desc='package clause of the generated file (default settings)'"`
	Name     string `cli:"name=name desc='document name when the document declares none'"`
	NoFormat bool   `cli:"name=nofmt desc='skip the goimports pass'"`

	TypeMaps []schema.TypeMap

	Generate *cli.Command
}

func (cfg *GenerateConfig) typeMapOpt(cc *cli.Context, a string) (any, error) {
	m, err := schema.LoadTypeMap(a)
	if err != nil {
		return nil, err
	}
	cfg.TypeMaps = append(cfg.TypeMaps, m)
	return a, nil
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}
