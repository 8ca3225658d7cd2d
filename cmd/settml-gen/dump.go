package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/settml/go-settml/encode"
	"github.com/settml/go-settml/parse"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: dump takes one or more settings files", cli.ErrUsage)
	}
	return dumpFiles(cfg, cc.Out, args)
}

func dumpFiles(cfg *DumpConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if err := dumpFile(cfg, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			w.Write([]byte("\n"))
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, w io.Writer, file string) error {
	base := filepath.Base(file)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	doc, err := parse.ParseFile(file, parse.WithName(name))
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error rendering %s: %w", file, err)
	}
	return nil
}
