package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/settml/go-settml/codegen"
	"github.com/settml/go-settml/parse"
	"github.com/settml/go-settml/schema"
)

func generate(cfg *GenerateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Generate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: generate takes exactly one settings file", cli.ErrUsage)
	}
	file := args[0]

	doc, err := parse.ParseFile(file, parse.WithName(cfg.docName(file)))
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}

	// mappings declared in the document win over -typemap files
	types := schema.TypeMap{}
	for _, m := range cfg.TypeMaps {
		types.Merge(m)
	}
	types.Merge(doc.Types)
	doc.Types = types

	var gOpts []codegen.Option
	if cfg.Pkg != "" {
		gOpts = append(gOpts, codegen.WithPackage(cfg.Pkg))
	}
	if cfg.NoFormat {
		gOpts = append(gOpts, codegen.NoFormat())
	}
	src, err := codegen.Generate(doc, gOpts...)
	if err != nil {
		return fmt.Errorf("error generating %s: %w", file, err)
	}
	if _, err := cc.Out.Write(src); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}

// docName picks the document name for documents that declare none,
// preferring the output file's base name over the input's.
func (cfg *GenerateConfig) docName(file string) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	src := file
	if cfg.Out != "" && cfg.Out != "-" {
		src = cfg.Out
	}
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
