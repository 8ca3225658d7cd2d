package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "settml-gen").
		WithSynopsis("settml-gen [opts] command [opts]").
		WithDescription("settml-gen compiles settings schema documents to Go.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return genMain(cfg, cc, args)
		}).
		WithSubs(
			GenerateCommand(cfg),
			DumpCommand(cfg))
}

func GenerateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenerateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "typemap",
		Description: "yaml file mapping virtual type names to Go types, repeatable",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.typeMapOpt), "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Generate, "generate").
		WithAliases("g", "gen").
		WithSynopsis("generate [opts] <settings-file>").
		WithDescription("Generate Go source for a settings document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return generate(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("dump the resolved settings tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}
