package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "mmsavefix").
		WithSynopsis("mmsavefix [opts] command [opts]").
		WithDescription("mmsavefix inspects and edits Motorsport Manager save files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmt.Errorf("%w: expected a command: show, edit, unpack, pack, diff", cli.ErrUsage)
		}).
		WithSubs(
			ShowCommand(cfg),
			EditCommand(cfg),
			UnpackCommand(cfg),
			PackCommand(cfg),
			DiffCommand(cfg))
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Show, "show").
		WithAliases("s").
		WithSynopsis("show <saves>").
		WithDescription("show the save name and the player team's drivers").
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
}

func EditCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "pos",
			Description: "move a driver, repeatable",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(posOptFunc(cfg)), "(driver=position)"),
		})
	cmd := cli.NewCommand("edit").
		WithAliases("e").
		WithSynopsis("edit -o <dest> [-f] [-name name] [-pos n=position]... <save>").
		WithDescription("write a copy of a save with a new name or driver positions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(cfg, cc, args)
		})
	cfg.Edit = cmd
	return cmd
}

func UnpackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnpackConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Unpack, "unpack").
		WithSynopsis("unpack [-f] <save>").
		WithDescription("split a save into its info and data json texts").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unpack(cfg, cc, args)
		})
}

func PackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PackConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Pack, "pack").
		WithSynopsis("pack -o <dest> [-f] <infofile> <datafile>").
		WithDescription("rebuild a save from info and data json texts").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pack(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff the decompressed texts of two saves").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffSaves(cfg, cc, args)
		})
}
