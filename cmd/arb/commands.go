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

	return cli.NewCommandAt(&cfg.Main, "arb").
		WithSynopsis("arb [opts] command [opts]").
		WithDescription("arb is a tool for working with tree documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return arbMain(cfg, cc, args)
		}).
		WithSubs(
			WalkCommand(cfg),
			StatsCommand(cfg),
			CopyCommand(cfg),
			UnmergeCommand(cfg))
}

func WalkCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WalkConfig{MainConfig: mainCfg, Order: "pre"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Walk, "walk").
		WithAliases("w").
		WithSynopsis("walk [-order s] [-maxlevel n] [-filter e] [-stop e] [files]").
		WithDescription("walk tree documents with a traversal strategy").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return walkTrees(cfg, cc, args)
		})
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithAliases("s", "st").
		WithSynopsis("stats [files]").
		WithDescription("report size, height, leaf count and width of tree documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
}

func CopyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CopyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Copy, "copy").
		WithAliases("c", "cp").
		WithSynopsis("copy [files]").
		WithDescription("deep-copy tree documents and re-emit them").
		WithRun(func(cc *cli.Context, args []string) error {
			return copyTrees(cfg, cc, args)
		})
}

func UnmergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnmergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Unmerge, "unmerge").
		WithSynopsis("unmerge <file.xlsx> [sheets]").
		WithDescription("unmerge worksheet cells, filling each with the merged value").
		WithRun(func(cc *cli.Context, args []string) error {
			return unmerge(cfg, cc, args)
		})
}
