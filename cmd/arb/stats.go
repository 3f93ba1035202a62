package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/arbor/walk"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		cfg.Stats.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	first := true
	return forEachTree(cc.In, args, func(root *node) error {
		if !first {
			fmt.Fprintln(cc.Out, "---")
		}
		first = false
		width := 0
		levels := 0
		groups := walk.LevelGroups(root, (*node).Children)
		for {
			g, ok := groups.Next()
			if !ok {
				break
			}
			levels++
			if len(g) > width {
				width = len(g)
			}
		}
		fmt.Fprintf(cc.Out, "nodes: %d\n", len(root.Descendants())+1)
		fmt.Fprintf(cc.Out, "height: %d\n", root.Height())
		fmt.Fprintf(cc.Out, "levels: %d\n", levels)
		fmt.Fprintf(cc.Out, "width: %d\n", width)
		fmt.Fprintf(cc.Out, "leaves: %d\n", len(root.Leaves()))
		return nil
	})
}
