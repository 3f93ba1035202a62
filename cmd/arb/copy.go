package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/arbor/encode"
	"github.com/signadot/arbor/tree"
)

func copyTrees(cfg *CopyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Copy.Parse(cc, args)
	if err != nil {
		cfg.Copy.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	first := true
	return forEachTree(cc.In, args, func(root *node) error {
		if !first {
			fmt.Fprintln(cc.Out, "---")
		}
		first = false
		cp, err := tree.NewTree(root, func(src *node) *node {
			return tree.New(src.Data)
		})
		if err != nil {
			return fmt.Errorf("error copying tree: %w", err)
		}
		return encode.Encode(cp, cc.Out, cfg.encOpts()...)
	})
}
