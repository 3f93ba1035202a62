package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/arbor/eval"
	"github.com/signadot/arbor/tree"
	"github.com/signadot/arbor/walk"
)

type node = tree.Node[any]

func walkTrees(cfg *WalkConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Walk.Parse(cc, args)
	if err != nil {
		cfg.Walk.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts, err := walkOpts(cfg)
	if err != nil {
		return fmt.Errorf("%w: %s", cli.ErrUsage, err)
	}
	children := (*node).Children
	first := true
	return forEachTree(cc.In, args, func(root *node) error {
		if !first {
			fmt.Fprintln(cc.Out, "---")
		}
		first = false
		switch cfg.Order {
		case "pre", "":
			return printNodes(cc.Out, walk.PreOrder(root, children, opts...))
		case "post":
			return printNodes(cc.Out, walk.PostOrder(root, children, opts...))
		case "level":
			return printNodes(cc.Out, walk.LevelOrder(root, children, opts...))
		case "group":
			return printGroups(cfg, cc.Out, walk.LevelGroups(root, children, opts...))
		case "zigzag", "zz":
			return printGroups(cfg, cc.Out, walk.ZigZagGroups(root, children, opts...))
		default:
			return fmt.Errorf("%w: unknown order %q", cli.ErrUsage, cfg.Order)
		}
	})
}

func walkOpts(cfg *WalkConfig) ([]walk.Option[*node], error) {
	var opts []walk.Option[*node]
	if cfg.MaxLevel != 0 {
		opts = append(opts, walk.MaxLevel[*node](cfg.MaxLevel))
	}
	if cfg.Filter != "" {
		f, err := eval.CompileFilter(cfg.Filter, nodeEnv)
		if err != nil {
			return nil, err
		}
		opts = append(opts, walk.Filter(f))
	}
	if cfg.Stop != "" {
		s, err := eval.CompileFilter(cfg.Stop, nodeEnv)
		if err != nil {
			return nil, err
		}
		opts = append(opts, walk.Stop(s))
	}
	return opts, nil
}

// nodeEnv is what a node exposes to -filter and -stop expressions.
func nodeEnv(n *node) map[string]any {
	return map[string]any{
		"value":    n.Data,
		"depth":    n.Depth(),
		"isLeaf":   n.IsLeaf(),
		"isRoot":   n.IsRoot(),
		"children": len(n.Children()),
	}
}

func printNodes(w io.Writer, it *walk.Iter[*node]) error {
	for {
		n, ok := it.Next()
		if !ok {
			return nil
		}
		if _, err := fmt.Fprintf(w, "%v\n", n.Data); err != nil {
			return err
		}
	}
}

var levelColors = []func(format string, a ...any) string{
	color.CyanString,
	color.MagentaString,
	color.YellowString,
	color.GreenString,
	color.BlueString,
	color.RedString,
}

func printGroups(cfg *WalkConfig, w io.Writer, it *walk.Iter[[]*node]) error {
	colorize := cfg.useColor(w)
	if colorize {
		color.NoColor = false
	}
	level := 0
	for {
		g, ok := it.Next()
		if !ok {
			return nil
		}
		vals := make([]string, len(g))
		for i, n := range g {
			vals[i] = fmt.Sprintf("%v", n.Data)
		}
		line := strings.Join(vals, " ")
		if colorize {
			line = levelColors[level%len(levelColors)]("%s", line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		level++
	}
}
