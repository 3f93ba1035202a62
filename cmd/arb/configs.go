package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/mattn/go-isatty"

	"github.com/signadot/arbor/encode"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='output in json'"`
	Y     bool `cli:"name=y aliases=yaml desc='output in yaml'"`
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.J {
		res = append(res, encode.EncodeFormat(encode.JSONFormat))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type WalkConfig struct {
	*MainConfig

	Order    string `cli:"name=order desc='strategy: pre, post, level, group, zigzag'"`
	MaxLevel int    `cli:"name=maxlevel desc='prune below this level, root is level 1'"`
	Filter   string `cli:"name=filter desc='expr predicate selecting nodes'"`
	Stop     string `cli:"name=stop desc='expr predicate pruning subtrees'"`

	Walk *cli.Command
}

type StatsConfig struct {
	*MainConfig

	Stats *cli.Command
}

type CopyConfig struct {
	*MainConfig

	Copy *cli.Command
}

type UnmergeConfig struct {
	*MainConfig

	Unmerge *cli.Command
}
