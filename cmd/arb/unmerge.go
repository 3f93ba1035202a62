package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/xuri/excelize/v2"

	"github.com/signadot/arbor/excel"
)

func unmerge(cfg *UnmergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unmerge.Parse(cc, args)
	if err != nil {
		cfg.Unmerge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: unmerge requires a workbook file", cli.ErrUsage)
	}
	file := args[0]
	f, err := excelize.OpenFile(file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	sheets := args[1:]
	if len(sheets) == 0 {
		sheets = f.GetSheetList()
	}
	for _, sheet := range sheets {
		if err := excel.UnmergeAndFill(f, sheet); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("error saving %q: %w", file, err)
	}
	return nil
}
