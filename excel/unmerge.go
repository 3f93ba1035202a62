// Package excel carries a small worksheet utility with no relation to the
// tree packages: unmerging merged cell ranges.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// UnmergeAndFill removes every merged range on the named sheet and writes
// each range's originating (top-left) cell value into every formerly merged
// cell.
func UnmergeAndFill(f *excelize.File, sheet string) error {
	ranges, err := f.GetMergeCells(sheet)
	if err != nil {
		return fmt.Errorf("error listing merged cells on %q: %w", sheet, err)
	}
	for _, mc := range ranges {
		val := mc.GetCellValue()
		start, end := mc.GetStartAxis(), mc.GetEndAxis()
		if err := f.UnmergeCell(sheet, start, end); err != nil {
			return fmt.Errorf("error unmerging %s:%s on %q: %w", start, end, sheet, err)
		}
		if err := fillRange(f, sheet, start, end, val); err != nil {
			return err
		}
	}
	return nil
}

func fillRange(f *excelize.File, sheet, start, end string, val string) error {
	sc, sr, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return fmt.Errorf("bad cell name %q: %w", start, err)
	}
	ec, er, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return fmt.Errorf("bad cell name %q: %w", end, err)
	}
	for r := sr; r <= er; r++ {
		for c := sc; c <= ec; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("error filling %s on %q: %w", cell, sheet, err)
			}
		}
	}
	return nil
}
