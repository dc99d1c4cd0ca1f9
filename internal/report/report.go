// Package report renders memory usage against the target's budget as plain
// text for a human reader. Nothing here is meant to be parsed back.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/RAnders00/usbc-fursuit-fan/internal/memmap"
)

// Write renders the budget report: a header naming the binary and build type,
// one line per region with used / capacity and utilization, and a flash page
// headroom suggestion when there is any headroom left.
func Write(w io.Writer, binary, buildType string, totals memmap.Totals, limits memmap.Limits) {
	fmt.Fprintf(w, "\nMemory Usage for %s (%s):\n\n", binary, buildType)
	fmt.Fprintf(w, "Flash: %d / %d bytes (%s)\n", totals.FlashUsed, limits.FlashSize, Percent(totals.FlashUsed, limits.FlashSize))
	fmt.Fprintf(w, "SRAM : %d / %d bytes (%s)\n", totals.SRAMUsed, limits.SRAMSize, Percent(totals.SRAMUsed, limits.SRAMSize))

	if pages := limits.FlashPagesFree(totals.FlashUsed); pages > 0 {
		fmt.Fprintf(w, "\nThe filesystem could probably be expanded by %d more pages.\n", pages)
	}
}

// Percent formats utilization to two decimal places. Usage above capacity is
// not clamped; a value over 100% is the budget violation itself and is
// rendered in red rather than hidden.
func Percent(used, capacity uint64) string {
	p := 100.0 * float64(used) / float64(capacity)
	s := fmt.Sprintf("%.2f%%", p)
	if used > capacity {
		return color.RedString("%s", s)
	}
	return s
}
