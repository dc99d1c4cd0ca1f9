package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/RAnders00/usbc-fursuit-fan/internal/memmap"
	"github.com/RAnders00/usbc-fursuit-fan/internal/objdump"
)

// SectionTable renders every parsed section with its size and region
// classification, in dump order.
func SectionTable(w io.Writer, sections []objdump.Section) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Section", "Size", "Region"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)

	for _, s := range sections {
		table.Append([]string{
			s.Name,
			fmt.Sprintf("%d", s.Size),
			memmap.Classify(s.Name).String(),
		})
	}

	table.Render()
}

// SymbolTable renders the n largest budget-relevant symbols, biggest first.
// Symbols in unclassified sections and zero-sized symbols are left out.
func SymbolTable(w io.Writer, symbols []objdump.Symbol, n int) {
	var kept []objdump.Symbol
	for _, s := range symbols {
		if s.Size > 0 && memmap.Classify(s.Section) != 0 {
			kept = append(kept, s)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Size > kept[j].Size
	})

	if n > 0 && len(kept) > n {
		kept = kept[:n]
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Section", "Size", "Region"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)

	for _, s := range kept {
		table.Append([]string{
			s.Pretty,
			s.Section,
			fmt.Sprintf("%d", s.Size),
			memmap.Classify(s.Section).String(),
		})
	}

	table.Render()
}
