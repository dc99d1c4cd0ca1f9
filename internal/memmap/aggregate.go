package memmap

import "github.com/RAnders00/usbc-fursuit-fan/internal/objdump"

// Limits holds the capacity of the target part's memories.
type Limits struct {
	FlashSize     uint64
	SRAMSize      uint64
	FlashPageSize uint64
}

// FlashPagesFree estimates how many whole flash pages are still unused. This
// is a rough guess: it does not account for alignment, reserved regions or
// linker-script gaps.
func (l Limits) FlashPagesFree(flashUsed uint64) uint64 {
	if l.FlashPageSize == 0 || flashUsed >= l.FlashSize {
		return 0
	}
	return (l.FlashSize - flashUsed) / l.FlashPageSize
}

// Totals accumulates per-region usage over one section dump.
type Totals struct {
	FlashUsed uint64
	SRAMUsed  uint64
}

// Add folds one section's size into the totals. A section belonging to both
// regions adds its full size to each; there is no splitting.
func (t *Totals) Add(r Region, size uint64) {
	if r.Has(Flash) {
		t.FlashUsed += size
	}
	if r.Has(SRAM) {
		t.SRAMUsed += size
	}
}

// Aggregate classifies every section and sums sizes per region. Sections that
// belong to no region are returned by name so callers can surface them;
// duplicates are counted each time they appear.
func Aggregate(sections []objdump.Section) (Totals, []string) {
	var totals Totals
	var ignored []string

	for _, s := range sections {
		r := Classify(s.Name)
		if r == 0 {
			ignored = append(ignored, s.Name)
			continue
		}
		totals.Add(r, s.Size)
	}

	return totals, ignored
}
