package memmap

// Region is a bit set of the memory regions a section occupies in the final
// image. A section may live in more than one region: initialized data has its
// initial values stored in flash and is copied into SRAM at startup, so it
// counts against both budgets.
type Region uint8

const (
	Flash Region = 1 << iota
	SRAM
)

func (r Region) Has(other Region) bool {
	return r&other != 0
}

func (r Region) String() string {
	switch r {
	case Flash:
		return "flash"
	case SRAM:
		return "sram"
	case Flash | SRAM:
		return "flash+sram"
	}
	return "-"
}

// membership maps linker section names to the regions they occupy. Lookup is
// by exact name; anything not listed here is ignored by the budget. Adding a
// new section category is a one-line change.
var membership = map[string]Region{
	".text":             Flash,
	".rodata":           Flash,
	".data":             Flash | SRAM,
	".flash_filesystem": Flash,
	".bss":              SRAM,
}

// Classify returns the regions a section contributes to, or zero if the
// section is not part of the budget.
func Classify(name string) Region {
	return membership[name]
}
