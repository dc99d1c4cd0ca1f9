package objdump

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/ianlancetaylor/demangle"
)

// Symbol is one row of a symbol-table dump (`objdump -t`).
type Symbol struct {
	Name    string
	Pretty  string
	Section string
	Size    uint64
}

// ParseSymbolLine extracts a symbol record from one line of symbol-table
// output. Lines look like
//
//	000001a4 l     F .text  00000068 _ZN4core3fmt5write17h1a2b3c4d5e6f7a8bE
//
// with the value, some flag characters, the containing section, the size in
// hex and the symbol name. Symbols outside a real section (*ABS*, *UND*) and
// lines that are not symbol records return false.
func ParseSymbolLine(line string) (Symbol, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Symbol{}, false
	}

	if _, err := strconv.ParseUint(fields[0], 16, 64); err != nil {
		return Symbol{}, false
	}

	name := fields[len(fields)-1]
	size, err := strconv.ParseUint(fields[len(fields)-2], 16, 64)
	if err != nil {
		return Symbol{}, false
	}

	section := fields[len(fields)-3]
	if !strings.HasPrefix(section, ".") {
		return Symbol{}, false
	}

	pretty, err := demangle.ToString(name)
	if err != nil {
		pretty = name
	}

	return Symbol{Name: name, Pretty: pretty, Section: section, Size: size}, true
}

// ParseSymbols runs ParseSymbolLine over every line of a dump.
func ParseSymbols(dump string) []Symbol {
	var symbols []Symbol

	sc := bufio.NewScanner(strings.NewReader(dump))
	for sc.Scan() {
		if s, ok := ParseSymbolLine(sc.Text()); ok {
			symbols = append(symbols, s)
		}
	}

	return symbols
}
