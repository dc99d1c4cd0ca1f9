// Package objdump parses the textual output of llvm-objdump as produced by
// `cargo objdump`. It never touches the ELF itself, only the pre-formatted
// dump text.
package objdump

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// Section is one row of a section-header dump (`objdump -h`).
type Section struct {
	Name string
	Size uint64
}

// A section record is an index number followed by the section name and its
// size in hex. Header lines, blank lines and anything else objdump prints
// around the table do not match.
var sectionLine = regexp.MustCompile(`^\s*\d+\s+(\S+)\s+([0-9a-fA-F]+)`)

// ParseSectionLine extracts a section record from one line of dump output.
// Returns false for lines that are not section records; those are expected
// and skipped by callers. A size field of all zeros is a valid record.
func ParseSectionLine(line string) (Section, bool) {
	m := sectionLine.FindStringSubmatch(line)
	if m == nil {
		return Section{}, false
	}

	size, err := strconv.ParseUint(m[2], 16, 64)
	if err != nil {
		return Section{}, false
	}

	return Section{Name: m[1], Size: size}, true
}

// ParseSections runs ParseSectionLine over every line of a dump, keeping the
// records in dump order.
func ParseSections(dump string) []Section {
	var sections []Section

	sc := bufio.NewScanner(strings.NewReader(dump))
	for sc.Scan() {
		if s, ok := ParseSectionLine(sc.Text()); ok {
			sections = append(sections, s)
		}
	}

	return sections
}
