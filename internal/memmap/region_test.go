package memmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Region
	}{
		{".text", Flash},
		{".rodata", Flash},
		{".flash_filesystem", Flash},
		{".data", Flash | SRAM},
		{".bss", SRAM},
		{".vector_table", 0},
		{".comment", 0},
		{"text", 0},
		{".TEXT", 0}, // exact, case-sensitive match only
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "flash", Flash.String())
	assert.Equal(t, "sram", SRAM.String())
	assert.Equal(t, "flash+sram", (Flash | SRAM).String())
	assert.Equal(t, "-", Region(0).String())
}
