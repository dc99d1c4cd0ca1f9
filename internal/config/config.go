package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RAnders00/usbc-fursuit-fan/internal/memmap"
)

// Target describes the firmware binary and the part it runs on. The capacity
// numbers are fixed properties of the MCU, not something read back from the
// build.
type Target struct {
	Binary        string `yaml:"binary"`
	Triple        string `yaml:"target"`
	BuildType     string `yaml:"build_type"`
	FlashSize     uint64 `yaml:"flash_size"`
	SRAMSize      uint64 `yaml:"sram_size"`
	FlashPageSize uint64 `yaml:"flash_page_size"`
}

// Default is the controller's own hardware: an STM32F103C8-class part with
// 64 KiB flash in 1 KiB pages and 20 KiB SRAM.
func Default() Target {
	return Target{
		Binary:        "usbc-fursuit-fan",
		Triple:        "thumbv7m-none-eabihf",
		BuildType:     "release",
		FlashSize:     64 * 1024,
		SRAMSize:      20 * 1024,
		FlashPageSize: 1024,
	}
}

// Load reads a target description file. Fields missing from the file keep
// their Default values.
func Load(path string) (Target, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Target{}, fmt.Errorf("read target file: %w", err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return Target{}, fmt.Errorf("parse target file: %w", err)
	}

	return t, nil
}

func (t Target) Limits() memmap.Limits {
	return memmap.Limits{
		FlashSize:     t.FlashSize,
		SRAMSize:      t.SRAMSize,
		FlashPageSize: t.FlashPageSize,
	}
}
