package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RAnders00/usbc-fursuit-fan/internal/cargo"
	"github.com/RAnders00/usbc-fursuit-fan/internal/config"
	"github.com/RAnders00/usbc-fursuit-fan/internal/memmap"
	"github.com/RAnders00/usbc-fursuit-fan/internal/objdump"
	"github.com/RAnders00/usbc-fursuit-fan/internal/report"
)

func sectionDump(t config.Target) cargo.Runner {
	return cargo.Objdump{
		Binary:    t.Binary,
		Target:    t.Triple,
		BuildType: t.BuildType,
		Flags:     []string{"-h"},
	}
}

func symbolDump(t config.Target) cargo.Runner {
	return cargo.Objdump{
		Binary:    t.Binary,
		Target:    t.Triple,
		BuildType: t.BuildType,
		Flags:     []string{"-t"},
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	t, err := loadTarget()
	if err != nil {
		return err
	}

	return budgetReport(cmd.Context(), sectionDump(t), t, os.Stdout)
}

// budgetReport is the whole pipeline for one run: capture the section dump,
// extract records, aggregate per region and render. When the inspection
// fails nothing is written to w.
func budgetReport(ctx context.Context, r cargo.Runner, t config.Target, w io.Writer) error {
	dump, err := r.Run(ctx)
	if err != nil {
		return err
	}

	sections := objdump.ParseSections(dump)
	totals, ignored := memmap.Aggregate(sections)
	for _, name := range ignored {
		log.Info().Str("section", name).Msg("ignoring section")
	}

	report.Write(w, t.Binary, t.BuildType, totals, t.Limits())
	return nil
}
