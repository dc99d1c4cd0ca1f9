package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RAnders00/usbc-fursuit-fan/internal/objdump"
	"github.com/RAnders00/usbc-fursuit-fan/internal/report"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List every section in the dump with its classification",
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := loadTarget()
		if err != nil {
			return err
		}

		dump, err := sectionDump(t).Run(cmd.Context())
		if err != nil {
			return err
		}

		report.SectionTable(os.Stdout, objdump.ParseSections(dump))
		return nil
	},
}
