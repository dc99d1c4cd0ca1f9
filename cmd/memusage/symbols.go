package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RAnders00/usbc-fursuit-fan/internal/objdump"
	"github.com/RAnders00/usbc-fursuit-fan/internal/report"
)

var flagTop int

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Show the largest flash and SRAM consumers by symbol",
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := loadTarget()
		if err != nil {
			return err
		}

		dump, err := symbolDump(t).Run(cmd.Context())
		if err != nil {
			return err
		}

		report.SymbolTable(os.Stdout, objdump.ParseSymbols(dump), flagTop)
		return nil
	},
}

func init() {
	symbolsCmd.Flags().IntVar(&flagTop, "top", 20, "number of symbols to show")
}
