package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/RAnders00/usbc-fursuit-fan/internal/memmap"
	"github.com/RAnders00/usbc-fursuit-fan/internal/objdump"
	"github.com/RAnders00/usbc-fursuit-fan/internal/report"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse one captured section and symbol dump",
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := loadTarget()
		if err != nil {
			return err
		}

		secText, err := sectionDump(t).Run(cmd.Context())
		if err != nil {
			return err
		}

		symText, err := symbolDump(t).Run(cmd.Context())
		if err != nil {
			return err
		}

		sections := objdump.ParseSections(secText)
		symbols := objdump.ParseSymbols(symText)
		totals, ignored := memmap.Aggregate(sections)

		rl, err := readline.NewEx(&readline.Config{
			Prompt:          t.Binary + "> ",
			EOFPrompt:       "exit",
			InterruptPrompt: "exit",
			AutoComplete: readline.NewPrefixCompleter(
				readline.PcItem("regions"),
				readline.PcItem("sections"),
				readline.PcItem("top"),
				readline.PcItem("ignored"),
				readline.PcItem("exit"),
			),
		})
		if err != nil {
			return fmt.Errorf("create readline: %w", err)
		}
		defer rl.Close()

		lastCommand := ""

		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					break
				}
				continue
			} else if err == io.EOF {
				break
			}

			if line == "" {
				line = lastCommand
			} else {
				lastCommand = line
			}

			command, arg, hasArg := strings.Cut(line, " ")
			if hasArg {
				arg = strings.TrimSpace(arg)
				hasArg = arg != ""
			}

			switch command {
			case "regions":
				report.Write(os.Stdout, t.Binary, t.BuildType, totals, t.Limits())

			case "sections":
				report.SectionTable(os.Stdout, sections)

			case "top":
				n := 20
				if hasArg {
					v, err := strconv.Atoi(arg)
					if err != nil || v <= 0 {
						fmt.Println("invalid argument, expected a positive count")
						break
					}
					n = v
				}
				report.SymbolTable(os.Stdout, symbols, n)

			case "ignored":
				if len(ignored) == 0 {
					fmt.Println("no ignored sections")
					break
				}
				for _, name := range ignored {
					fmt.Println(name)
				}

			case "exit":
				return nil

			case "":
				// Do nothing

			default:
				fmt.Printf("unknown command: %s\n", command)
			}
		}

		return nil
	},
}
