package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RAnders00/usbc-fursuit-fan/internal/config"
)

var (
	flagBin        string
	flagBuildType  string
	flagTargetFile string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "memusage",
	Short:         "Check firmware flash and SRAM usage against the part's budget",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
	RunE: runReport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBin, "bin", "", "binary name (default from the target description)")
	rootCmd.PersistentFlags().StringVar(&flagBuildType, "build-type", "", "build profile, release or debug")
	rootCmd.PersistentFlags().StringVar(&flagTargetFile, "target-file", "", "YAML target description file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(sectionsCmd, symbolsCmd, browseCmd)
}

// loadTarget resolves the target description: built-in default, then the
// target file if given, then individual flag overrides.
func loadTarget() (config.Target, error) {
	t := config.Default()

	if flagTargetFile != "" {
		var err error
		t, err = config.Load(flagTargetFile)
		if err != nil {
			return config.Target{}, err
		}
	}

	if flagBin != "" {
		t.Binary = flagBin
	}
	if flagBuildType != "" {
		t.BuildType = flagBuildType
	}

	return t, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("memusage failed")
		os.Exit(1)
	}
}
