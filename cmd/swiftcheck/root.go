// root.go — swiftcheck command wiring.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	swift "github.com/arvedviehweger/swift"
)

const appName = "swiftcheck"

var (
	flagConfig     string
	flagEditor     bool
	flagLimited    bool
	flagNoColor    bool
	flagVerbose    bool
	flagMaxMissing int
)

var rootCmd = &cobra.Command{
	Use:     appName,
	Short:   "Switch exhaustiveness analyzer for a Swift-like subset",
	Long:    "swiftcheck parses enum declarations, typed bindings, and switch\nstatements, and reports switches that do not cover every possible value\nof their subject, with concrete missing-case suggestions.",
	Version: swift.Version,
	// The command only dispatches; subcommands do the work.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to "+swift.ConfigFileName)
	pf.BoolVar(&flagEditor, "editor", false, "emit missing cases as one insertable fix-it block")
	pf.BoolVar(&flagLimited, "limited", false, "only require switches to be non-empty")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable ANSI colors")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug-log the space algebra")
	pf.IntVar(&flagMaxMissing, "max-missing", 0, "cap rendered missing cases per switch (0 = unlimited)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replCmd)
}

// loadConfig merges the config file (if any) under the flags that were
// explicitly set on cmd.
func loadConfig(cmd *cobra.Command) (swift.Config, error) {
	path := flagConfig
	if path == "" {
		path = swift.ConfigFileName
	}
	var cfg swift.Config
	var err error
	if flagConfig != "" {
		cfg, err = swift.LoadConfig(path)
	} else {
		cfg, err = swift.LoadConfigIfPresent(path)
	}
	if err != nil {
		return cfg, err
	}
	fl := cmd.Flags()
	if fl.Changed("editor") {
		cfg.EditorMode = flagEditor
	}
	if fl.Changed("limited") {
		cfg.Limited = flagLimited
	}
	if fl.Changed("no-color") {
		cfg.Color = !flagNoColor
	}
	if fl.Changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	if fl.Changed("max-missing") {
		cfg.MaxMissingCases = flagMaxMissing
	}
	return cfg, nil
}

// newChecker builds a checker from the merged config.
func newChecker(cfg swift.Config) (*swift.Checker, error) {
	log := zap.NewNop()
	if cfg.Verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		log = dev
	}
	c := swift.NewChecker(swift.NewEngine(nil, log))
	c.EditorMode = cfg.EditorMode
	c.MaxMissing = cfg.MaxMissingCases
	return c, nil
}
