// check.go — the 'swiftcheck check' subcommand.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	swift "github.com/arvedviehweger/swift"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Analyze files and report non-exhaustive switches",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

// fileResult is the outcome for one input file; files are analyzed
// concurrently but always printed in argument order.
type fileResult struct {
	path     string
	parseErr error
	diags    swift.DiagList
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	checker, err := newChecker(cfg)
	if err != nil {
		return err
	}

	results := make([]fileResult, len(args))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			res := fileResult{path: path}
			src := string(data)
			if err := checker.CheckSource(src, cfg.Mode(), &res.diags); err != nil {
				res.parseErr = swift.WrapErrorWithName(err, path, src)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	problems := 0
	for _, res := range results {
		problems += printResult(res, cfg)
	}
	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	return nil
}

func printResult(res fileResult, cfg swift.Config) int {
	errc := color.New(color.FgRed, color.Bold)
	warnc := color.New(color.FgYellow)
	notec := color.New(color.FgCyan)
	if !cfg.Color {
		for _, c := range []*color.Color{errc, warnc, notec} {
			c.DisableColor()
		}
	}

	if res.parseErr != nil {
		errc.Fprintln(os.Stderr, res.parseErr.Error())
		return 1
	}
	problems := 0
	for _, d := range res.diags.Diags {
		line := fmt.Sprintf("%s:%s", res.path, d.String())
		switch d.Sev {
		case swift.SevError:
			errc.Fprintln(os.Stderr, line)
			problems++
		case swift.SevWarning:
			warnc.Fprintln(os.Stderr, line)
			problems++
		default:
			notec.Fprintln(os.Stderr, "  "+line)
		}
		if cfg.EditorMode && d.FixIt != nil && d.FixIt.Insert != "" {
			for _, fx := range strings.Split(strings.TrimRight(d.FixIt.Insert, "\n"), "\n") {
				notec.Fprintln(os.Stderr, "    "+fx)
			}
		}
	}
	return problems
}
