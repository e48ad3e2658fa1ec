// repl.go — interactive exhaustiveness sandbox.
//
// Declarations (enums, typed lets) persist across inputs; every complete
// input is re-analyzed together with the accumulated declarations, so a
// switch typed at the prompt checks against everything declared before it.
// Incomplete input (open brace, unterminated comment or string) switches to
// a continuation prompt instead of failing.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	swift "github.com/arvedviehweger/swift"
)

const (
	historyFile = ".swiftcheck_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var replHelp = `
REPL commands:
  :help    Show this help
  :reset   Forget all accumulated declarations
  :quit    Exit the REPL
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively declare enums and check switches",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	checker, err := newChecker(cfg)
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Printf("swiftcheck %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", swift.Version)

	okc := color.New(color.FgGreen)
	errc := color.New(color.FgRed, color.Bold)
	notec := color.New(color.FgCyan)
	if !cfg.Color {
		for _, c := range []*color.Color{okc, errc, notec} {
			c.DisableColor()
		}
	}

	var session []string // accepted declaration inputs
	var pending string   // continuation buffer

	for {
		prompt := promptMain
		if pending != "" {
			prompt = promptCont
		}
		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			pending = ""
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		if pending == "" {
			switch strings.TrimSpace(input) {
			case "":
				continue
			case ":quit", ":q":
				return nil
			case ":reset":
				session = nil
				okc.Println("declarations cleared")
				continue
			case ":help":
				fmt.Print(replHelp)
				continue
			}
		}

		pending += input + "\n"
		src := strings.Join(session, "") + pending
		f, err := swift.ParseFileInteractive(src)
		if err != nil {
			if swift.IsIncomplete(err) {
				continue // keep reading
			}
			errc.Println(swift.WrapErrorWithSource(err, src).Error())
			pending = ""
			continue
		}
		line.AppendHistory(strings.TrimRight(pending, "\n"))

		var diags swift.DiagList
		checker.CheckFile(f, cfg.Mode(), &diags)
		for _, d := range diags.Diags {
			switch d.Sev {
			case swift.SevError, swift.SevWarning:
				errc.Println(d.String())
			default:
				notec.Println("  " + d.String())
			}
			if cfg.EditorMode && d.FixIt != nil && d.FixIt.Insert != "" {
				for _, fx := range strings.Split(strings.TrimRight(d.FixIt.Insert, "\n"), "\n") {
					notec.Println("    " + fx)
				}
			}
		}
		if diags.Len() == 0 {
			okc.Println("ok")
		}

		// Persist pure-declaration inputs so later switches can use them;
		// re-persisting switches would re-report their findings every turn.
		if len(f.Switches) == 0 && !diags.HasErrors() {
			session = append(session, pending)
		}
		pending = ""
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
