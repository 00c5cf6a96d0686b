// Package cli implements the passgen command line.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set by main.go
var Version = "dev"

// NewRootCmd builds the passgen command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "passgen",
		Short: "Generate and rate passwords",
		Long: `passgen generates random passwords from the selected character types
(lowercase, uppercase, numbers, symbols), guaranteeing at least one character
of every selected type, and rates password strength as
TOO WEAK!, WEAK, MEDIUM or STRONG.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newGenerateCmd(), newClassifyCmd(), newTokenCmd())
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string, args []string) int {
	Version = version

	root := NewRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		root.PrintErrln("error:", err)
		return 1
	}
	return 0
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalInput returns the descriptor of r when r is an interactive
// terminal. Swapped out in tests.
var terminalInput = func(r io.Reader) (int, bool) {
	f, ok := r.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	return int(f.Fd()), true
}

// readPassword reads a line from the terminal fd without echo.
var readPassword = term.ReadPassword
