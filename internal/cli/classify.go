package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/strength"
)

var ErrEmptyPassword = errors.New("password cannot be empty")

func newClassifyCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "classify [password]",
		Short: "Rate the strength of a password",
		Long: `Rate the strength of a password.

With no argument, every line read from stdin is rated. When stdin is a
terminal, a single password is read without echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				printRating(out, args[0], verbose)
				return nil
			}

			if fd, ok := terminalInput(cmd.InOrStdin()); ok {
				password, err := promptPassword(cmd.ErrOrStderr(), fd)
				if err != nil {
					return err
				}
				printRating(out, password, verbose)
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSuffix(scanner.Text(), "\r")
				if line == "" {
					continue
				}
				printRating(out, line, verbose)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading passwords: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include score and zxcvbn estimate")
	return cmd
}

// promptPassword asks for a password on stderr and reads it without echo.
func promptPassword(prompt io.Writer, fd int) (string, error) {
	fmt.Fprint(prompt, "Password: ")
	pw, err := readPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if len(pw) == 0 {
		return "", ErrEmptyPassword
	}
	return string(pw), nil
}

func printRating(w io.Writer, password string, verbose bool) {
	score := strength.Score(password)
	label := strength.LabelFor(score)
	if !verbose {
		fmt.Fprintln(w, label)
		return
	}

	est := strength.EstimateOf(password, nil)
	fmt.Fprintf(w, "%s (score %d, zxcvbn %d/4, %.1f bits, crack time %s)\n",
		label, score, est.Score, est.Entropy, est.CrackTime)
}
