package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/service"
	"github.com/vaultpass/passgen/internal/strength"
)

var ErrInvalidCount = errors.New("count must be at least 1")

type generateFlags struct {
	length    int
	uppercase bool
	lowercase bool
	numbers   bool
	symbols   bool
	count     int
	seed      uint64
	secure    bool
}

// options returns the generator options. When no character type flag was
// given on the command line all of them are enabled; explicitly disabling
// every type is left for validation to reject.
func (f generateFlags) options(typesGiven bool) crypto.GeneratorOptions {
	opts := crypto.GeneratorOptions{
		Length:    f.length,
		Uppercase: f.uppercase,
		Lowercase: f.lowercase,
		Numbers:   f.numbers,
		Symbols:   f.symbols,
	}
	if !typesGiven {
		opts.Uppercase, opts.Lowercase, opts.Numbers, opts.Symbols = true, true, true, true
	}
	return opts
}

func (f generateFlags) source(seeded bool) crypto.Source {
	switch {
	case f.secure:
		return crypto.NewSecureSource()
	case seeded:
		return crypto.NewSeededSource(f.seed)
	default:
		return crypto.NewSource()
	}
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate passwords",
		Example: `  passgen generate
  passgen generate -l 16 -u -w -n
  passgen generate -c 5 --secure`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.count < 1 {
				return ErrInvalidCount
			}
			if flags.secure && cmd.Flags().Changed("seed") {
				return errors.New("--seed and --secure are mutually exclusive")
			}

			typesGiven := false
			for _, name := range []string{"uppercase", "lowercase", "numbers", "symbols"} {
				typesGiven = typesGiven || cmd.Flags().Changed(name)
			}

			opts := flags.options(typesGiven)
			if err := service.ValidateOptions(opts); err != nil {
				return err
			}
			src := flags.source(cmd.Flags().Changed("seed"))

			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				for i := 0; i < flags.count; i++ {
					password, err := crypto.Generate(opts, src)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, password)
				}
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PASSWORD\tSTRENGTH")
			for i := 0; i < flags.count; i++ {
				password, err := crypto.Generate(opts, src)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", password, strength.Classify(password))
			}
			return tw.Flush()
		},
	}

	f := cmd.Flags()
	f.IntVarP(&flags.length, "length", "l", crypto.DefaultLength,
		fmt.Sprintf("password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	f.BoolVarP(&flags.uppercase, "uppercase", "u", false, "include uppercase letters")
	f.BoolVarP(&flags.lowercase, "lowercase", "w", false, "include lowercase letters")
	f.BoolVarP(&flags.numbers, "numbers", "n", false, "include numbers")
	f.BoolVarP(&flags.symbols, "symbols", "s", false, "include symbols")
	f.IntVarP(&flags.count, "count", "c", 1, "number of passwords to generate")
	f.Uint64Var(&flags.seed, "seed", 0, "seed for reproducible output")
	f.BoolVar(&flags.secure, "secure", false, "draw randomness from crypto/rand")

	return cmd
}
