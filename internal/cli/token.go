package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		expiry  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin token for the stats API",
		Long: `Mint an admin token for GET /api/v1/stats, signed with JWT_SECRET.

The expiry defaults to JWT_EXPIRY.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cmd.Flags().Changed("expiry") {
				expiry = cfg.JWTExpiry
			}

			token, err := crypto.GenerateToken(subject, cfg.JWTSecret, expiry)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "token subject, e.g. the operator's name")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime")
	cmd.MarkFlagRequired("subject")
	return cmd
}
