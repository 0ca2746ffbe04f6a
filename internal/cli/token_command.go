// filepath: internal/cli/token_command.go
package cli

import (
	"errors"
	"fmt"
	"time"

	"payinfo/internal/services/auth"

	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the write API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl == 0 {
				ttl = cfg.TokenTTL
			}
			token, err := auth.NewTokenService(cfg.JWT.Secret).IssueToken(subject, ttl)
			if err != nil {
				if errors.Is(err, auth.ErrNoSecret) {
					return fmt.Errorf("%w: start 'payinfo serve' once or set PAYINFO_JWT_SECRET", err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	tokenCmd.Flags().StringVar(&subject, "subject", "", "Name of the client the token is issued to.")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime, defaults to jwt.token_ttl.")
	tokenCmd.Flags().String("jwt-secret", "", "Secret key for signing bearer tokens. (Env: PAYINFO_JWT_SECRET)")
	_ = tokenCmd.MarkFlagRequired("subject")

	return tokenCmd
}
