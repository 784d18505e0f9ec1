package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/collections-backend-go/internal/config"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/jwt"
	"github.com/spf13/cobra"
)

var errNoSecret = errors.New("JWT_SECRET_KEY is not set; write endpoints are unauthenticated")

func tokenCmd(cfg func() *config.Config) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for the protected write endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cfg()
			if c.JWT.Secret == "" {
				return errNoSecret
			}

			svc := jwt.NewJWTService(c.JWT.Secret, c.JWT.AccessExpiration)
			token, expiresAt, err := svc.GenerateAccessTokenWithTTL(subject, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			cmd.PrintErrf("expires at %s\n", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "frontend", "subject claim of the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default JWT_ACCESS_EXPIRATION_TIME)")
	return cmd
}
