package cli

import (
	"fmt"
	"time"

	"rescue-site-server/internal/middleware"

	"github.com/spf13/cobra"
)

// TokenCmd выпускает JWT для вызова /ai/* от имени оператора.
func TokenCmd(opts *rootOptions) *cobra.Command {
	var (
		userID int64
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the /ai API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if role != middleware.RoleOperator && role != middleware.RoleAdmin {
				return fmt.Errorf("--role must be %q or %q", middleware.RoleOperator, middleware.RoleAdmin)
			}
			env, err := loadEnvironment(opts)
			if err != nil {
				return err
			}
			if env.cfg.JWTSecret == "" {
				return fmt.Errorf("JWT secret is not configured")
			}
			token, err := middleware.IssueToken(env.cfg.JWTSecret, userID, role, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 1, "user id to embed in the token")
	cmd.Flags().StringVar(&role, "role", middleware.RoleOperator, "role: operator or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
