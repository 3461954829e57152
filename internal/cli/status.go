package cli

import (
	"fmt"

	"rescue-site-server/internal/bootstrap"

	"github.com/spf13/cobra"
)

// StatusCmd показывает состояние сайта тенанта.
func StatusCmd(opts *rootOptions) *cobra.Command {
	var tenantID int64

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show pages, empty sections and lock state of a tenant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if tenantID <= 0 {
				return fmt.Errorf("--tenant must be a positive integer")
			}
			return withServices(cmd.Context(), opts, func(_ *environment, svc *bootstrap.Services) error {
				res, err := svc.SiteGeneration.Status(cmd.Context(), tenantID)
				if err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), res)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&tenantID, "tenant", 0, "tenant (organization) id")
	_ = cmd.MarkFlagRequired("tenant")
	return cmd
}
