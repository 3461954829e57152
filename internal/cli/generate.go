package cli

import (
	"fmt"

	"rescue-site-server/internal/bootstrap"
	"rescue-site-server/internal/service"

	"github.com/spf13/cobra"
)

// GenerateCmd запускает генерацию сайта напрямую через сервис.
func GenerateCmd(opts *rootOptions) *cobra.Command {
	var (
		tenantID int64
		publish  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tenant site (plan, copy or both)",
	}
	cmd.PersistentFlags().Int64Var(&tenantID, "tenant", 0, "tenant (organization) id")
	_ = cmd.MarkPersistentFlagRequired("tenant")

	validate := func() error {
		if tenantID <= 0 {
			return fmt.Errorf("--tenant must be a positive integer")
		}
		return nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "plan",
		Short: "Generate the page structure with empty sections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate(); err != nil {
				return err
			}
			return withServices(cmd.Context(), opts, func(_ *environment, svc *bootstrap.Services) error {
				res, err := svc.SiteGeneration.GenerateStructure(cmd.Context(), tenantID)
				if res != nil {
					printStructure(cmd.OutOrStdout(), res)
				}
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "copy",
		Short: "Fill empty sections with generated copy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate(); err != nil {
				return err
			}
			return withServices(cmd.Context(), opts, func(_ *environment, svc *bootstrap.Services) error {
				res, err := svc.SiteGeneration.GenerateCopy(cmd.Context(), tenantID)
				if res != nil {
					printCopy(cmd.OutOrStdout(), res)
				}
				return err
			})
		},
	})

	all := &cobra.Command{
		Use:   "all",
		Short: "Generate structure, then copy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate(); err != nil {
				return err
			}
			return withServices(cmd.Context(), opts, func(_ *environment, svc *bootstrap.Services) error {
				res, err := svc.SiteGeneration.GenerateAll(cmd.Context(), tenantID, service.GenerateAllOptions{Publish: publish})
				if res != nil {
					printAll(cmd.OutOrStdout(), res)
				}
				return err
			})
		},
	}
	all.Flags().BoolVar(&publish, "publish", false, "mark the site as published after copy generation")
	cmd.AddCommand(all)

	return cmd
}
