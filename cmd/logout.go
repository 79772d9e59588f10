package cmd

import (
	"fmt"

	"github.com/atomicstack/bizray-tui/internal/config"
	"github.com/atomicstack/bizray-tui/internal/logging/events"
	"github.com/spf13/cobra"
)

func newLogoutCmd(opts *config.Options, environ []string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig(c, opts, environ)
			if err != nil {
				return err
			}
			if cfg.File.Auth.Token == "" {
				fmt.Fprintln(c.OutOrStdout(), "Not logged in")
				return nil
			}
			if err := config.NewStore(cfg.SettingsPath, cfg.File).ClearToken(); err != nil {
				return fmt.Errorf("clear token: %w", err)
			}
			events.Auth.Logout("cli")
			fmt.Fprintln(c.OutOrStdout(), "Logged out successfully")
			return nil
		},
	}
}
