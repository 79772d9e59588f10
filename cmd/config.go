package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/atomicstack/bizray-tui/internal/config"
	"github.com/atomicstack/bizray-tui/internal/format/table"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *config.Options, environ []string) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}
	cfgCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				cfg, err := loadConfig(c, opts, environ)
				if err != nil {
					return err
				}
				for _, line := range table.KeyValue(settingsRows(cfg, environ)) {
					fmt.Fprintln(c.OutOrStdout(), line)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the settings file location",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				cfg, err := config.Resolve(c.Flags(), opts, environ)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), cfg.SettingsPath)
				return nil
			},
		},
	)
	return cfgCmd
}

// settingsRows lists the effective settings. The token value is never
// printed.
func settingsRows(cfg config.Config, environ []string) [][2]string {
	s := cfg.Settings
	token := "not set"
	if s.Auth.Token != "" {
		token = "set"
	}
	logFile := cfg.Logging.FilePath
	if logFile == "" {
		logFile = "(default)"
	}
	rows := [][2]string{
		{"settings file", cfg.SettingsPath},
		{"endpoint", s.API.Endpoint},
		{"timeout", strconv.Itoa(s.API.TimeoutSeconds) + "s"},
		{"page size", strconv.Itoa(s.UI.PageSize)},
		{"theme", s.UI.Theme},
		{"show hints", strconv.FormatBool(s.UI.ShowHints)},
		{"token", token},
		{"log file", logFile},
		{"trace", strconv.FormatBool(cfg.Logging.Trace)},
	}
	if keys := config.PrefixedEnvKeys(environ); len(keys) > 0 {
		sort.Strings(keys)
		rows = append(rows, [2]string{"env overrides", strings.Join(keys, ", ")})
	}
	return rows
}
