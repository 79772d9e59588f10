package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/bizray-tui/internal/app"
	"github.com/atomicstack/bizray-tui/internal/config"
	"github.com/atomicstack/bizray-tui/internal/logging"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion records the build version reported by `bizray version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

type runFunc func(cfg config.Config, version string) error

// env carries what commands need from the process so tests can swap it.
type env struct {
	run     runFunc
	environ []string
	out     io.Writer
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return newRootCmd(env{run: app.Run, environ: os.Environ(), out: os.Stdout}).Execute()
}

func newRootCmd(e env) *cobra.Command {
	root := &cobra.Command{
		Use:   "bizray",
		Short: "Terminal client for the Austrian company registry",
		Long: `bizray searches the BizRay company registry service from the terminal:
log in, search companies with autocomplete and city filters, and inspect
company details, partners, registry entries and risk indicators.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	root.SetOut(e.out)
	root.SetVersionTemplate("bizray {{.Version}}\n")
	opts := config.BindFlags(root.PersistentFlags())

	root.RunE = func(c *cobra.Command, args []string) error {
		cfg, err := loadConfig(c, opts, e.environ)
		if err != nil {
			return err
		}
		cfg.Args = os.Args[1:]
		traceStartup(cfg)
		return e.run(cfg, version)
	}

	root.AddCommand(
		newVersionCmd(),
		newLogoutCmd(opts, e.environ),
		newConfigCmd(opts, e.environ),
	)
	return root
}

// loadConfig resolves and validates settings and configures logging.
func loadConfig(c *cobra.Command, opts *config.Options, environ []string) (config.Config, error) {
	cfg, err := config.Resolve(c.Flags(), opts, environ)
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of bizray",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintf(c.OutOrStdout(), "bizray %s\n", version)
		},
	}
}
