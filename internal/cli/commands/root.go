package commands

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/logicossoftware/go-binresource"
	"github.com/logicossoftware/go-binresource/internal/cli/config"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	logger *slog.Logger
	cfg    *config.Config
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "binres",
		Short: "Inspect and edit binary resources",
		Long: `binres works with binary resources: an opaque payload behind a fixed size
metadata header describing the payload type, its format version and the tool
that produced it.

Defaults for the metadata written by wrap and set-metadata come from
binres.yaml in the working directory (or --config) and BINRES_* environment
variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default ./binres.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newInspectCommand(a))
	rootCmd.AddCommand(newWrapCommand(a))
	rootCmd.AddCommand(newUnwrapCommand(a))
	rootCmd.AddCommand(newSetMetadataCommand(a))
	rootCmd.AddCommand(newDigestCommand(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.configPath, Version)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("config loaded",
		"tool", cfg.Tool.Name,
		"tool_version", cfg.Tool.Version,
		"type", cfg.Resource.Type,
	)
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// The version does not need a valid config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "binres version: %s\n", Version)
			fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
			fmt.Fprintf(out, "Header version: %d\n", binresource.HeaderVersion)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
		},
	}
}
