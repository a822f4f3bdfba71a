// Package commands implements the CLI commands for the stanza resolver.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/stanza/internal/adapters/project"
	"go.trai.ch/stanza/internal/adapters/telemetry"
	"go.trai.ch/stanza/internal/app"
	"go.trai.ch/stanza/internal/build"
	"go.trai.ch/stanza/internal/core/ports"
)

// CLI represents the command line interface for stanza.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stanza",
		Short:         "A dependency specification resolver for project manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("project", "p", project.DefaultManifestName, "Path to the project manifest")
	rootCmd.PersistentFlags().Bool("trace", false, "Log completed spans")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			shutdown := telemetry.InstallProvider(logger)
			cobra.OnFinalize(func() {
				_ = shutdown(cmd.Context())
			})
		}
		return nil
	}

	rootCmd.AddCommand(c.newSpecCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func projectPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("project")
	return path
}
