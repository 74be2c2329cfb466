// Package commands implements the CLI commands for importa.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/importa/internal/app"
	"go.trai.ch/importa/internal/build"
	"go.trai.ch/importa/internal/core/domain"
)

// CLI represents the command line interface for importa.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "importa",
		Short:         "Build orchestrator for C++20 named modules",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			jsonLogs, _ := cmd.Flags().GetBool("json")
			a.SetJSONLogs(jsonLogs)
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON lines")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newOrderCmd())
	rootCmd.AddCommand(c.newLinkCmd())
	rootCmd.AddCommand(c.newScanCmd())
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

// addToolchainFlags registers the flags overriding the configured toolchain.
func addToolchainFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("toolchain", "t", "", "Toolchain kind (msvc or clang)")
	cmd.Flags().String("compiler", "", "Path to the compiler executable")
	cmd.Flags().String("linker", "", "Path to the linker executable")
}

func toolchainOverrides(cmd *cobra.Command) domain.ToolchainSettings {
	kind, _ := cmd.Flags().GetString("toolchain")
	compiler, _ := cmd.Flags().GetString("compiler")
	linker, _ := cmd.Flags().GetString("linker")
	return domain.ToolchainSettings{
		Kind:     domain.ToolchainKind(kind),
		Compiler: compiler,
		Linker:   linker,
	}
}
