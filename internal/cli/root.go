package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Settc/liftscript/internal/files"
)

// newRootCommand creates the top-level Cobra command. Running it without a
// subcommand shows the current workout.
func newRootCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	show := newShowCommand(ctx, a)
	cmd := &cobra.Command{
		Use:   "liftscript",
		Short: "Write workouts as plain text, run them as guided sessions and track progress.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(configPath, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			show.SetOut(cmd.OutOrStdout())
			return show.RunE(show, nil)
		},
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().AddFlagSet(show.Flags())

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default: <base>/config.yaml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log at debug level")

	cmd.AddCommand(
		show,
		newStepsCommand(ctx, a),
		newMetricsCommand(ctx, a),
		newRunCommand(ctx, a),
		newLogCommand(ctx, a),
		newEditCommand(ctx, a),
		newNewCommand(ctx, a),
		newSaveCommand(ctx, a),
		newLoadCommand(ctx, a),
		newListCommand(ctx, a),
		newDeleteCommand(ctx, a),
		newShareCommand(ctx, a),
		newImportCommand(ctx, a),
		newServeCommand(ctx, a),
		newMCPCommand(a),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	a := newApp(manager)
	return execute(newRootCommand(ctx, a), a)
}

// execute runs cmd and then releases the store and log file. Cobra skips
// post-run hooks when a command fails, so this cannot live in one.
func execute(cmd *cobra.Command, a *app) error {
	defer a.close()
	return cmd.Execute()
}

// Main is a helper used by cmd/liftscript/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
