package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Settc/liftscript/internal/mcp"
	"github.com/Settc/liftscript/internal/version"
)

func newMCPCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the workout tools over MCP on stdin/stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Info("mcp server starting")
			return mcp.Serve(mcp.New(a.manager, version.Version, a.log))
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "liftscript "+version.Info())
			return nil
		},
	}
}
