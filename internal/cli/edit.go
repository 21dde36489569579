package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Settc/liftscript/internal/workout"
)

const defaultEditor = "vi"

func newEditCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the current workout in $EDITOR.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.currentText(ctx)
			if err != nil {
				return err
			}
			if !a.manager.HasText() {
				if err := a.manager.SaveText(text); err != nil {
					return err
				}
			}

			editor := strings.Fields(os.Getenv("EDITOR"))
			if len(editor) == 0 {
				editor = []string{defaultEditor}
			}
			c := exec.CommandContext(ctx, editor[0], append(editor[1:], a.manager.TextPath())...)
			c.Stdin = os.Stdin
			c.Stdout = cmd.OutOrStdout()
			c.Stderr = cmd.ErrOrStderr()
			if err := c.Run(); err != nil {
				return fmt.Errorf("run editor: %w", err)
			}

			updated, err := a.manager.LoadText()
			if err != nil {
				return err
			}
			a.log.Debug("workout edited", "path", a.manager.TextPath(), "bytes", len(updated))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d exercises.\n", workout.Parse(updated).ExerciseCount())
			return nil
		},
	}
}

func newNewCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new, empty workout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.manager.SaveText(""); err != nil {
				return err
			}
			if err := a.manager.SetCurrentName(""); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Started a new workout.")
			return nil
		},
	}
}
