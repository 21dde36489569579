package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Settc/liftscript/internal/store"
	"github.com/Settc/liftscript/internal/workout"
)

func newSaveCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save [name]",
		Short: "Save the current workout under a name.",
		Long:  "save stores the current workout in the library. Without a name it re-saves under the name it was last saved or loaded as. A matching name, ignoring case, is overwritten.",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				current, err := a.manager.CurrentName()
				if err != nil {
					return err
				}
				name = current
			}
			if name == "" {
				return fmt.Errorf("name is required")
			}

			text, err := a.currentText(ctx)
			if err != nil {
				return err
			}
			db, err := a.store(ctx)
			if err != nil {
				return err
			}
			saved, err := db.SaveWorkout(ctx, name, text)
			if err != nil {
				return err
			}
			if err := a.manager.SetCurrentName(saved.Name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%s)\n", saved.Name, exerciseLabel(saved.ExerciseCount))
			return nil
		},
	}
}

func newLoadCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load <name>",
		Short: "Replace the current workout with a saved one.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			db, err := a.store(ctx)
			if err != nil {
				return err
			}
			saved, err := db.GetWorkout(ctx, name)
			if errors.Is(err, store.ErrWorkoutNotFound) {
				return fmt.Errorf("no saved workout named %q", name)
			}
			if err != nil {
				return err
			}

			if err := a.manager.SaveText(saved.Text); err != nil {
				return err
			}
			if err := a.manager.SetCurrentName(saved.Name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %q (%s)\n", saved.Name, exerciseLabel(saved.ExerciseCount))
			return nil
		},
	}
}

func newListCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved workouts, most recent first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.store(ctx)
			if err != nil {
				return err
			}
			list, err := db.ListWorkouts(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No saved workouts.")
				return nil
			}
			current, err := a.manager.CurrentName()
			if err != nil {
				return err
			}
			for _, w := range list {
				marker := " "
				if workout.NameKey(w.Name) == workout.NameKey(current) {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s  %s  %s\n", marker, w.Name, exerciseLabel(w.ExerciseCount), w.SavedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newDeleteCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved workout.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			db, err := a.store(ctx)
			if err != nil {
				return err
			}
			if err := db.DeleteWorkout(ctx, name); err != nil {
				if errors.Is(err, store.ErrWorkoutNotFound) {
					return fmt.Errorf("no saved workout named %q", name)
				}
				return err
			}

			current, err := a.manager.CurrentName()
			if err != nil {
				return err
			}
			if workout.NameKey(current) == workout.NameKey(name) {
				if err := a.manager.SetCurrentName(""); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", name)
			return nil
		},
	}
}

func exerciseLabel(n int) string {
	if n == 1 {
		return "1 exercise"
	}
	return fmt.Sprintf("%d exercises", n)
}
