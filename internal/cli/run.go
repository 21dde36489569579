package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Settc/liftscript/internal/notify"
	"github.com/Settc/liftscript/internal/session"
	"github.com/Settc/liftscript/internal/ui"
	"github.com/Settc/liftscript/internal/workout"
)

func newRunCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the current workout as a guided session.",
		Long:  "run walks through the first entry of every exercise one set at a time, with rest timers. Logged sets are written back under each exercise when the session is saved.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.currentText(ctx)
			if err != nil {
				return err
			}

			var (
				outcome session.Outcome
				results []workout.Result
			)
			opts := []session.Option{
				session.WithLogger(a.log),
				session.WithFinish(func(o session.Outcome, r []workout.Result) {
					outcome, results = o, r
				}),
			}
			if a.cfg.Notifications {
				opts = append(opts, session.WithNotifier(notify.NewBell(cmd.ErrOrStderr(), a.log)))
			}

			runner, err := session.NewRunner(workout.Parse(text), opts...)
			if errors.Is(err, session.ErrEmptySession) {
				return fmt.Errorf("nothing to run: add a set line such as 5x135x3 under an exercise")
			}
			if err != nil {
				return err
			}

			if _, err := tea.NewProgram(ui.NewModel(runner, a.units())).Run(); err != nil {
				return fmt.Errorf("run session: %w", err)
			}
			if outcome != session.OutcomeCompleted {
				fmt.Fprintln(cmd.OutOrStdout(), "Session discarded.")
				return nil
			}
			return writeResults(cmd, a, text, results)
		},
	}
}

func newLogCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log <exercise> <set>...",
		Short: "Record sets for an exercise without a guided session.",
		Long:  "log appends a new entry under the exercise's header. Sets use the workout notation, e.g. \"liftscript log Squat 5x135x3 3x145\".",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.currentText(ctx)
			if err != nil {
				return err
			}

			name, exprs := splitLogArgs(args)
			if name == "" {
				return fmt.Errorf("exercise name is required")
			}
			if len(exprs) == 0 {
				return fmt.Errorf("at least one set is required, e.g. 5x135x3")
			}

			var results []workout.Result
			for _, expr := range exprs {
				set, ok := workout.ParseSet(expr)
				if !ok {
					return fmt.Errorf("invalid set %q", expr)
				}
				for range set.Count {
					results = append(results, workout.Result{Exercise: name, Reps: set.Reps, Weight: set.Weight})
				}
			}
			return writeResults(cmd, a, text, results)
		},
	}
}

// splitLogArgs separates the exercise name from trailing set expressions so
// multi-word names need no quoting.
func splitLogArgs(args []string) (string, []string) {
	split := len(args)
	for split > 0 {
		if _, ok := workout.ParseSet(args[split-1]); !ok {
			break
		}
		split--
	}
	return strings.Join(args[:split], " "), args[split:]
}

func writeResults(cmd *cobra.Command, a *app, text string, results []workout.Result) error {
	updated, missing := workout.Reinsert(text, results)
	for _, name := range missing {
		a.log.Warn("results skipped", "exercise", name)
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v: %s\n", workout.ErrExerciseNotFound, name)
	}
	if len(missing) > 0 && updated == text {
		return fmt.Errorf("%w: %s", workout.ErrExerciseNotFound, strings.Join(missing, ", "))
	}
	if err := a.manager.SaveText(updated); err != nil {
		return err
	}
	a.log.Info("results saved", "sets", len(results), "skipped", len(missing))

	skipped := make(map[string]bool, len(missing))
	for _, name := range missing {
		skipped[workout.NameKey(name)] = true
	}
	out := cmd.OutOrStdout()
	for _, group := range groupByExercise(results) {
		if skipped[workout.NameKey(group[0].Exercise)] {
			continue
		}
		fmt.Fprintf(out, "Logged %s: %s\n", group[0].Exercise, workout.FormatResults(group))
	}
	return nil
}

func groupByExercise(results []workout.Result) [][]workout.Result {
	var groups [][]workout.Result
	index := make(map[string]int)
	for _, r := range results {
		key := workout.NameKey(r.Exercise)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}
