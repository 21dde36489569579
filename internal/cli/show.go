package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Settc/liftscript/internal/session"
	"github.com/Settc/liftscript/internal/ui"
	"github.com/Settc/liftscript/internal/workout"
)

func newShowCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		by     string
		metric string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current workout by exercise or by day.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.currentText(ctx)
			if err != nil {
				return err
			}
			if metric != "" {
				if _, ok := workout.LookupMetric(metric); !ok {
					return fmt.Errorf("invalid metric %q (expected %s)", metric, metricKeys())
				}
			}

			doc := workout.Parse(text)
			opts := ui.RenderOptions{Unit: a.units(), Metric: workout.Metric(metric), Now: time.Now()}
			switch strings.ToLower(by) {
			case "", "exercise":
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderExercises(doc, opts))
			case "day":
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderDays(doc, opts))
			default:
				return fmt.Errorf("invalid view %q (expected exercise|day)", by)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "exercise", "Group by exercise or day")
	cmd.Flags().StringVar(&metric, "metric", "", "Trend metric (default: volume, or distance for cardio)")

	return cmd
}

func newStepsCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the guided session steps for the current workout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.currentText(ctx)
			if err != nil {
				return err
			}
			steps := session.BuildSteps(workout.Parse(text))
			if len(steps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No steps: add a set line under an exercise.")
				return nil
			}

			out := cmd.OutOrStdout()
			for i, step := range steps {
				planned := workout.Set{Reps: step.SuggestedReps, Weight: step.SuggestedWeight, Count: 1}
				line := fmt.Sprintf("%d. %s %d/%d: %s", i+1, step.Exercise, step.RepIndex+1, step.SegmentTotal, workout.FormatSet(planned, a.units()))
				if rest := workout.FormatRest(step.RestSeconds); rest != "" {
					line += " (" + rest + ")"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newMetricsCommand(ctx context.Context, a *app) *cobra.Command {
	var metric string

	cmd := &cobra.Command{
		Use:   "metrics <exercise>",
		Short: "Print an exercise's metric for every entry, oldest first.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.currentText(ctx)
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			ex, ok := workout.Parse(text).Find(name)
			if !ok {
				return fmt.Errorf("%w: %s", workout.ErrExerciseNotFound, name)
			}

			key := workout.Metric(metric)
			if key == "" {
				key = workout.MetricVolume
				if ex.IsCardio() {
					key = workout.MetricDistance
				}
			}
			info, ok := workout.LookupMetric(string(key))
			if !ok {
				return fmt.Errorf("invalid metric %q (expected %s)", metric, metricKeys())
			}
			if info.Key == workout.MetricMaxWeight && workout.AllBodyweight(ex) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is bodyweight only; max weight does not apply.\n", ex.Name)
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s · %s\n", ex.Name, info.Label)
			now := time.Now()
			for i, entry := range ex.Entries {
				distance := ""
				if unit, ok := workout.DistanceUnitOf(entry.Cardio); ok {
					distance = string(unit)
				}
				value := workout.EntryMetric(entry, info.Key)
				date := workout.FormatDate(workout.AutoDate(i, len(ex.Entries), now))
				fmt.Fprintf(out, "%s  %s\n", date, ui.FormatMetricValue(info.Key, value, a.units(), distance))
			}
			if delta, ok := workout.Delta(ex, info.Key); ok {
				fmt.Fprintf(out, "change: %+g\n", delta)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&metric, "metric", "", "Metric key (default: volume, or distance for cardio)")

	return cmd
}

func metricKeys() string {
	var keys []string
	for _, family := range [][]workout.MetricInfo{workout.StrengthMetrics, workout.CardioMetrics} {
		for _, info := range family {
			keys = append(keys, string(info.Key))
		}
	}
	return strings.Join(keys, "|")
}
