package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Settc/liftscript/internal/workout"
)

// RenderOptions controls the static workout views.
type RenderOptions struct {
	Unit   string
	Metric workout.Metric
	Now    time.Time
}

// RenderExercises renders the exercise-major view: each exercise with its
// entries dated backwards from today and a trend line for the chosen metric.
func RenderExercises(doc workout.Document, opts RenderOptions) string {
	if len(doc.Exercises) == 0 {
		return MutedStyle.Render("No exercises yet.") + "\n"
	}

	var blocks []string
	for _, ex := range doc.Exercises {
		var b strings.Builder
		b.WriteString(TitleStyle.Render(ex.Name))
		if rest := workout.FormatRest(ex.RestSeconds); rest != "" {
			b.WriteString(MutedStyle.Render("  " + rest))
		}
		b.WriteString("\n")
		if ex.Note != "" {
			b.WriteString(BlockStyle.Render(NoteStyle.Render(ex.Note)) + "\n")
		}
		for i, entry := range ex.Entries {
			date := workout.FormatDate(workout.AutoDate(i, len(ex.Entries), opts.Now))
			line := DateStyle.Render(date) + "  " + NormalStyle.Render(entrySummary(entry, opts.Unit))
			if entry.Note != "" {
				line += "  " + NoteStyle.Render(entry.Note)
			}
			b.WriteString(BlockStyle.Render(line) + "\n")
		}
		if trend := trendLine(ex, opts); trend != "" {
			b.WriteString(BlockStyle.Render(trend) + "\n")
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

// RenderDays renders the day-major view.
func RenderDays(doc workout.Document, opts RenderOptions) string {
	days := workout.GroupByDay(doc)
	if len(days) == 0 {
		return MutedStyle.Render("No recorded sets yet.") + "\n"
	}

	var blocks []string
	for _, day := range days {
		var b strings.Builder
		date := workout.AutoDate(day.DayIndex, day.TotalDays, opts.Now)
		b.WriteString(DateStyle.Render(workout.FormatDate(date)) + "\n")
		for _, item := range day.Items {
			entry := workout.Entry{Sets: item.Sets, Cardio: item.Cardio, Note: item.Note}
			line := TitleStyle.Render(item.Name) + "  " + NormalStyle.Render(entrySummary(entry, opts.Unit))
			if item.Note != "" {
				line += "  " + NoteStyle.Render(item.Note)
			}
			b.WriteString(BlockStyle.Render(line) + "\n")
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

func entrySummary(entry workout.Entry, unit string) string {
	if entry.IsCardio() {
		parts := make([]string, len(entry.Cardio))
		for i, c := range entry.Cardio {
			parts[i] = workout.FormatCardio(c)
		}
		return strings.Join(parts, ", ")
	}
	return workout.FormatEntrySummary(entry.Sets, unit)
}

// trendLine shows the metric series and the latest change. Max weight is
// skipped for bodyweight-only exercises.
func trendLine(ex workout.Exercise, opts RenderOptions) string {
	metric := metricFor(ex, opts.Metric)
	if metric == workout.MetricMaxWeight && workout.AllBodyweight(ex) {
		return ""
	}
	values := workout.Trend(ex, metric)
	if len(values) == 0 {
		return ""
	}

	distance := ""
	if ex.IsCardio() {
		if unit, ok := workout.DistanceUnitOf(ex.Entries[len(ex.Entries)-1].Cardio); ok {
			distance = string(unit)
		}
	}
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = FormatMetricValue(metric, v, opts.Unit, distance)
	}
	label := string(metric)
	if info, ok := workout.LookupMetric(label); ok {
		label = info.Label
	}
	line := MutedStyle.Render(label + ": " + strings.Join(rendered, " → "))

	if delta, ok := workout.Delta(ex, metric); ok && delta != 0 {
		text := FormatMetricValue(metric, math.Abs(delta), opts.Unit, distance)
		if delta > 0 {
			line += " " + GainStyle.Render("+"+text)
		} else {
			line += " " + LossStyle.Render("-"+text)
		}
	}
	return line
}

// metricFor picks a metric from the exercise's family, defaulting to the
// first metric of that family.
func metricFor(ex workout.Exercise, requested workout.Metric) workout.Metric {
	family := workout.StrengthMetrics
	if ex.IsCardio() {
		family = workout.CardioMetrics
	}
	for _, info := range family {
		if info.Key == requested {
			return requested
		}
	}
	return family[0].Key
}

// FormatMetricValue renders v with the unit its metric implies.
func FormatMetricValue(metric workout.Metric, v float64, weightUnit, distanceUnit string) string {
	switch metric {
	case workout.MetricTime:
		return workout.FormatCardioTime(int(math.Round(v)))
	case workout.MetricPace:
		return workout.FormatCardioTime(int(math.Round(v))) + "/" + distanceUnit
	case workout.MetricMaxWeight:
		return trimFloat(v) + " " + weightUnit
	case workout.MetricDistance:
		return strings.TrimSpace(trimFloat(v) + " " + distanceUnit)
	case workout.MetricCalories:
		return fmt.Sprintf("%s kcal", trimFloat(v))
	default:
		return trimFloat(v)
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
