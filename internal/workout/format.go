package workout

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatRest renders a rest duration such as "90s rest" -> "1m 30s rest".
// It returns "" when seconds is 0.
func FormatRest(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds rest", seconds)
	}
	m, s := seconds/60, seconds%60
	if s == 0 {
		return fmt.Sprintf("%dm rest", m)
	}
	return fmt.Sprintf("%dm %ds rest", m, s)
}

// FormatWeight renders a load with its unit, or "bodyweight".
func FormatWeight(w Weight, unit string) string {
	if w.IsBodyweight() {
		return "bodyweight"
	}
	return w.String() + " " + unit
}

// FormatSet renders a set for humans, e.g. "3 sets × 5 reps @ 135 lbs".
func FormatSet(s Set, unit string) string {
	weight := FormatWeight(s.Weight, unit)
	if s.Count > 1 {
		return fmt.Sprintf("%d sets × %d reps @ %s", s.Count, s.Reps, weight)
	}
	return fmt.Sprintf("%d reps @ %s", s.Reps, weight)
}

// FormatEntrySummary totals an entry, e.g. "6 sets · 30 total reps @ 135 lbs, 185 lbs".
func FormatEntrySummary(sets []Set, unit string) string {
	var (
		totalSets, totalReps int
		weights              []string
		seen                 = make(map[string]bool)
	)
	for _, s := range sets {
		totalSets += s.Count
		totalReps += s.Reps * s.Count
		label := FormatWeight(s.Weight, unit)
		if !seen[label] {
			seen[label] = true
			weights = append(weights, label)
		}
	}
	return fmt.Sprintf("%d sets · %d total reps @ %s", totalSets, totalReps, strings.Join(weights, ", "))
}

// FormatTimer renders a countdown: "45", "1:05", "2:00".
func FormatTimer(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	m, s := seconds/60, seconds%60
	if m == 0 {
		return strconv.Itoa(s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatCardioTime renders a duration as "25:00" or "1:02:03".
func FormatCardioTime(seconds int) string {
	h, m, s := seconds/3600, (seconds%3600)/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatCardio renders a cardio set, e.g. "3 mi · 25:00 · 200 kcal".
func FormatCardio(c CardioSet) string {
	var parts []string
	if c.HasDistance {
		parts = append(parts, strconv.FormatFloat(c.Distance, 'f', -1, 64)+" "+string(c.Unit))
	}
	if c.HasTime {
		parts = append(parts, FormatCardioTime(c.Seconds))
	}
	if c.HasCalories {
		parts = append(parts, strconv.Itoa(c.Calories)+" kcal")
	}
	return strings.Join(parts, " · ")
}

// FormatDate renders a day label such as "Mon, Jan 2".
func FormatDate(t time.Time) string {
	return t.Format("Mon, Jan 2")
}
