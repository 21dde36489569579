package workout

// Metric names a derived value computed from an entry's sets.
type Metric string

const (
	MetricVolume    Metric = "volume"
	MetricMaxWeight Metric = "maxWeight"
	MetricTotalReps Metric = "totalReps"

	MetricDistance Metric = "distance"
	MetricTime     Metric = "time"
	MetricCalories Metric = "calories"
	MetricPace     Metric = "pace"
)

// MetricInfo describes a metric for display.
type MetricInfo struct {
	Key   Metric
	Label string
	// Unit is empty for unitless metrics; "weight" and "distance" are filled in
	// from the configured units by the caller.
	Unit string
}

// StrengthMetrics lists the metrics for strength exercises in display order.
var StrengthMetrics = []MetricInfo{
	{Key: MetricVolume, Label: "Volume"},
	{Key: MetricMaxWeight, Label: "Max Weight", Unit: "weight"},
	{Key: MetricTotalReps, Label: "Total Reps"},
}

// CardioMetrics lists the metrics for cardio exercises in display order.
var CardioMetrics = []MetricInfo{
	{Key: MetricDistance, Label: "Distance", Unit: "distance"},
	{Key: MetricTime, Label: "Time", Unit: "min"},
	{Key: MetricCalories, Label: "Calories", Unit: "kcal"},
	{Key: MetricPace, Label: "Pace", Unit: "min/distance"},
}

// LookupMetric finds a metric by key in either family.
func LookupMetric(key string) (MetricInfo, bool) {
	for _, family := range [][]MetricInfo{StrengthMetrics, CardioMetrics} {
		for _, info := range family {
			if string(info.Key) == key {
				return info, true
			}
		}
	}
	return MetricInfo{}, false
}

// ComputeMetric reduces strength sets to one value. Bodyweight counts as 0
// load; unknown metrics yield 0.
func ComputeMetric(sets []Set, metric Metric) float64 {
	switch metric {
	case MetricVolume:
		var total float64
		for _, s := range sets {
			total += float64(s.Reps) * s.Weight.Effective() * float64(s.Count)
		}
		return total
	case MetricMaxWeight:
		var best float64
		for _, s := range sets {
			best = max(best, s.Weight.Effective())
		}
		return best
	case MetricTotalReps:
		total := 0
		for _, s := range sets {
			total += s.Reps * s.Count
		}
		return float64(total)
	default:
		return 0
	}
}

// ComputeCardioMetric reduces cardio sets to one value. Distances are summed in
// the unit of the first set that records one. Pace is seconds per distance unit.
func ComputeCardioMetric(sets []CardioSet, metric Metric) float64 {
	switch metric {
	case MetricDistance:
		total, _ := cardioDistance(sets)
		return total
	case MetricTime:
		return float64(cardioSeconds(sets))
	case MetricCalories:
		total := 0
		for _, s := range sets {
			total += s.Calories
		}
		return float64(total)
	case MetricPace:
		distance, _ := cardioDistance(sets)
		if distance == 0 {
			return 0
		}
		return float64(cardioSeconds(sets)) / distance
	default:
		return 0
	}
}

// DistanceUnitOf returns the unit cardio distances are reported in.
func DistanceUnitOf(sets []CardioSet) (DistanceUnit, bool) {
	_, unit := cardioDistance(sets)
	return unit, unit != ""
}

func cardioDistance(sets []CardioSet) (float64, DistanceUnit) {
	var (
		total float64
		unit  DistanceUnit
	)
	for _, s := range sets {
		if !s.HasDistance {
			continue
		}
		if unit == "" {
			unit = s.Unit
		}
		total += Convert(s.Distance, s.Unit, unit)
	}
	return total, unit
}

func cardioSeconds(sets []CardioSet) int {
	total := 0
	for _, s := range sets {
		total += s.Seconds
	}
	return total
}

// EntryMetric computes metric for an entry, picking the family from its content.
func EntryMetric(entry Entry, metric Metric) float64 {
	if entry.IsCardio() {
		return ComputeCardioMetric(entry.Cardio, metric)
	}
	return ComputeMetric(entry.Sets, metric)
}

// Trend returns the metric for every entry of ex in entry order.
func Trend(ex Exercise, metric Metric) []float64 {
	values := make([]float64, 0, len(ex.Entries))
	for _, entry := range ex.Entries {
		values = append(values, EntryMetric(entry, metric))
	}
	return values
}

// Delta returns the change between the last two entries. ok is false with
// fewer than two entries.
func Delta(ex Exercise, metric Metric) (float64, bool) {
	values := Trend(ex, metric)
	if len(values) < 2 {
		return 0, false
	}
	return values[len(values)-1] - values[len(values)-2], true
}

// AllBodyweight reports whether every strength set of ex is bodyweight.
func AllBodyweight(ex Exercise) bool {
	seen := false
	for _, entry := range ex.Entries {
		for _, s := range entry.Sets {
			if !s.Weight.IsBodyweight() {
				return false
			}
			seen = true
		}
	}
	return seen
}
