package workout

import (
	"math"
	"testing"
)

func TestComputeMetric(t *testing.T) {
	sets := []Set{{Reps: 10, Weight: Load(50), Count: 2}}
	if got := ComputeMetric(sets, MetricVolume); got != 1000 {
		t.Fatalf("volume = %v, want 1000", got)
	}

	mixed := []Set{
		{Reps: 5, Weight: Load(135), Count: 3},
		{Reps: 20, Weight: Bodyweight, Count: 1},
		{Reps: 3, Weight: Load(185.5), Count: 1},
	}
	if got := ComputeMetric(mixed, MetricVolume); got != 5*135*3+3*185.5 {
		t.Fatalf("volume = %v", got)
	}
	if got := ComputeMetric(mixed, MetricMaxWeight); got != 185.5 {
		t.Fatalf("maxWeight = %v, want 185.5", got)
	}
	if got := ComputeMetric(mixed, MetricTotalReps); got != 15+20+3 {
		t.Fatalf("totalReps = %v, want 38", got)
	}
	if got := ComputeMetric(mixed, Metric("bogus")); got != 0 {
		t.Fatalf("unknown metric = %v, want 0", got)
	}
}

func TestComputeMetricBodyweight(t *testing.T) {
	set, _ := ParseSet("20BW")
	sets := []Set{set}
	if got := ComputeMetric(sets, MetricVolume); got != 0 {
		t.Fatalf("volume = %v, want 0", got)
	}
	if got := ComputeMetric(sets, MetricMaxWeight); got != 0 {
		t.Fatalf("maxWeight = %v, want 0", got)
	}
	if got := ComputeMetric(sets, MetricTotalReps); got != 20 {
		t.Fatalf("totalReps = %v, want 20", got)
	}
	if got := ComputeMetric(nil, MetricMaxWeight); got != 0 {
		t.Fatalf("maxWeight(nil) = %v, want 0", got)
	}
}

func TestComputeCardioMetric(t *testing.T) {
	sets, ok := ParseCardioLine("3mi 24:00 c300, 1609.344m 8:00")
	if !ok {
		t.Fatalf("ParseCardioLine ok = false")
	}
	if got := ComputeCardioMetric(sets, MetricDistance); math.Abs(got-4) > 1e-9 {
		t.Fatalf("distance = %v, want 4", got)
	}
	if got := ComputeCardioMetric(sets, MetricTime); got != 32*60 {
		t.Fatalf("time = %v, want 1920", got)
	}
	if got := ComputeCardioMetric(sets, MetricCalories); got != 300 {
		t.Fatalf("calories = %v, want 300", got)
	}
	if got := ComputeCardioMetric(sets, MetricPace); math.Abs(got-480) > 1e-9 {
		t.Fatalf("pace = %v, want 480", got)
	}
	if unit, ok := DistanceUnitOf(sets); !ok || unit != UnitMiles {
		t.Fatalf("DistanceUnitOf = %q %v, want mi", unit, ok)
	}

	timeOnly, _ := ParseCardioLine("15:00")
	if got := ComputeCardioMetric(timeOnly, MetricPace); got != 0 {
		t.Fatalf("pace without distance = %v, want 0", got)
	}
}

func TestTrendAndDelta(t *testing.T) {
	doc := Parse("Bench\n8*135\n8*145\n6*155\n\nDips\n10BW\n12BW\n")
	bench := doc.Exercises[0]

	trend := Trend(bench, MetricMaxWeight)
	if len(trend) != 3 || trend[0] != 135 || trend[2] != 155 {
		t.Fatalf("trend = %v", trend)
	}
	delta, ok := Delta(bench, MetricVolume)
	if !ok || delta != 6*155-8*145 {
		t.Fatalf("delta = %v %v", delta, ok)
	}
	if _, ok := Delta(Exercise{Name: "x", Entries: bench.Entries[:1]}, MetricVolume); ok {
		t.Fatalf("Delta with one entry ok = true")
	}

	if AllBodyweight(bench) || !AllBodyweight(doc.Exercises[1]) {
		t.Fatalf("AllBodyweight misclassified")
	}
	if AllBodyweight(Exercise{Name: "empty"}) {
		t.Fatalf("AllBodyweight(empty) = true")
	}
}

func TestLookupMetric(t *testing.T) {
	if info, ok := LookupMetric("maxWeight"); !ok || info.Label != "Max Weight" {
		t.Fatalf("LookupMetric(maxWeight) = %+v %v", info, ok)
	}
	if info, ok := LookupMetric("pace"); !ok || info.Key != MetricPace {
		t.Fatalf("LookupMetric(pace) = %+v %v", info, ok)
	}
	if _, ok := LookupMetric("speed"); ok {
		t.Fatalf("LookupMetric(speed) ok = true")
	}
}
