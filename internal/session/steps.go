package session

import "github.com/Settc/liftscript/internal/workout"

// Step is one planned set of a guided session.
type Step struct {
	Exercise string `json:"exercise"`
	// SetIndex is the position of the source set within the entry; RepIndex
	// counts repetitions of that set.
	SetIndex        int            `json:"set_index"`
	RepIndex        int            `json:"rep_index"`
	SegmentTotal    int            `json:"segment_total"`
	SuggestedReps   int            `json:"suggested_reps"`
	SuggestedWeight workout.Weight `json:"suggested_weight"`
	// RestSeconds is 0 when neither the set nor the exercise specifies rest.
	RestSeconds int `json:"rest_seconds,omitempty"`
}

// BuildSteps expands the first entry of every exercise into single-set steps.
// Later entries, exercises without entries and cardio entries contribute nothing.
func BuildSteps(doc workout.Document) []Step {
	var steps []Step
	for _, ex := range doc.Exercises {
		if len(ex.Entries) == 0 {
			continue
		}
		for si, set := range ex.Entries[0].Sets {
			rest := set.RestSeconds
			if rest == 0 {
				rest = ex.RestSeconds
			}
			for ri := 0; ri < set.Count; ri++ {
				steps = append(steps, Step{
					Exercise:        ex.Name,
					SetIndex:        si,
					RepIndex:        ri,
					SegmentTotal:    set.Count,
					SuggestedReps:   set.Reps,
					SuggestedWeight: set.Weight,
					RestSeconds:     rest,
				})
			}
		}
	}
	return steps
}
