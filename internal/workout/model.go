package workout

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Weight is the load used for a set: either an external weight or bodyweight.
// The zero value is a numeric load of 0, which is distinct from Bodyweight.
type Weight struct {
	value      float64
	bodyweight bool
}

// Bodyweight denotes a set performed without external load.
var Bodyweight = Weight{bodyweight: true}

// Load returns a numeric weight.
func Load(value float64) Weight {
	return Weight{value: value}
}

// IsBodyweight reports whether w is the bodyweight sentinel.
func (w Weight) IsBodyweight() bool {
	return w.bodyweight
}

// Value returns the numeric load. ok is false for bodyweight.
func (w Weight) Value() (value float64, ok bool) {
	if w.bodyweight {
		return 0, false
	}
	return w.value, true
}

// Effective returns the load counted by metrics; bodyweight counts as 0.
func (w Weight) Effective() float64 {
	if w.bodyweight {
		return 0
	}
	return w.value
}

// Equal reports whether both weights carry the same meaning.
func (w Weight) Equal(other Weight) bool {
	if w.bodyweight || other.bodyweight {
		return w.bodyweight == other.bodyweight
	}
	return w.value == other.value
}

// String renders the weight the way the DSL writes it: "BW" or the shortest decimal.
func (w Weight) String() string {
	if w.bodyweight {
		return "BW"
	}
	return strconv.FormatFloat(w.value, 'f', -1, 64)
}

// MarshalJSON encodes bodyweight as the string "BW" and loads as numbers.
func (w Weight) MarshalJSON() ([]byte, error) {
	if w.bodyweight {
		return []byte(`"BW"`), nil
	}
	return json.Marshal(w.value)
}

// UnmarshalJSON accepts a finite, non-negative number or the string "BW".
func (w *Weight) UnmarshalJSON(data []byte) error {
	var v float64
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if strings.EqualFold(strings.TrimSpace(s), "BW") {
			*w = Bodyweight
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", s)
		}
		v = parsed
	} else if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid weight %s", data)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("invalid weight %s: must be a non-negative number or BW", data)
	}
	*w = Load(v)
	return nil
}

// Set is a batch of identical sets: Count repetitions of Reps at Weight.
type Set struct {
	Reps   int    `json:"reps"`
	Weight Weight `json:"weight"`
	Count  int    `json:"count"`
	// RestSeconds is 0 when the set carries no rest suffix.
	RestSeconds int `json:"rest_seconds,omitempty"`
}

// Entry is one line of recorded performance for an exercise. Exactly one of
// Sets or Cardio is populated.
type Entry struct {
	Sets   []Set       `json:"sets,omitempty"`
	Cardio []CardioSet `json:"cardio,omitempty"`
	Note   string      `json:"note,omitempty"`
}

// IsCardio reports whether the entry records cardio work.
func (e Entry) IsCardio() bool {
	return len(e.Cardio) > 0
}

// Exercise groups the entries recorded beneath one header line.
type Exercise struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
	Note    string  `json:"note,omitempty"`
	// RestSeconds is the default rest for sets without their own suffix; 0 means none.
	RestSeconds int `json:"rest_seconds,omitempty"`
}

// IsCardio reports whether any entry of the exercise records cardio work.
func (ex Exercise) IsCardio() bool {
	for _, entry := range ex.Entries {
		if entry.IsCardio() {
			return true
		}
	}
	return false
}

// Document is the parsed form of a workout text, in first-appearance order.
type Document struct {
	Exercises []Exercise `json:"exercises"`
}

// NameKey folds an exercise or workout name into its lookup key.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Find returns the first exercise whose name matches case-insensitively.
func (d Document) Find(name string) (Exercise, bool) {
	key := NameKey(name)
	for _, ex := range d.Exercises {
		if NameKey(ex.Name) == key {
			return ex, true
		}
	}
	return Exercise{}, false
}

// ExerciseCount returns the number of distinct exercise names.
func (d Document) ExerciseCount() int {
	seen := make(map[string]struct{}, len(d.Exercises))
	for _, ex := range d.Exercises {
		seen[NameKey(ex.Name)] = struct{}{}
	}
	return len(seen)
}

// Runnable reports whether any exercise has an entry a guided session can use.
func (d Document) Runnable() bool {
	for _, ex := range d.Exercises {
		if len(ex.Entries) > 0 && !ex.Entries[0].IsCardio() {
			return true
		}
	}
	return false
}

// Result is the recorded outcome of one completed session step.
type Result struct {
	Exercise string `json:"exercise"`
	Reps     int    `json:"reps"`
	Weight   Weight `json:"weight"`
}
