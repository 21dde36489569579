package workout

import (
	"strconv"
	"strings"
)

// DistanceUnit is the unit a cardio distance was written in.
type DistanceUnit string

const (
	UnitMiles      DistanceUnit = "mi"
	UnitKilometres DistanceUnit = "km"
	UnitMetres     DistanceUnit = "m"
)

// metres per unit
var unitScale = map[DistanceUnit]float64{
	UnitMiles:      1609.344,
	UnitKilometres: 1000,
	UnitMetres:     1,
}

// Convert expresses value (in from) in the unit to.
func Convert(value float64, from, to DistanceUnit) float64 {
	if from == to {
		return value
	}
	return value * unitScale[from] / unitScale[to]
}

// CardioSet is one line segment of cardio work. Zero fields were not written.
type CardioSet struct {
	Distance    float64      `json:"distance,omitempty"`
	Unit        DistanceUnit `json:"unit,omitempty"`
	Seconds     int          `json:"seconds,omitempty"`
	Calories    int          `json:"calories,omitempty"`
	HasDistance bool         `json:"-"`
	HasTime     bool         `json:"-"`
	HasCalories bool         `json:"-"`
}

// ParseCardio parses segments like "3mi 25:00", "15:00", "12:00 c200" or
// "10km 30:00 c350". Each token kind may appear once.
func ParseCardio(segment string) (CardioSet, bool) {
	fields := strings.Fields(strings.ToLower(segment))
	if len(fields) == 0 {
		return CardioSet{}, false
	}

	var set CardioSet
	for _, field := range fields {
		switch {
		case strings.Contains(field, ":"):
			if set.HasTime {
				return CardioSet{}, false
			}
			seconds, ok := parseClock(field)
			if !ok {
				return CardioSet{}, false
			}
			set.Seconds, set.HasTime = seconds, true
		case field[0] == 'c':
			if set.HasCalories {
				return CardioSet{}, false
			}
			kcal, err := strconv.Atoi(field[1:])
			if err != nil || kcal < 0 || !allDigits(field[1:]) {
				return CardioSet{}, false
			}
			set.Calories, set.HasCalories = kcal, true
		default:
			if set.HasDistance {
				return CardioSet{}, false
			}
			value, unit, ok := parseDistance(field)
			if !ok {
				return CardioSet{}, false
			}
			set.Distance, set.Unit, set.HasDistance = value, unit, true
		}
	}
	return set, true
}

// ParseCardioLine applies ParseCardio to content with the same all-or-nothing
// comma rule as ParseSetLine.
func ParseCardioLine(content string) ([]CardioSet, bool) {
	segments := strings.Split(content, ",")
	sets := make([]CardioSet, 0, len(segments))
	for _, segment := range segments {
		set, ok := ParseCardio(segment)
		if !ok {
			return nil, false
		}
		sets = append(sets, set)
	}
	return sets, true
}

// parseClock reads "mm:ss" or "h:mm:ss".
func parseClock(text string) (int, bool) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	total := 0
	for i, part := range parts {
		if part == "" || !allDigits(part) {
			return 0, false
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, false
		}
		if i > 0 && (len(part) != 2 || n >= 60) {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

func parseDistance(field string) (float64, DistanceUnit, bool) {
	for _, unit := range []DistanceUnit{UnitMiles, UnitKilometres, UnitMetres} {
		number, found := strings.CutSuffix(field, string(unit))
		if !found || number == "" {
			continue
		}
		sc := &scanner{src: number}
		value, ok := sc.number()
		if !ok || !sc.done() {
			return 0, "", false
		}
		return value, unit, true
	}
	return 0, "", false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
