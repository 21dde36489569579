package workout

import (
	"strconv"
	"strings"
)

// InsertResults writes session results back into text. Results for exercises
// without a header in text are dropped, as are results that would not parse
// back as a set (see Insertable).
func InsertResults(text string, results []Result) string {
	updated, _ := Reinsert(text, results)
	return updated
}

// Reinsert is InsertResults that also reports the exercise names it could not place.
// Every line other than the inserted ones is left byte-for-byte intact.
func Reinsert(text string, results []Result) (string, []string) {
	lines := splitLines(text)
	var missing []string
	valid := make([]Result, 0, len(results))
	for _, r := range results {
		if Insertable(r) {
			valid = append(valid, r)
		}
	}
	for _, group := range groupResults(valid) {
		header := findHeader(lines, group.name)
		if header == -1 {
			missing = append(missing, group.name)
			continue
		}

		insertAt := header + 1
		for insertAt < len(lines) && strings.TrimSpace(lines[insertAt]) != "" {
			insertAt++
		}

		line := FormatResults(group.results)
		if strings.HasSuffix(lines[header], "\r") {
			line += "\r"
		}
		lines = insertLine(lines, insertAt, line)
	}
	return strings.Join(lines, "\n"), missing
}

// Insertable reports whether r renders as a set that parses back unchanged.
// Negative reps and negative or non-finite loads do not.
func Insertable(r Result) bool {
	sets, ok := ParseSetLine(formatPair(r.Reps, r.Weight))
	if !ok || len(sets) != 1 {
		return false
	}
	return sets[0].Reps == r.Reps && sets[0].Weight.Equal(r.Weight)
}

// FormatResults composes the set line for one exercise's results: "5*135" for
// one result, "5*135*3" for identical ones, otherwise "8*135, 6*155".
func FormatResults(results []Result) string {
	if len(results) == 0 {
		return ""
	}
	first := results[0]
	if len(results) == 1 {
		return formatPair(first.Reps, first.Weight)
	}

	same := true
	for _, r := range results[1:] {
		if r.Reps != first.Reps || !r.Weight.Equal(first.Weight) {
			same = false
			break
		}
	}
	if same {
		return formatPair(first.Reps, first.Weight) + "*" + strconv.Itoa(len(results))
	}

	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = formatPair(r.Reps, r.Weight)
	}
	return strings.Join(parts, ", ")
}

// FormatSetExpr renders a set in canonical DSL form, e.g. "5*135*3 r90".
func FormatSetExpr(s Set) string {
	out := formatPair(s.Reps, s.Weight)
	if s.Count > 1 {
		out += "*" + strconv.Itoa(s.Count)
	}
	if s.RestSeconds > 0 {
		out += " r" + strconv.Itoa(s.RestSeconds)
	}
	return out
}

func formatPair(reps int, weight Weight) string {
	return strconv.Itoa(reps) + "*" + weight.String()
}

type resultGroup struct {
	name    string
	results []Result
}

// groupResults buckets results by case-folded exercise name in first-occurrence order.
func groupResults(results []Result) []resultGroup {
	var groups []resultGroup
	index := make(map[string]int)
	for _, r := range results {
		key := NameKey(r.Exercise)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, resultGroup{name: r.Exercise})
		}
		groups[i].results = append(groups[i].results, r)
	}
	return groups
}

// findHeader returns the index of the first header line naming exercise, or -1.
// Lines that parse as entries are never headers.
func findHeader(lines []string, exercise string) int {
	key := NameKey(exercise)
	for i, raw := range lines {
		line := ClassifyLine(raw)
		if line.Kind != LineContent {
			continue
		}
		if _, ok := parseEntry(line); ok {
			continue
		}
		if name, _ := HeaderName(line.Content); NameKey(name) == key {
			return i
		}
	}
	return -1
}

func insertLine(lines []string, index int, line string) []string {
	if index < 0 || index > len(lines) {
		return append(lines, line)
	}
	return append(lines[:index], append([]string{line}, lines[index:]...)...)
}
