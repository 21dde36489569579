package workout

import "time"

// DayItem is one exercise's entry for a given day.
type DayItem struct {
	Name        string      `json:"name"`
	Sets        []Set       `json:"sets,omitempty"`
	Cardio      []CardioSet `json:"cardio,omitempty"`
	Note        string      `json:"note,omitempty"`
	RestSeconds int         `json:"rest_seconds,omitempty"`
}

// DayGroup collects the entries sharing an index across all exercises.
type DayGroup struct {
	DayIndex  int       `json:"day_index"`
	TotalDays int       `json:"total_days"`
	Items     []DayItem `json:"items"`
}

// GroupByDay transposes the document into day-major order. Day n holds the
// n-th entry of every exercise that has one; days without items are omitted.
func GroupByDay(doc Document) []DayGroup {
	total := 0
	for _, ex := range doc.Exercises {
		total = max(total, len(ex.Entries))
	}

	var days []DayGroup
	for d := 0; d < total; d++ {
		var items []DayItem
		for _, ex := range doc.Exercises {
			if d >= len(ex.Entries) {
				continue
			}
			entry := ex.Entries[d]
			items = append(items, DayItem{
				Name:        ex.Name,
				Sets:        entry.Sets,
				Cardio:      entry.Cardio,
				Note:        entry.Note,
				RestSeconds: ex.RestSeconds,
			})
		}
		if len(items) > 0 {
			days = append(days, DayGroup{DayIndex: d, TotalDays: total, Items: items})
		}
	}
	return days
}

// AutoDate maps a day index to a calendar date, treating the last day as today.
func AutoDate(index, total int, now time.Time) time.Time {
	back := total - 1 - index
	return time.Date(now.Year(), now.Month(), now.Day()-back, 0, 0, 0, 0, now.Location())
}
