package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Settc/liftscript/internal/logging"
	"github.com/Settc/liftscript/internal/session"
	"github.com/Settc/liftscript/internal/workout"
)

type staticSource struct {
	text string
	err  error
}

func (s staticSource) LoadText() (string, error) { return s.text, s.err }

func newHandlers(text string) *handlers {
	return &handlers{source: staticSource{text: text}, log: logging.NewNop()}
}

func call(t *testing.T, fn func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	result, err := fn(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", result.Content[0])
	return content.Text
}

func decode(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()
	require.False(t, result.IsError, resultText(t, result))
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), v))
}

const sample = "Squat r90\n5x135x3\n5x145x3\n\nPull-ups\n8xBW, 6BW\n"

// TestNewRegistersTools verifies the server builds with its tool set.
func TestNewRegistersTools(t *testing.T) {
	s := New(staticSource{}, "test", logging.NewNop())
	require.NotNil(t, s)
}

func TestParseWorkout(t *testing.T) {
	h := newHandlers("")
	var doc workout.Document
	decode(t, call(t, h.parseWorkout, map[string]any{"text": sample}), &doc)

	require.Len(t, doc.Exercises, 2)
	assert.Equal(t, "Squat", doc.Exercises[0].Name)
	assert.Equal(t, 90, doc.Exercises[0].RestSeconds)
	require.Len(t, doc.Exercises[1].Entries, 1)
	assert.True(t, doc.Exercises[1].Entries[0].Sets[1].Weight.IsBodyweight())
}

func TestParseWorkoutMissingText(t *testing.T) {
	h := newHandlers("")
	result := call(t, h.parseWorkout, map[string]any{})
	assert.True(t, result.IsError)
}

func TestGroupByDay(t *testing.T) {
	h := newHandlers("")
	var days []workout.DayGroup
	decode(t, call(t, h.groupByDay, map[string]any{"text": sample}), &days)

	require.Len(t, days, 2)
	assert.Len(t, days[0].Items, 2)
	assert.Len(t, days[1].Items, 1)
	assert.Equal(t, 2, days[1].TotalDays)

	decode(t, call(t, h.groupByDay, map[string]any{"text": ""}), &days)
	assert.Empty(t, days)
}

func TestSessionSteps(t *testing.T) {
	h := newHandlers("")
	var steps []session.Step
	decode(t, call(t, h.sessionSteps, map[string]any{"text": sample}), &steps)

	require.Len(t, steps, 5)
	assert.Equal(t, "Squat", steps[0].Exercise)
	assert.Equal(t, 90, steps[2].RestSeconds)
	assert.Equal(t, "Pull-ups", steps[3].Exercise)
	assert.Equal(t, 0, steps[4].RestSeconds)
}

func TestComputeMetric(t *testing.T) {
	h := newHandlers("")

	t.Run("volume default", func(t *testing.T) {
		var out metricResult
		decode(t, call(t, h.computeMetric, map[string]any{"text": sample, "exercise": "squat"}), &out)
		assert.Equal(t, workout.MetricVolume, out.Metric)
		assert.Equal(t, []float64{2025, 2175}, out.Values)
		require.NotNil(t, out.Delta)
		assert.InDelta(t, 150, *out.Delta, 1e-9)
	})

	t.Run("cardio default", func(t *testing.T) {
		var out metricResult
		decode(t, call(t, h.computeMetric, map[string]any{"text": "Run\n3mi 25:00\n", "exercise": "Run"}), &out)
		assert.Equal(t, workout.MetricDistance, out.Metric)
		assert.Equal(t, []float64{3}, out.Values)
		assert.Nil(t, out.Delta)
	})

	t.Run("unknown exercise", func(t *testing.T) {
		result := call(t, h.computeMetric, map[string]any{"text": sample, "exercise": "Deadlift"})
		assert.True(t, result.IsError)
	})

	t.Run("unknown metric", func(t *testing.T) {
		result := call(t, h.computeMetric, map[string]any{"text": sample, "exercise": "Squat", "metric": "power"})
		assert.True(t, result.IsError)
	})
}

func TestInsertResults(t *testing.T) {
	h := newHandlers("")
	results := `[{"exercise":"squat","reps":5,"weight":150},{"exercise":"Squat","reps":5,"weight":150},{"exercise":"Lunge","reps":10,"weight":"BW"}]`

	var out insertResult
	decode(t, call(t, h.insertResults, map[string]any{"text": "Squat\n5x135\n", "results": results}), &out)

	assert.Equal(t, "Squat\n5x135\n5*150*2\n", out.Text)
	assert.Equal(t, []string{"Lunge"}, out.Missing)
}

func TestInsertResultsInvalid(t *testing.T) {
	h := newHandlers("")
	for name, raw := range map[string]string{
		"not json":      "nope",
		"bad weight":    `[{"exercise":"Squat","reps":5,"weight":"heavy"}]`,
		"missing name":  `[{"reps":5,"weight":100}]`,
		"negative reps": `[{"exercise":"Squat","reps":-5,"weight":135}]`,
		"negative load": `[{"exercise":"Squat","reps":5,"weight":-10}]`,
		"nan load":      `[{"exercise":"Squat","reps":5,"weight":"NaN"}]`,
		"inf load":      `[{"exercise":"Squat","reps":5,"weight":"Inf"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			result := call(t, h.insertResults, map[string]any{"text": "Squat\n", "results": raw})
			assert.True(t, result.IsError)
		})
	}
}

func TestCurrentResource(t *testing.T) {
	h := newHandlers("Squat\n5x135\n")
	var req mcp.ReadResourceRequest
	req.Params.URI = currentURI

	contents, err := h.current(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "Squat\n5x135\n", text.Text)
	assert.Equal(t, currentURI, text.URI)

	h.source = staticSource{err: errors.New("disk gone")}
	_, err = h.current(context.Background(), req)
	assert.Error(t, err)
}
