package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Settc/liftscript/internal/session"
	"github.com/Settc/liftscript/internal/workout"
)

// --- Tool definitions ---

var toolParseWorkout = mcp.NewTool("parse_workout",
	mcp.WithDescription("Parse workout text into exercises with their entries. Each entry holds strength sets (reps, weight or \"BW\", count) or cardio sets."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Workout text, one exercise header followed by set lines such as 5x135x3 or 3mi 25:00")),
)

var toolGroupByDay = mcp.NewTool("group_by_day",
	mcp.WithDescription("Transpose workout text into days: day n holds the n-th entry of every exercise that has one."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Workout text")),
)

var toolSessionSteps = mcp.NewTool("session_steps",
	mcp.WithDescription("Expand the first entry of every exercise into the single-set steps of a guided session."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Workout text")),
)

var toolComputeMetric = mcp.NewTool("compute_metric",
	mcp.WithDescription("Compute a metric for every entry of one exercise, oldest first, plus the change between the last two entries."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Workout text")),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (case-insensitive)")),
	mcp.WithString("metric", mcp.Description("Metric key. Defaults to volume for strength and distance for cardio."),
		mcp.Enum("volume", "maxWeight", "totalReps", "distance", "time", "calories", "pace")),
)

var toolInsertResults = mcp.NewTool("insert_results",
	mcp.WithDescription("Write logged sets back into workout text as a new line under each exercise's header. Returns the updated text and the exercises that had no header."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Workout text")),
	mcp.WithString("results", mcp.Required(), mcp.Description(`JSON array of {"exercise": string, "reps": int, "weight": number or "BW"}`)),
)

// --- Tool handlers ---

func (h *handlers) parseWorkout(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}
	return jsonResult(workout.Parse(text))
}

func (h *handlers) groupByDay(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}
	days := workout.GroupByDay(workout.Parse(text))
	if days == nil {
		days = []workout.DayGroup{}
	}
	return jsonResult(days)
}

func (h *handlers) sessionSteps(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}
	steps := session.BuildSteps(workout.Parse(text))
	if steps == nil {
		steps = []session.Step{}
	}
	return jsonResult(steps)
}

type metricResult struct {
	Exercise string         `json:"exercise"`
	Metric   workout.Metric `json:"metric"`
	Label    string         `json:"label"`
	Values   []float64      `json:"values"`
	Delta    *float64       `json:"delta,omitempty"`
}

func (h *handlers) computeMetric(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	ex, ok := workout.Parse(text).Find(name)
	if !ok {
		return mcp.NewToolResultError(workout.ErrExerciseNotFound.Error() + ": " + name), nil
	}

	key := req.GetString("metric", "")
	if key == "" {
		key = string(workout.MetricVolume)
		if ex.IsCardio() {
			key = string(workout.MetricDistance)
		}
	}
	info, ok := workout.LookupMetric(key)
	if !ok {
		return mcp.NewToolResultError("unknown metric: " + key), nil
	}

	out := metricResult{
		Exercise: ex.Name,
		Metric:   info.Key,
		Label:    info.Label,
		Values:   workout.Trend(ex, info.Key),
	}
	if delta, ok := workout.Delta(ex, info.Key); ok {
		out.Delta = &delta
	}
	return jsonResult(out)
}

type insertResult struct {
	Text    string   `json:"text"`
	Missing []string `json:"missing"`
}

func (h *handlers) insertResults(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}
	raw, err := req.RequireString("results")
	if err != nil {
		return mcp.NewToolResultError("results parameter is required"), nil
	}

	var results []workout.Result
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		return mcp.NewToolResultError("invalid results: " + err.Error()), nil
	}
	for _, r := range results {
		if strings.TrimSpace(r.Exercise) == "" {
			return mcp.NewToolResultError("invalid results: exercise is required"), nil
		}
		if r.Reps < 0 {
			return mcp.NewToolResultError(fmt.Sprintf("invalid results: reps for %s must not be negative", r.Exercise)), nil
		}
		if !workout.Insertable(r) {
			return mcp.NewToolResultError(fmt.Sprintf("invalid results: %d reps at %s for %s is not a set", r.Reps, r.Weight, r.Exercise)), nil
		}
	}

	updated, missing := workout.Reinsert(text, results)
	if len(missing) > 0 {
		h.log.Debug("mcp insert_results skipped exercises", "missing", missing)
	}
	if missing == nil {
		missing = []string{}
	}
	return jsonResult(insertResult{Text: updated, Missing: missing})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
