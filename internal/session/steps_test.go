package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Settc/liftscript/internal/workout"
)

func TestBuildStepsUsesFirstEntryOnly(t *testing.T) {
	doc := workout.Parse("Bench\n8x135x2 r45\n6x155\n")

	steps := BuildSteps(doc)

	require.Len(t, steps, 2)
	for i, step := range steps {
		assert.Equal(t, "Bench", step.Exercise)
		assert.Equal(t, 45, step.RestSeconds)
		assert.Equal(t, 8, step.SuggestedReps)
		assert.True(t, step.SuggestedWeight.Equal(workout.Load(135)))
		assert.Equal(t, i, step.RepIndex)
		assert.Equal(t, 2, step.SegmentTotal)
	}
}

func TestBuildStepsRestResolution(t *testing.T) {
	doc := workout.Parse(workout.OnboardingText)

	steps := BuildSteps(doc)

	// 3 squat + 3 bench + 1 pull-up
	require.Len(t, steps, 7)
	tests := []struct {
		index    int
		exercise string
		setIndex int
		rest     int
	}{
		{0, "Squat", 0, 90},
		{2, "Squat", 0, 90},
		{3, "Bench Press", 0, 45},
		{4, "Bench Press", 1, 60},
		{5, "Bench Press", 2, 0},
		{6, "Pull-ups", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.exercise, func(t *testing.T) {
			step := steps[tt.index]
			assert.Equal(t, tt.exercise, step.Exercise)
			assert.Equal(t, tt.setIndex, step.SetIndex)
			assert.Equal(t, tt.rest, step.RestSeconds)
		})
	}
	assert.True(t, steps[6].SuggestedWeight.IsBodyweight())
}

func TestBuildStepsSkipsEmptyAndCardio(t *testing.T) {
	doc := workout.Parse("Plank\n\nRun\n3mi 25:00\n\nCurl\n10x30\n")

	steps := BuildSteps(doc)

	require.Len(t, steps, 1)
	assert.Equal(t, "Curl", steps[0].Exercise)
}
