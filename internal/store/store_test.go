package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Settc/liftscript/internal/share"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "liftscript.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// fixedClock returns successive instants one minute apart.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

// TestSaveWorkoutOverwritesCaseInsensitively verifies that saving under a
// name differing only in case replaces the record and keeps the new casing.
func TestSaveWorkoutOverwritesCaseInsensitively(t *testing.T) {
	db := openTestDB(t)
	db.now = fixedClock(time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first, err := db.SaveWorkout(ctx, "Push Day", "Bench\n8*135\n\nDips\n10BW")
	require.NoError(t, err)
	assert.Equal(t, 2, first.ExerciseCount)

	second, err := db.SaveWorkout(ctx, "push day", "Bench\n8*135\n\nbench\n8*145\n\nPress\n5*95")
	require.NoError(t, err)
	assert.Equal(t, "push day", second.Name)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.ExerciseCount)

	list, err := db.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, time.Date(2025, 5, 1, 9, 1, 0, 0, time.UTC), list[0].SavedAt.UTC())
}

func TestListWorkoutsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	db.now = fixedClock(time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := db.SaveWorkout(ctx, name, "Squat\n5*135")
		require.NoError(t, err)
	}

	list, err := db.LoadSavedWorkouts(ctx)
	require.NoError(t, err)
	names := make([]string, len(list))
	for i, w := range list {
		names[i] = w.Name
	}
	assert.Equal(t, []string{"C", "B", "A"}, names)
}

func TestGetAndDeleteWorkout(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.GetWorkout(ctx, "missing")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	_, err = db.SaveWorkout(ctx, "Legs", "Squat r90\n5*135*3")
	require.NoError(t, err)

	got, err := db.GetWorkout(ctx, "  LEGS ")
	require.NoError(t, err)
	assert.Equal(t, "Squat r90\n5*135*3", got.Text)

	require.NoError(t, db.DeleteWorkout(ctx, "legs"))
	assert.ErrorIs(t, db.DeleteWorkout(ctx, "legs"), ErrWorkoutNotFound)
}

func TestSaveWorkoutRequiresName(t *testing.T) {
	db := openTestDB(t)
	_, err := db.SaveWorkout(context.Background(), "   ", "Squat")
	assert.Error(t, err)
}

func TestSaveSavedWorkoutsReplacesList(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.SaveWorkout(ctx, "Old", "Row\n10*100")
	require.NoError(t, err)

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.SaveSavedWorkouts(ctx, []SavedWorkout{
		{Name: "Upper", Text: "Bench\n8*135\n\nRow\n10*100", SavedAt: at},
		{Name: "Lower", Text: "Squat\n5*135", SavedAt: at.Add(time.Hour)},
	}))

	list, err := db.LoadSavedWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Lower", list[0].Name)
	assert.Equal(t, "Upper", list[1].Name)
	assert.Equal(t, 2, list[1].ExerciseCount)
	assert.NotEmpty(t, list[1].ID)
}

func TestSettings(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, ok, err := db.Setting(ctx, "seen-onboarding")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.SetSetting(ctx, "seen-onboarding", "true"))
	require.NoError(t, db.SetSetting(ctx, "seen-onboarding", "yes"))

	value, ok, err := db.Setting(ctx, "seen-onboarding")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "yes", value)
}

func TestShares(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertShare(ctx, "ABC234", share.Workout{Name: "Legs", Text: "Squat"}))
	assert.ErrorIs(t, db.InsertShare(ctx, "ABC234", share.Workout{Name: "Other"}), share.ErrCodeTaken)

	got, err := db.FindShare(ctx, "ABC234")
	require.NoError(t, err)
	assert.Equal(t, share.Workout{Name: "Legs", Text: "Squat"}, got)

	_, err = db.FindShare(ctx, "ZZZZZZ")
	assert.ErrorIs(t, err, share.ErrNotFound)
}

// TestShareServiceOverStore wires the share service to sqlite.
func TestShareServiceOverStore(t *testing.T) {
	db := openTestDB(t)
	svc := share.NewService(db, db.log)
	ctx := context.Background()

	code, err := svc.Publish(ctx, share.Workout{Text: "Bench\n8*135"})
	require.NoError(t, err)

	got, err := svc.Resolve(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, share.DefaultName, got.Name)
}
