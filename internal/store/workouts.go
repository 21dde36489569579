package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Settc/liftscript/internal/workout"
)

// SavedWorkout is a named copy of a workout text.
type SavedWorkout struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Text          string    `json:"text"`
	ExerciseCount int       `json:"exercise_count"`
	SavedAt       time.Time `json:"saved_at"`
}

// NewSavedWorkout builds a record for text, counting its distinct exercises.
func NewSavedWorkout(name, text string, savedAt time.Time) SavedWorkout {
	return SavedWorkout{
		Name:          strings.TrimSpace(name),
		Text:          text,
		ExerciseCount: workout.Parse(text).ExerciseCount(),
		SavedAt:       savedAt,
	}
}

// ListWorkouts returns saved workouts, most recently saved first.
func (s *DB) ListWorkouts(ctx context.Context) ([]SavedWorkout, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, body, exercise_count, saved_at
		FROM saved_workouts
		ORDER BY saved_at DESC, name_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing workouts: %w", err)
	}
	defer rows.Close()

	var out []SavedWorkout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// SaveWorkout stores text under name. A workout whose name matches
// case-insensitively is overwritten and takes the new casing.
func (s *DB) SaveWorkout(ctx context.Context, name, text string) (SavedWorkout, error) {
	w := NewSavedWorkout(name, text, s.now())
	if w.Name == "" {
		return SavedWorkout{}, errors.New("workout name is required")
	}
	if err := upsertWorkout(ctx, s.db, w); err != nil {
		return SavedWorkout{}, err
	}
	s.log.Info("workout saved", "name", w.Name, "exercises", w.ExerciseCount)
	return s.GetWorkout(ctx, w.Name)
}

// GetWorkout finds a saved workout by case-insensitive name.
func (s *DB) GetWorkout(ctx context.Context, name string) (SavedWorkout, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, body, exercise_count, saved_at
		FROM saved_workouts WHERE name_key = ?`, workout.NameKey(name))
	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedWorkout{}, ErrWorkoutNotFound
	}
	return w, err
}

// DeleteWorkout removes the saved workout named name.
func (s *DB) DeleteWorkout(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM saved_workouts WHERE name_key = ?`, workout.NameKey(name))
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}
	if n == 0 {
		return ErrWorkoutNotFound
	}
	s.log.Info("workout deleted", "name", name)
	return nil
}

// LoadSavedWorkouts returns the whole saved-workout list.
func (s *DB) LoadSavedWorkouts(ctx context.Context) ([]SavedWorkout, error) {
	return s.ListWorkouts(ctx)
}

// SaveSavedWorkouts replaces the whole saved-workout list in one transaction.
// Later entries win when two names fold to the same key.
func (s *DB) SaveSavedWorkouts(ctx context.Context, list []SavedWorkout) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM saved_workouts`); err != nil {
		return fmt.Errorf("clearing workouts: %w", err)
	}
	for _, w := range list {
		if w.SavedAt.IsZero() {
			w.SavedAt = s.now()
		}
		w.ExerciseCount = workout.Parse(w.Text).ExerciseCount()
		if err := upsertWorkout(ctx, tx, w); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertWorkout(ctx context.Context, db execer, w SavedWorkout) error {
	id := w.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO saved_workouts (id, name, name_key, body, exercise_count, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (name_key) DO UPDATE SET
			name = excluded.name,
			body = excluded.body,
			exercise_count = excluded.exercise_count,
			saved_at = excluded.saved_at`,
		id, w.Name, workout.NameKey(w.Name), w.Text, w.ExerciseCount, w.SavedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("saving workout %q: %w", w.Name, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row scanner) (SavedWorkout, error) {
	var (
		w       SavedWorkout
		savedAt int64
	)
	if err := row.Scan(&w.ID, &w.Name, &w.Text, &w.ExerciseCount, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SavedWorkout{}, err
		}
		return SavedWorkout{}, fmt.Errorf("scanning workout: %w", err)
	}
	w.SavedAt = time.UnixMilli(savedAt)
	return w, nil
}
