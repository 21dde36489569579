package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Settc/liftscript/internal/share"
)

var _ share.Repository = (*DB)(nil)

// InsertShare stores w under code. It returns share.ErrCodeTaken when the code exists.
func (s *DB) InsertShare(ctx context.Context, code string, w share.Workout) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO shares (code, name, body, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (code) DO NOTHING`,
		code, w.Name, w.Text, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("inserting share: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("inserting share: %w", err)
	}
	if n == 0 {
		return share.ErrCodeTaken
	}
	return nil
}

// FindShare returns the workout stored under code, or share.ErrNotFound.
func (s *DB) FindShare(ctx context.Context, code string) (share.Workout, error) {
	var w share.Workout
	err := s.db.QueryRowContext(ctx, `SELECT name, body FROM shares WHERE code = ?`, code).Scan(&w.Name, &w.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return share.Workout{}, share.ErrNotFound
	}
	if err != nil {
		return share.Workout{}, fmt.Errorf("finding share: %w", err)
	}
	return w, nil
}
