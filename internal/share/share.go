package share

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	// CodeLength is the number of symbols in a share code.
	CodeLength = 6
	// Alphabet omits I, O, 0 and 1.
	Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// DefaultName is used when a workout is shared without a name.
	DefaultName = "Shared Workout"

	publishAttempts = 3
)

var (
	// ErrNotFound is returned when no workout is stored under a code.
	ErrNotFound = errors.New("share code not found")
	// ErrCodeTaken is returned by a Repository when a code is already in use.
	ErrCodeTaken = errors.New("share code already taken")
	// ErrInvalidCode is returned for codes that cannot have been issued.
	ErrInvalidCode = errors.New("invalid share code")
)

// Workout is the payload exchanged under a share code.
type Workout struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Exchange publishes workouts under short codes and resolves them again.
type Exchange interface {
	Publish(ctx context.Context, w Workout) (string, error)
	Resolve(ctx context.Context, code string) (Workout, error)
}

// Repository stores shared workouts by code.
type Repository interface {
	// InsertShare must return ErrCodeTaken when code exists.
	InsertShare(ctx context.Context, code string, w Workout) error
	// FindShare must return ErrNotFound when code does not exist.
	FindShare(ctx context.Context, code string) (Workout, error)
}

// NewCode draws a code from r, which should be a cryptographic source.
func NewCode(r io.Reader) (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("generate share code: %w", err)
	}
	for i, b := range buf {
		// len(Alphabet) is 32, so the modulo is unbiased.
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(buf), nil
}

// NormalizeCode trims and upper-cases code and checks it against the alphabet.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != CodeLength {
		return "", ErrInvalidCode
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(Alphabet, code[i]) < 0 {
			return "", ErrInvalidCode
		}
	}
	return code, nil
}

// Service implements Exchange over a Repository.
type Service struct {
	repo   Repository
	log    *slog.Logger
	random io.Reader
}

var _ Exchange = (*Service)(nil)

// NewService returns a Service drawing codes from crypto/rand.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log, random: rand.Reader}
}

// Publish stores w under a fresh code, retrying when a code collides.
func (s *Service) Publish(ctx context.Context, w Workout) (string, error) {
	w.Name = strings.TrimSpace(w.Name)
	if w.Name == "" {
		w.Name = DefaultName
	}

	for attempt := 1; attempt <= publishAttempts; attempt++ {
		code, err := NewCode(s.random)
		if err != nil {
			return "", err
		}
		err = s.repo.InsertShare(ctx, code, w)
		if err == nil {
			s.log.Info("workout shared", "code", code, "name", w.Name)
			return code, nil
		}
		if !errors.Is(err, ErrCodeTaken) {
			return "", fmt.Errorf("publish workout: %w", err)
		}
		s.log.Debug("share code collision", "code", code, "attempt", attempt)
	}
	return "", fmt.Errorf("publish workout: %w", ErrCodeTaken)
}

// Resolve returns the workout stored under code.
func (s *Service) Resolve(ctx context.Context, code string) (Workout, error) {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return Workout{}, err
	}
	w, err := s.repo.FindShare(ctx, normalized)
	if err != nil {
		return Workout{}, err
	}
	return w, nil
}
