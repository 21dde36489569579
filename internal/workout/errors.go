package workout

import "errors"

// ErrExerciseNotFound is returned when no header in the text names the requested exercise.
var ErrExerciseNotFound = errors.New("exercise not found")
