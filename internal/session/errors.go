package session

import "errors"

// ErrEmptySession is returned when a workout has no steps to run.
var ErrEmptySession = errors.New("no exercises with recorded sets")
