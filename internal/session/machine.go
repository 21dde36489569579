package session

import (
	"strconv"
	"strings"

	"github.com/Settc/liftscript/internal/workout"
)

// Phase is the state of a running session.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseRest
	PhaseConfirm
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseRest:
		return "rest"
	case PhaseConfirm:
		return "confirm"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Outcome reports how a finished session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCompleted
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// EventKind enumerates the inputs a session accepts.
type EventKind int

const (
	EventSubmit EventKind = iota
	EventTick
	EventSkipRest
	EventEndRequest
	EventConfirmSave
	EventConfirmDiscard
	EventConfirmBack
)

// Event is one input to Transition. Input is only read by EventSubmit.
type Event struct {
	Kind  EventKind
	Input string
}

// Submit records the typed reps/weight for the current step.
func Submit(input string) Event { return Event{Kind: EventSubmit, Input: input} }

// Tick advances a rest countdown by one second.
func Tick() Event { return Event{Kind: EventTick} }

// State is an immutable snapshot of a session. Cursor indexes the step
// awaiting input; during rest it already points at the next step.
type State struct {
	Steps     []Step
	Cursor    int
	Phase     Phase
	Remaining int
	Results   []workout.Result
	Outcome   Outcome
}

// Start begins a session over steps.
func Start(steps []Step) (State, error) {
	if len(steps) == 0 {
		return State{}, ErrEmptySession
	}
	return State{Steps: steps, Phase: PhaseInput}, nil
}

// Transition returns the state after ev. Events that do not apply to the
// current phase leave the state unchanged.
func Transition(s State, ev Event) State {
	switch s.Phase {
	case PhaseInput:
		switch ev.Kind {
		case EventSubmit:
			return s.submit(ev.Input)
		case EventEndRequest:
			s.Phase = PhaseConfirm
		}
	case PhaseRest:
		switch ev.Kind {
		case EventTick:
			s.Remaining--
			if s.Remaining <= 0 {
				s.Remaining = 0
				s.Phase = PhaseInput
			}
		case EventSkipRest:
			s.Remaining = 0
			s.Phase = PhaseInput
		case EventEndRequest:
			s.Phase = PhaseConfirm
		}
	case PhaseConfirm:
		switch ev.Kind {
		case EventConfirmSave:
			s.Phase = PhaseDone
			s.Outcome = OutcomeCompleted
			if len(s.Results) == 0 {
				s.Outcome = OutcomeCancelled
			}
		case EventConfirmDiscard:
			s.Phase = PhaseDone
			s.Outcome = OutcomeCancelled
		case EventConfirmBack:
			s.Phase = PhaseInput
			if s.Remaining > 0 {
				s.Phase = PhaseRest
			}
		}
	}
	return s
}

func (s State) submit(input string) State {
	step, ok := s.Current()
	if !ok {
		return s
	}
	if strings.TrimSpace(input) == "" {
		input = s.Prefill()
	}

	result := workout.Result{Exercise: step.Exercise}
	if set, ok := workout.ParseSet(input); ok {
		result.Reps, result.Weight = set.Reps, set.Weight
	} else {
		result.Reps, result.Weight = leadingInt(input), workout.Bodyweight
	}

	results := make([]workout.Result, len(s.Results), len(s.Results)+1)
	copy(results, s.Results)
	s.Results = append(results, result)
	s.Cursor++

	switch {
	case s.Cursor >= len(s.Steps):
		s.Phase = PhaseDone
		s.Outcome = OutcomeCompleted
	case step.RestSeconds > 0:
		s.Phase = PhaseRest
		s.Remaining = step.RestSeconds
	}
	return s
}

// Current returns the step awaiting input.
func (s State) Current() (Step, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Steps) {
		return Step{}, false
	}
	return s.Steps[s.Cursor], true
}

// Prefill renders the suggested input for the current step: the latest result
// recorded for the same exercise, else the planned reps and weight.
func (s State) Prefill() string {
	step, ok := s.Current()
	if !ok {
		return ""
	}
	reps, weight := step.SuggestedReps, step.SuggestedWeight
	key := workout.NameKey(step.Exercise)
	for i := len(s.Results) - 1; i >= 0; i-- {
		if workout.NameKey(s.Results[i].Exercise) == key {
			reps, weight = s.Results[i].Reps, s.Results[i].Weight
			break
		}
	}
	return strconv.Itoa(reps) + "*" + weight.String()
}

// ExerciseProgress returns the 1-based position of the current step among all
// steps of its exercise, and their count. Same-named exercises that are not
// adjacent in the text count together.
func (s State) ExerciseProgress() (int, int) {
	step, ok := s.Current()
	if !ok {
		return 0, 0
	}
	pos, total := 0, 0
	for i, other := range s.Steps {
		if other.Exercise != step.Exercise {
			continue
		}
		total++
		if i <= s.Cursor {
			pos++
		}
	}
	return pos, total
}

// Finished reports whether the session reached its terminal phase.
func (s State) Finished() bool {
	return s.Phase == PhaseDone
}

func leadingInt(input string) int {
	input = strings.TrimSpace(input)
	end := 0
	for end < len(input) && input[end] >= '0' && input[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(input[:end])
	if err != nil {
		return 0
	}
	return n
}
