package session

import (
	"io"
	"log/slog"
	"time"

	"github.com/Settc/liftscript/internal/notify"
	"github.com/Settc/liftscript/internal/workout"
)

// FinishFunc receives the outcome of a session. Results are empty on cancel.
type FinishFunc func(outcome Outcome, results []workout.Result)

// Runner owns a session's state, schedules rest alerts and reports the outcome
// exactly once.
type Runner struct {
	state    State
	notifier notify.Notifier
	logger   *slog.Logger
	onFinish FinishFunc
	finished bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithNotifier sets the rest alert notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(r *Runner) { r.notifier = n }
}

// WithLogger sets the runner logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithFinish registers the outcome callback.
func WithFinish(fn FinishFunc) Option {
	return func(r *Runner) { r.onFinish = fn }
}

// NewRunner starts a session for doc. It returns ErrEmptySession when the
// document has nothing to run.
func NewRunner(doc workout.Document, opts ...Option) (*Runner, error) {
	state, err := Start(BuildSteps(doc))
	if err != nil {
		return nil, err
	}
	r := &Runner{
		state:    state,
		notifier: notify.Nop{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger.Info("session started", "steps", len(state.Steps))
	return r, nil
}

// State returns the current snapshot.
func (r *Runner) State() State {
	return r.state
}

// Dispatch applies ev and performs the side effects of the transition.
func (r *Runner) Dispatch(ev Event) State {
	prev := r.state
	next := Transition(prev, ev)
	r.state = next

	if prev.Phase != next.Phase {
		r.logger.Debug("session transition", "from", prev.Phase, "to", next.Phase, "cursor", next.Cursor)
	}

	switch {
	case next.Phase == PhaseRest && prev.Phase != PhaseRest:
		r.schedule(time.Duration(next.Remaining) * time.Second)
	case prev.Phase == PhaseRest && next.Phase != PhaseRest:
		r.cancel()
	}

	if next.Finished() && !r.finished {
		r.finished = true
		r.cancel()
		results := next.Results
		if next.Outcome != OutcomeCompleted {
			results = nil
		}
		r.logger.Info("session finished", "outcome", next.Outcome, "results", len(results))
		if r.onFinish != nil {
			r.onFinish(next.Outcome, results)
		}
	}
	return next
}

func (r *Runner) schedule(d time.Duration) {
	if err := r.notifier.Schedule(d); err != nil {
		r.logger.Warn("schedule rest alert", "error", err)
	}
}

func (r *Runner) cancel() {
	if err := r.notifier.Cancel(); err != nil {
		r.logger.Warn("cancel rest alert", "error", err)
	}
}
