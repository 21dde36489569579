package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Settc/liftscript/internal/session"
	"github.com/Settc/liftscript/internal/workout"
)

// Model owns Bubble Tea state for a guided session. All session logic lives
// in the session.Runner; the model turns keys and clock ticks into events.
type Model struct {
	runner *session.Runner
	unit   string

	input textinput.Model
	keys  keyMap
	help  help.Model

	// tickID invalidates ticks scheduled for an earlier rest period.
	tickID     int
	statusLine string
}

type tickMsg struct {
	id int
}

// NewModel wraps runner. unit labels weights ("lbs" or "kg").
func NewModel(runner *session.Runner, unit string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()

	m := Model{
		runner: runner,
		unit:   unit,
		input:  ti,
		keys:   newKeyMap(),
		help:   help.New(),
	}
	m.resetInput()
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State exposes the session snapshot.
func (m Model) State() session.State {
	return m.runner.State()
}

// Update wires session transitions from user input and the rest clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if msg.id != m.tickID || m.State().Phase != session.PhaseRest {
			return m, nil
		}
		return m.dispatch(session.Tick())
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.State().Phase != session.PhaseConfirm {
			m.runner.Dispatch(session.Event{Kind: session.EventEndRequest})
		}
		m.runner.Dispatch(session.Event{Kind: session.EventConfirmDiscard})
		return m, tea.Quit
	}

	switch m.State().Phase {
	case session.PhaseInput:
		switch {
		case key.Matches(msg, m.keys.Submit):
			value := m.input.Value()
			return m.dispatch(session.Submit(value))
		case key.Matches(msg, m.keys.End):
			return m.dispatch(session.Event{Kind: session.EventEndRequest})
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case session.PhaseRest:
		switch {
		case key.Matches(msg, m.keys.End):
			return m.dispatch(session.Event{Kind: session.EventEndRequest})
		case key.Matches(msg, m.keys.Skip):
			return m.dispatch(session.Event{Kind: session.EventSkipRest})
		}
	case session.PhaseConfirm:
		switch {
		case key.Matches(msg, m.keys.Save):
			return m.dispatch(session.Event{Kind: session.EventConfirmSave})
		case key.Matches(msg, m.keys.Discard):
			return m.dispatch(session.Event{Kind: session.EventConfirmDiscard})
		case key.Matches(msg, m.keys.Back):
			return m.dispatch(session.Event{Kind: session.EventConfirmBack})
		}
	}
	return m, nil
}

func (m Model) dispatch(ev session.Event) (tea.Model, tea.Cmd) {
	prev := m.State()
	next := m.runner.Dispatch(ev)

	if ev.Kind == session.EventSubmit && next.Cursor > prev.Cursor {
		last := next.Results[len(next.Results)-1]
		m.statusLine = fmt.Sprintf("Logged %s: %d reps @ %s", last.Exercise, last.Reps, workout.FormatWeight(last.Weight, m.unit))
	}
	if next.Cursor != prev.Cursor || next.Phase != prev.Phase {
		m.resetInput()
	}

	switch {
	case next.Finished():
		return m, tea.Quit
	case next.Phase == session.PhaseRest && prev.Phase != session.PhaseRest:
		m.tickID++
		return m, m.tick()
	case next.Phase == session.PhaseRest && ev.Kind == session.EventTick:
		return m, m.tick()
	}
	return m, nil
}

func (m Model) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// resetInput clears the field and shows the suggested set as placeholder.
// Submitting an empty field records the placeholder.
func (m *Model) resetInput() {
	m.input.Reset()
	m.input.Placeholder = m.State().Prefill()
}

// View renders the current phase.
func (m Model) View() string {
	state := m.State()
	var b strings.Builder

	switch state.Phase {
	case session.PhaseInput:
		step, _ := state.Current()
		pos, total := state.ExerciseProgress()
		b.WriteString(TitleStyle.Render(step.Exercise))
		b.WriteString(MutedStyle.Render(fmt.Sprintf("  set %d of %d", pos, total)))
		b.WriteString("\n")
		planned := workout.Set{Reps: step.SuggestedReps, Weight: step.SuggestedWeight, Count: 1}
		b.WriteString(NormalStyle.Render("Planned: " + workout.FormatSet(planned, m.unit)))
		if rest := workout.FormatRest(step.RestSeconds); rest != "" {
			b.WriteString(MutedStyle.Render(" · " + rest))
		}
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render("reps*weight, or reps for bodyweight"))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(phaseKeys{m.keys.Submit, m.keys.End, m.keys.Quit}))
	case session.PhaseRest:
		b.WriteString(TimerStyle.Render("Rest " + workout.FormatTimer(state.Remaining)))
		b.WriteString("\n")
		if step, ok := state.Current(); ok {
			next := workout.Set{Reps: step.SuggestedReps, Weight: step.SuggestedWeight, Count: 1}
			b.WriteString(MutedStyle.Render("Next: " + step.Exercise + " · " + workout.FormatSet(next, m.unit)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.help.View(phaseKeys{m.keys.Skip, m.keys.End, m.keys.Quit}))
	case session.PhaseConfirm:
		b.WriteString(TitleStyle.Render("End session?"))
		b.WriteString("\n")
		if n := len(state.Results); n > 0 {
			b.WriteString(NormalStyle.Render(fmt.Sprintf("%d sets logged.", n)))
		} else {
			b.WriteString(MutedStyle.Render("No sets logged yet; saving ends without changes."))
		}
		b.WriteString("\n\n")
		b.WriteString(m.help.View(phaseKeys{m.keys.Save, m.keys.Discard, m.keys.Back}))
	case session.PhaseDone:
		if state.Outcome == session.OutcomeCompleted {
			b.WriteString(TitleStyle.Render(fmt.Sprintf("Session complete: %d sets logged.", len(state.Results))))
		} else {
			b.WriteString(MutedStyle.Render("Session discarded."))
		}
	}

	if m.statusLine != "" && state.Phase != session.PhaseDone {
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render(m.statusLine))
	}
	b.WriteString("\n")
	return b.String()
}
