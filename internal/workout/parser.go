package workout

// UnnamedExercise names the exercise created for set lines that appear before any header.
const UnnamedExercise = "Unnamed"

// Parse builds a Document from raw workout text. It never fails: lines that
// match no set grammar become exercise headers.
func Parse(text string) Document {
	var state scanState
	for _, raw := range splitLines(text) {
		state = state.apply(ClassifyLine(raw))
	}
	return state.document()
}

// scanState is the accumulator threaded through the lines of a document.
// exercises holds the closed exercises. current is meaningful only while open
// is set, and its last entry is held in pending until another entry or the
// end of the exercise arrives, so a trailing comment can still reach it.
//
// apply never changes what the receiver reports. Successor states append to
// the receiver's backing arrays, so only the newest state should be extended.
type scanState struct {
	exercises  []Exercise
	current    Exercise
	pending    Entry
	hasPending bool
	open       bool
}

// apply folds one classified line into the state and returns the next state.
func (s scanState) apply(line Line) scanState {
	switch line.Kind {
	case LineBlank:
		return s.close()
	case LineEmpty:
		return s
	case LineComment:
		switch {
		case !s.open:
		case s.hasPending:
			s.pending.Note = joinNote(s.pending.Note, line.Note)
		default:
			s.current.Note = joinNote(s.current.Note, line.Note)
		}
		return s
	}

	if entry, ok := parseEntry(line); ok {
		if !s.open {
			s = s.push(Exercise{Name: UnnamedExercise})
		}
		s = s.flush()
		s.pending, s.hasPending = entry, true
		return s
	}

	name, rest := HeaderName(line.Content)
	return s.push(Exercise{Name: name, Note: line.Note, RestSeconds: rest})
}

// push closes the current exercise and opens ex.
func (s scanState) push(ex Exercise) scanState {
	s = s.close()
	s.current, s.open = ex, true
	return s
}

// close moves the current exercise, if any, into exercises.
func (s scanState) close() scanState {
	if !s.open {
		return s
	}
	s = s.flush()
	s.exercises = append(s.exercises, s.current)
	s.current, s.open = Exercise{}, false
	return s
}

func (s scanState) flush() scanState {
	if s.hasPending {
		s.current.Entries = append(s.current.Entries, s.pending)
		s.pending, s.hasPending = Entry{}, false
	}
	return s
}

// document returns the exercises seen so far, including the open one, in
// freshly allocated slices.
func (s scanState) document() Document {
	exercises := make([]Exercise, len(s.exercises), len(s.exercises)+1)
	copy(exercises, s.exercises)
	if s.open {
		ex := s.current
		ex.Entries = append([]Entry(nil), ex.Entries...)
		if s.hasPending {
			ex.Entries = append(ex.Entries, s.pending)
		}
		exercises = append(exercises, ex)
	}
	if len(exercises) == 0 {
		return Document{}
	}
	return Document{Exercises: exercises}
}

// parseEntry tries the strength grammar, then the cardio grammar.
func parseEntry(line Line) (Entry, bool) {
	if sets, ok := ParseSetLine(line.Content); ok {
		return Entry{Sets: sets, Note: line.Note}, true
	}
	if cardio, ok := ParseCardioLine(line.Content); ok {
		return Entry{Cardio: cardio, Note: line.Note}, true
	}
	return Entry{}, false
}
