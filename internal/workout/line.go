package workout

import "strings"

// LineKind classifies a raw line for the document builder.
type LineKind int

const (
	// LineBlank separates exercises.
	LineBlank LineKind = iota
	// LineComment carries only a note.
	LineComment
	// LineEmpty is a bare "//" marker with neither content nor note; it is ignored.
	LineEmpty
	// LineContent carries set data or an exercise header.
	LineContent
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineEmpty:
		return "empty"
	case LineContent:
		return "content"
	default:
		return "unknown"
	}
}

// Line is a raw line split at its first "//" marker.
type Line struct {
	Content string
	Note    string
	Kind    LineKind
}

const commentMarker = "//"

// ClassifyLine splits raw into trimmed content and note.
func ClassifyLine(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{Kind: LineBlank}
	}

	content, note := trimmed, ""
	if idx := strings.Index(trimmed, commentMarker); idx >= 0 {
		content = strings.TrimSpace(trimmed[:idx])
		note = strings.TrimSpace(trimmed[idx+len(commentMarker):])
	}

	switch {
	case content != "":
		return Line{Content: content, Note: note, Kind: LineContent}
	case note != "":
		return Line{Note: note, Kind: LineComment}
	default:
		return Line{Kind: LineEmpty}
	}
}

// HeaderName returns the exercise name a content line would declare, with the
// rest suffix removed.
func HeaderName(content string) (string, int) {
	return ExtractRest(content)
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func joinNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + " " + note
}
