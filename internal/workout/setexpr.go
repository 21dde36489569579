package workout

import (
	"strconv"
	"strings"
)

// setRule is one notation of the set grammar. Rules run on a fresh scanner and
// must consume the whole segment.
type setRule struct {
	name  string
	match func(sc *scanner) (Set, bool)
}

// setRules are tried in order; the three-token bodyweight form precedes the
// two-token ones so "10xBWx3" is never read as "10xBW" plus garbage.
var setRules = []setRule{
	{name: "reps x BW x sets", match: matchBodyweightSets},
	{name: "reps BW", match: matchBodyweightBare},
	{name: "reps x BW", match: matchBodyweightTimes},
	{name: "reps x weight x sets", match: matchWeightSets},
	{name: "reps x weight", match: matchWeight},
}

// ParseSet parses one set expression such as "5*135*3", "8x135 r45" or "20BW".
// ok is false when the segment is not a set expression.
func ParseSet(segment string) (Set, bool) {
	cleaned, rest := ExtractRest(strings.TrimSpace(segment))
	upper := strings.ToUpper(cleaned)
	for _, rule := range setRules {
		sc := &scanner{src: upper}
		set, ok := rule.match(sc)
		if !ok || !sc.done() {
			continue
		}
		set.RestSeconds = rest
		return set, true
	}
	return Set{}, false
}

// ParseSetLine parses set content: either one set expression or a comma list
// in which every segment must parse. ok is false otherwise.
func ParseSetLine(content string) ([]Set, bool) {
	if !strings.Contains(content, ",") {
		set, ok := ParseSet(content)
		if !ok {
			return nil, false
		}
		return []Set{set}, true
	}

	segments := strings.Split(content, ",")
	sets := make([]Set, 0, len(segments))
	for _, segment := range segments {
		set, ok := ParseSet(segment)
		if !ok {
			return nil, false
		}
		sets = append(sets, set)
	}
	return sets, true
}

// ExtractRest strips a trailing whitespace-separated "r<seconds>" token.
// seconds is 0 when no suffix is present.
func ExtractRest(text string) (string, int) {
	end := len(text)
	for end > 0 && isSpace(text[end-1]) {
		end--
	}
	digits := end
	for digits > 0 && isDigit(text[digits-1]) {
		digits--
	}
	if digits == end || digits == 0 {
		return text, 0
	}
	marker := digits - 1
	if text[marker] != 'r' && text[marker] != 'R' {
		return text, 0
	}
	if marker == 0 || !isSpace(text[marker-1]) {
		return text, 0
	}
	seconds, err := strconv.Atoi(text[digits:end])
	if err != nil {
		return text, 0
	}
	return strings.TrimSpace(text[:marker]), seconds
}

func matchBodyweightSets(sc *scanner) (Set, bool) {
	reps, ok := sc.integer()
	if !ok || !sc.times() || !sc.bodyweight() || !sc.times() {
		return Set{}, false
	}
	count, ok := sc.count()
	if !ok {
		return Set{}, false
	}
	return Set{Reps: reps, Weight: Bodyweight, Count: count}, true
}

func matchBodyweightBare(sc *scanner) (Set, bool) {
	reps, ok := sc.integer()
	if !ok || !sc.bodyweight() {
		return Set{}, false
	}
	return Set{Reps: reps, Weight: Bodyweight, Count: 1}, true
}

func matchBodyweightTimes(sc *scanner) (Set, bool) {
	reps, ok := sc.integer()
	if !ok || !sc.times() || !sc.bodyweight() {
		return Set{}, false
	}
	return Set{Reps: reps, Weight: Bodyweight, Count: 1}, true
}

func matchWeightSets(sc *scanner) (Set, bool) {
	reps, ok := sc.integer()
	if !ok || !sc.times() {
		return Set{}, false
	}
	weight, ok := sc.number()
	if !ok || !sc.times() {
		return Set{}, false
	}
	count, ok := sc.count()
	if !ok {
		return Set{}, false
	}
	return Set{Reps: reps, Weight: Load(weight), Count: count}, true
}

func matchWeight(sc *scanner) (Set, bool) {
	reps, ok := sc.integer()
	if !ok || !sc.times() {
		return Set{}, false
	}
	weight, ok := sc.number()
	if !ok {
		return Set{}, false
	}
	return Set{Reps: reps, Weight: Load(weight), Count: 1}, true
}

// scanner walks an upper-cased segment. Whitespace is allowed between tokens.
type scanner struct {
	src string
	pos int
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.src) && isSpace(sc.src[sc.pos]) {
		sc.pos++
	}
}

func (sc *scanner) done() bool {
	sc.skipSpace()
	return sc.pos == len(sc.src)
}

func (sc *scanner) digits() string {
	sc.skipSpace()
	start := sc.pos
	for sc.pos < len(sc.src) && isDigit(sc.src[sc.pos]) {
		sc.pos++
	}
	return sc.src[start:sc.pos]
}

func (sc *scanner) integer() (int, bool) {
	text := sc.digits()
	if text == "" {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}

// count reads a repeat count, which must be at least 1.
func (sc *scanner) count() (int, bool) {
	n, ok := sc.integer()
	if !ok || n < 1 {
		return 0, false
	}
	return n, true
}

// number reads digits with an optional fractional part ("135", "137.5").
func (sc *scanner) number() (float64, bool) {
	whole := sc.digits()
	if whole == "" {
		return 0, false
	}
	text := whole
	if sc.pos < len(sc.src) && sc.src[sc.pos] == '.' {
		frac := sc.pos + 1
		end := frac
		for end < len(sc.src) && isDigit(sc.src[end]) {
			end++
		}
		if end == frac {
			return 0, false
		}
		text = sc.src[sc.pos-len(whole) : end]
		sc.pos = end
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (sc *scanner) times() bool {
	sc.skipSpace()
	if sc.pos < len(sc.src) && (sc.src[sc.pos] == 'X' || sc.src[sc.pos] == '*') {
		sc.pos++
		return true
	}
	return false
}

func (sc *scanner) bodyweight() bool {
	sc.skipSpace()
	if strings.HasPrefix(sc.src[sc.pos:], "BW") {
		sc.pos += 2
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\v' || b == '\f'
}
