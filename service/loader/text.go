package loader

import (
	"fmt"
	"strconv"

	"github.com/viant/parsly"

	"github.com/osimkit/osim/model/process"
)

// Token codes (start at 1 to avoid clash with parsly.EOF).
const (
	tSpace = iota + 1
	tNewline
	tComment
	tNumber
)

var (
	tokSpace   = parsly.NewToken(tSpace, "Space", spaceMatcher{})
	tokNewline = parsly.NewToken(tNewline, "Newline", newlineMatcher{})
	tokComment = parsly.NewToken(tComment, "Comment", commentMatcher{})
	tokNumber  = parsly.NewToken(tNumber, "Number", numberMatcher{})
)

// ParseText parses the legacy whitespace format: one process per line as
// `arrival burst memory priority`, with `#` comments and blank lines skipped.
// PIDs are assigned in line order, starting at 1.
func ParseText(data []byte) ([]*process.Process, error) {
	cursor := parsly.NewCursor("", data, 0)

	var entries []entry
	line := 1
	var fields []int
	closeLine := func() error {
		switch len(fields) {
		case 0:
			return nil
		case 4:
			entries = append(entries, entry{
				Arrival:  fields[0],
				Burst:    fields[1],
				Memory:   fields[2],
				Priority: fields[3],
			})
			fields = nil
			return nil
		default:
			return fmt.Errorf("line %d: expected 4 fields (arrival burst memory priority), got %d", line, len(fields))
		}
	}

	for cursor.HasMore() {
		matched := cursor.MatchAny(tokSpace, tokComment, tokNewline, tokNumber)
		switch matched.Code {
		case tSpace, tComment:
		case tNewline:
			if err := closeLine(); err != nil {
				return nil, err
			}
			line++
		case tNumber:
			value, err := strconv.Atoi(matched.Text(cursor))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			fields = append(fields, value)
		case parsly.EOF:
		default:
			return nil, fmt.Errorf("line %d: %v", line, cursor.NewError(tokNumber))
		}
		if matched.Code == parsly.EOF {
			break
		}
	}
	if err := closeLine(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("process set defines no processes")
	}
	return materialize(entries)
}

// spaceMatcher matches a run of intra-line whitespace.
type spaceMatcher struct{}

func (spaceMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		c := cursor.Input[i]
		if c != ' ' && c != '\t' && c != '\r' {
			break
		}
		matched++
	}
	return matched
}

// newlineMatcher matches a single line break.
type newlineMatcher struct{}

func (newlineMatcher) Match(cursor *parsly.Cursor) int {
	if cursor.Pos < cursor.InputSize && cursor.Input[cursor.Pos] == '\n' {
		return 1
	}
	return 0
}

// commentMatcher matches `#` up to (not including) the line break.
type commentMatcher struct{}

func (commentMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= cursor.InputSize || input[pos] != '#' {
		return 0
	}
	matched := 1
	for i := pos + 1; i < cursor.InputSize && input[i] != '\n'; i++ {
		matched++
	}
	return matched
}

// numberMatcher matches an optionally signed integer.
type numberMatcher struct{}

func (numberMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	matched := 0
	if pos < size && input[pos] == '-' {
		matched++
		pos++
	}
	digits := 0
	for i := pos; i < size && input[i] >= '0' && input[i] <= '9'; i++ {
		digits++
	}
	if digits == 0 {
		return 0
	}
	return matched + digits
}
