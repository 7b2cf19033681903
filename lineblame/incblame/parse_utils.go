package incblame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseError is returned when blame output does not follow the incremental format.
type ParseError struct {
	// Line is 1-based line number in the output.
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid incremental blame output, line %v %q: %v", e.Line, e.Text, e.Msg)
}

// IsParseError checks if err (or its cause) is a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

type headerLine struct {
	commit  string
	newLine int
	count   int
}

// parseHeader parses hunk header in the following format.
// <commit> <orig-line> <new-line> <line-count>
func parseHeader(l string) (res headerLine, _ error) {
	parts := strings.Fields(l)
	if len(parts) != 4 {
		return res, errors.Errorf("header needs 4 fields, got %v", len(parts))
	}
	res.commit = parts[0]
	var err error
	res.newLine, err = strconv.Atoi(parts[2])
	if err != nil {
		return res, errors.Errorf("new line number is not an integer: %v", parts[2])
	}
	res.count, err = strconv.Atoi(parts[3])
	if err != nil {
		return res, errors.Errorf("line count is not an integer: %v", parts[3])
	}
	return
}

// splitMeta splits metadata line on the first space. Value is empty for lines without space, i.e. boundary.
func splitMeta(l string) (key, value string) {
	i := strings.IndexByte(l, ' ')
	if i == -1 {
		return l, ""
	}
	return l[:i], l[i+1:]
}
