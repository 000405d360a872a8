package primitives

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ParseError describes input that does not follow a puzzle's grammar.
type ParseError struct {
	// Line is 1-based; 0 means the error concerns the input as a whole.
	Line   int
	Text   string
	Reason string
	Err    error
}

func NewParseError(line int, text, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Text: text, Reason: fmt.Sprintf(format, args...)}
}

// WrapParseError attributes err to the given input line.
func WrapParseError(line int, text string, err error) *ParseError {
	return &ParseError{Line: line, Text: text, Reason: err.Error(), Err: err}
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "parse: " + e.Reason
	}
	return fmt.Sprintf("parse: line %d %q: %s", e.Line, e.Text, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Int parses a single decimal integer of type T, rejecting values that do
// not fit.
func Int[T constraints.Integer](s string) (T, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	t := T(v)
	if int64(t) != v || (v < 0) != (t < 0) {
		return 0, fmt.Errorf("number %d out of range", v)
	}
	return t, nil
}

// Ints parses whitespace-separated decimal integers.
func Ints[T constraints.Integer](s string) ([]T, error) {
	fields := strings.Fields(s)
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := Int[T](f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Block is a run of consecutive non-blank lines.
type Block struct {
	// Start is the 0-based index of the first line of the block in the input.
	Start int
	Lines []string
}

// Blocks splits lines on blank lines. Runs of several blank lines count as one
// separator.
func Blocks(lines []string) []Block {
	var blocks []Block
	var cur *Block
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			cur = nil
			continue
		}
		if cur == nil {
			blocks = append(blocks, Block{Start: i})
			cur = &blocks[len(blocks)-1]
		}
		cur.Lines = append(cur.Lines, line)
	}
	return blocks
}
