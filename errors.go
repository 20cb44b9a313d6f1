package openhours

import (
	"errors"
	"fmt"
)

var (
	// ErrLexical is matched by every *LexicalError.
	ErrLexical = errors.New("opening hours contain an unknown token")
	// ErrStructural is matched by every *StructuralError.
	ErrStructural = errors.New("opening hours are not well formed")
	// ErrRangeSkip is matched by every *RangeSkipError.
	ErrRangeSkip = errors.New("time range skipped")
)

// LexicalError reports a token outside the opening-hours vocabulary.
type LexicalError struct {
	Token  string
	Offset int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("invalid token %q at offset %d", e.Token, e.Offset)
}

func (e *LexicalError) Is(target error) bool {
	return target == ErrLexical
}

// StructuralError reports lexically valid text whose segments do not resolve
// to a consistent day/time assignment.
type StructuralError struct {
	Segment string
	Reason  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("cannot parse segment %q: %s", e.Segment, e.Reason)
}

func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}

// RangeSkipError is a single malformed time range inside a comma list.
type RangeSkipError struct {
	Range string
	Err   error
}

func (e *RangeSkipError) Error() string {
	return fmt.Sprintf("skipping time range %q: %v", e.Range, e.Err)
}

func (e *RangeSkipError) Is(target error) bool {
	return target == ErrRangeSkip
}

func (e *RangeSkipError) Unwrap() error {
	return e.Err
}
