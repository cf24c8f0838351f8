package syntax

import "fmt"

// Span is a half-open byte range [Start, End) in a source text.
type Span struct {
	Start int
	End   int
}

// NewSpan creates a span from a start offset and a length
func NewSpan(start, length int) Span {
	return Span{Start: start, End: start + length}
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// Contains reports whether pos falls inside the span
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// Cover returns the smallest span enclosing both spans
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}
