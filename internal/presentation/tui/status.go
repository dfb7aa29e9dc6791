package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Status writes short coloured result lines.
type Status struct {
	out     *termenv.Output
	profile termenv.Profile
}

// NewStatus detects the colour profile of w. Writers that are not terminals
// get plain text.
func NewStatus(w io.Writer) *Status {
	out := termenv.NewOutput(w)
	return &Status{out: out, profile: out.Profile}
}

// OK prints a green check line.
func (s *Status) OK(format string, args ...any) {
	s.line("✔", "#22c55e", format, args...)
}

// Fail prints a red cross line.
func (s *Status) Fail(format string, args ...any) {
	s.line("✘", "#ef4444", format, args...)
}

func (s *Status) line(mark, color, format string, args ...any) {
	prefix := s.profile.String(mark).Foreground(s.profile.Color(color)).Bold()
	fmt.Fprintf(s.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
