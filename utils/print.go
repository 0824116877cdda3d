package utils

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Status prints progress lines for the command-line tools. Markers fall back
// to ASCII when the output is not a terminal.
type Status struct {
	Out   io.Writer
	Plain bool
}

// NewStatus returns a Status on stdout, plain unless stdout is a terminal.
func NewStatus() *Status {
	return &Status{
		Out:   os.Stdout,
		Plain: !term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (s *Status) marker(fancy, plain string) string {
	if s.Plain {
		return plain
	}
	return fancy
}

func (s *Status) Title(format string, a ...any) {
	fmt.Fprintf(s.Out, "%s %s\n", s.marker("🎨", "=="), fmt.Sprintf(format, a...))
}

func (s *Status) Section(format string, a ...any) {
	fmt.Fprintf(s.Out, "\n%s %s\n", s.marker("📐", "--"), fmt.Sprintf(format, a...))
}

func (s *Status) OK(format string, a ...any) {
	fmt.Fprintf(s.Out, "   %s %s\n", s.marker("✅", "[ok]"), fmt.Sprintf(format, a...))
}

func (s *Status) Warn(format string, a ...any) {
	fmt.Fprintf(s.Out, "   %s %s\n", s.marker("⚠️ ", "[!!]"), fmt.Sprintf(format, a...))
}

func (s *Status) Fail(format string, a ...any) {
	fmt.Fprintf(s.Out, "%s %s\n", s.marker("❌", "[xx]"), fmt.Sprintf(format, a...))
}

func (s *Status) Hint(format string, a ...any) {
	fmt.Fprintf(s.Out, "%s %s\n", s.marker("💡", "=>"), fmt.Sprintf(format, a...))
}

func (s *Status) Line(format string, a ...any) {
	fmt.Fprintf(s.Out, format+"\n", a...)
}
