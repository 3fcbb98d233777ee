// Package output provides rendering for CLI command output.
//
// The renderer adapts to its environment: styled text on a terminal,
// plain text when piped, and machine-readable JSON on request.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode is the requested output mode.
type Mode string

// Output modes.
const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Styles holds the lipgloss styles used by commands.
type Styles struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	RuleID   lipgloss.Style
	FilePath lipgloss.Style
}

func newStyles(styled bool) *Styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Error:    plain,
			Warning:  plain,
			Success:  plain,
			Bold:     plain,
			Muted:    plain,
			RuleID:   plain,
			FilePath: plain,
		}
	}
	return &Styles{
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Bold:     lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		RuleID:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		FilePath: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// Renderer writes command output in the effective mode.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer. ModeAuto resolves to styled text on a
// terminal and plain text otherwise.
func NewRenderer(stdout, stderr io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeJSON, ModeAuto:
	default:
		mode = ModeAuto
	}

	styled := false
	if mode != ModeJSON {
		if f, ok := stdout.(*os.File); ok {
			styled = termenv.NewOutput(f).ColorProfile() != termenv.Ascii && isTerminal(f)
		}
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		mode:   mode,
		styles: newStyles(styled),
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// EffectiveMode resolves ModeAuto to a concrete mode.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Styles returns the active style set.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Println writes a line to stdout.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.stdout, s)
}

// Printf writes formatted output to stdout.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.stdout, format, args...)
}

// Success writes a success line to stdout.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render("✓ " + msg))
}

// Errorf writes a formatted error line to stderr.
func (r *Renderer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.stderr, format, args...)
}

// JSON writes v to stdout as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
