package lint

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityWarn indicates an issue that should be reviewed but does not
	// fail the run.
	SeverityWarn Severity = iota
	// SeverityError indicates an issue that fails the run.
	SeverityError
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a severity string to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "warn", "warning":
		return SeverityWarn, true
	case "error":
		return SeverityError, true
	default:
		return SeverityWarn, false
	}
}

// MarshalJSON implements json.Marshaler.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	sev, ok := ParseSeverity(raw)
	if !ok {
		return fmt.Errorf("invalid severity %q", raw)
	}
	*s = sev
	return nil
}

// Diagnostic represents one reported rule outcome.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	// File is the path relative to the project root, slash-separated.
	File string `json:"file"`
	// Line is 1-based and best-effort; 0 means the diagnostic applies to
	// the file as a whole.
	Line int `json:"line,omitempty"`
}
