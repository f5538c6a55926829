package errors

import (
	"fmt"
	"strings"
)

// Level is the severity of a Diagnostic.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelHint
)

var levelNames = []string{"error", "warn", "info", "hint"}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// MarshalText encodes the level by name, so JSON and YAML output read
// "error" and "warn" rather than numbers.
func (l Level) MarshalText() ([]byte, error) {
	if l < 0 || int(l) >= len(levelNames) {
		return nil, fmt.Errorf("invalid diagnostic level: %d", int(l))
	}
	return []byte(levelNames[l]), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range levelNames {
		if n == name {
			*l = Level(i)
			return nil
		}
	}
	return fmt.Errorf("invalid diagnostic level: %q", name)
}

// Diagnostic is a leveled message with a resolved position, the form in
// which errors and warnings leave the front end.
type Diagnostic struct {
	Level   Level  `json:"level" yaml:"level"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Length  int    `json:"length" yaml:"length"`
	Message string `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Level, d.Message)
}

// DiagnosticFromError converts a fatal error into an error level diagnostic.
func DiagnosticFromError(err *Error) Diagnostic {
	return Diagnostic{
		Level:   LevelError,
		Line:    err.Context.Line,
		Column:  err.Context.ColumnStart,
		Length:  err.Length(),
		Message: err.Description(),
	}
}

// DiagnosticFromWarning converts a lint warning into a warn level diagnostic.
func DiagnosticFromWarning(w *Warning) Diagnostic {
	return Diagnostic{
		Level:   LevelWarn,
		Line:    w.Context.Line,
		Column:  w.Context.ColumnStart,
		Length:  w.Length(),
		Message: w.Description(),
	}
}
