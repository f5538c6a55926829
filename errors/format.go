package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats errors and warnings with colors in a Rust-like style.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

// Colors used for error formatting. Color output is forced on these, and the
// Formatter decides per call whether to apply them.
var (
	colorError     = forced(color.FgRed)
	colorErrorBold = forced(color.FgHiRed, color.Bold)
	colorWarning   = forced(color.FgHiYellow, color.Bold)
	colorCode      = forced(color.FgHiBlack)
	colorLocation  = forced(color.FgCyan)
	colorLineNum   = forced(color.FgHiBlack)
	colorSource    = forced(color.FgWhite)
	colorCaret     = forced(color.FgHiRed)
	colorHint      = forced(color.FgHiYellow)
	colorNote      = forced(color.FgHiBlue)
)

func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// FormattedError represents an error or warning ready for display.
type FormattedError struct {
	Code        ErrorCode
	Kind        string // "parse error", "syntax error", "warning"
	Message     string
	Filename    string
	Line        int
	Column      int
	EndColumn   int // For multi-character underlines
	SourceLines []SourceLineEntry
	Hint        string // "Did you mean?" suggestion
	Note        string // Additional context
}

// SourceLineEntry represents a line of source code with its number.
type SourceLineEntry struct {
	Number int
	Text   string
	IsMain bool // True if this is the line with the error
}

func (e *FormattedError) isWarning() bool {
	return e.Kind == "warning"
}

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.UseColor {
		return s
	}
	return c.Sprint(s)
}

// Format formats the error as a string.
func (f *Formatter) Format(err *FormattedError) string {
	return f.FormatWithPrefix(err, "")
}

// FormatWithPrefix formats the error with an optional prefix like "1/5",
// shown in place of the code when the error has none.
func (f *Formatter) FormatWithPrefix(err *FormattedError, prefix string) string {
	var b strings.Builder

	lineNumWidth := 2
	if err.Line >= 100 {
		lineNumWidth = len(fmt.Sprintf("%d", err.Line))
	}

	// "error[E1001]: message"
	f.writeHeader(&b, err, prefix)

	// "  --> main.qb:10:5"
	f.writeLocation(&b, err, lineNumWidth)

	f.writeSource(&b, err, lineNumWidth)

	if err.Hint != "" {
		f.writeHint(&b, err.Hint, lineNumWidth)
	}
	if err.Note != "" {
		f.writeNote(&b, err.Note, lineNumWidth)
	}
	return b.String()
}

func (f *Formatter) writeHeader(b *strings.Builder, err *FormattedError, prefix string) {
	label := "error"
	if err.Kind != "" {
		label = err.Kind
	}
	if err.isWarning() {
		b.WriteString(f.paint(colorWarning, label))
	} else {
		b.WriteString(f.paint(colorErrorBold, label))
	}

	if err.Code != "" {
		b.WriteString(f.paint(colorCode, fmt.Sprintf("[%s]", err.Code)))
	} else if prefix != "" {
		b.WriteString(f.paint(colorCode, fmt.Sprintf("[%s]", prefix)))
	}

	b.WriteString(f.paint(colorError, ": "))
	b.WriteString(err.Message)
	b.WriteString("\n")
}

func (f *Formatter) writeLocation(b *strings.Builder, err *FormattedError, lineNumWidth int) {
	if err.Line == 0 && err.Filename == "" {
		return
	}
	b.WriteString(strings.Repeat(" ", lineNumWidth))
	b.WriteString(f.paint(colorLocation, "-->"))
	b.WriteString(" ")

	loc := ""
	if err.Filename != "" {
		loc = err.Filename
		if err.Line > 0 {
			loc += fmt.Sprintf(":%d:%d", err.Line, err.Column)
		}
	} else if err.Line > 0 {
		loc = fmt.Sprintf("%d:%d", err.Line, err.Column)
	}
	b.WriteString(f.paint(colorLocation, loc))
	b.WriteString("\n")
}

func (f *Formatter) writeSource(b *strings.Builder, err *FormattedError, lineNumWidth int) {
	if len(err.SourceLines) == 0 {
		return
	}
	padding := strings.Repeat(" ", lineNumWidth)

	b.WriteString(padding)
	b.WriteString(f.paint(colorLineNum, " |\n"))

	for _, line := range err.SourceLines {
		b.WriteString(f.paint(colorLineNum, fmt.Sprintf("%*d", lineNumWidth, line.Number)))
		b.WriteString(f.paint(colorLineNum, " | "))
		b.WriteString(f.paint(colorSource, line.Text))
		b.WriteString("\n")

		if !line.IsMain || err.Column <= 0 {
			continue
		}
		b.WriteString(padding)
		b.WriteString(f.paint(colorLineNum, " | "))
		b.WriteString(caretPadding(line.Text, err.Column-1))

		caretLen := 1
		if err.EndColumn > err.Column {
			caretLen = err.EndColumn - err.Column + 1
		}
		caretColor := colorCaret
		if err.isWarning() {
			caretColor = colorWarning
		}
		b.WriteString(f.paint(caretColor, strings.Repeat("^", caretLen)))
		b.WriteString("\n")
	}
}

// caretPadding returns whitespace as wide as the first n bytes of text,
// keeping tabs so the caret lines up in a terminal.
func caretPadding(text string, n int) string {
	if n > len(text) {
		n = len(text)
	}
	var b strings.Builder
	for _, r := range text[:n] {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (f *Formatter) writeHint(b *strings.Builder, hint string, lineNumWidth int) {
	padding := strings.Repeat(" ", lineNumWidth)
	b.WriteString(padding)
	b.WriteString(f.paint(colorLineNum, " |\n"))
	b.WriteString(padding)
	b.WriteString(f.paint(colorLineNum, " = "))
	b.WriteString(f.paint(colorHint, "hint: "))
	b.WriteString(hint)
	b.WriteString("\n")
}

func (f *Formatter) writeNote(b *strings.Builder, note string, lineNumWidth int) {
	b.WriteString(strings.Repeat(" ", lineNumWidth))
	b.WriteString(f.paint(colorLineNum, " = "))
	b.WriteString(f.paint(colorNote, "note: "))
	b.WriteString(note)
	b.WriteString("\n")
}

// FormatMultiple formats multiple errors with consistent styling.
func (f *Formatter) FormatMultiple(errs []*FormattedError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return f.Format(errs[0])
	}

	var b strings.Builder
	total := len(errs)
	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.FormatWithPrefix(err, fmt.Sprintf("%d/%d", i+1, total)))
	}

	b.WriteString("\n")
	b.WriteString(f.paint(colorErrorBold, fmt.Sprintf("found %d problems", total)))
	b.WriteString("\n")
	return b.String()
}
