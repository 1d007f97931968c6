package logging

import (
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// DefaultLogger writes one line per record through Go's standard log
// package. Warnings and errors are colored when the writer is a terminal.
type DefaultLogger struct {
	logger    *log.Logger
	level     Level
	fields    Fields
	styles    map[Level]lipgloss.Style
	useColors bool
}

// NewDefaultLogger creates a logger on stderr, keeping stdout free for
// command output.
func NewDefaultLogger() *DefaultLogger {
	return newDefaultLogger(os.Stderr)
}

func newDefaultLogger(w io.Writer) *DefaultLogger {
	r := lipgloss.NewRenderer(w)
	return &DefaultLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  InfoLevel,
		fields: make(Fields),
		styles: map[Level]lipgloss.Style{
			WarnLevel:  r.NewStyle().Foreground(lipgloss.Color("3")),
			ErrorLevel: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		},
		useColors: isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetFlags changes the standard log flags, for example to drop timestamps.
func (d *DefaultLogger) SetFlags(flags int) {
	d.logger.SetFlags(flags)
}

func (d *DefaultLogger) formatMessage(level Level, err error, msg string, fields ...Fields) string {
	allFields := make(Fields)
	maps.Copy(allFields, d.fields)
	for _, f := range fields {
		maps.Copy(allFields, f)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level.String(), msg)
	if err != nil {
		fmt.Fprintf(&b, ": %v", err)
	}

	// Sorted keys keep the output stable.
	for _, k := range slices.Sorted(maps.Keys(allFields)) {
		fmt.Fprintf(&b, " %s=%v", k, allFields[k])
	}

	if style, ok := d.styles[level]; ok && d.useColors {
		return style.Render(b.String())
	}
	return b.String()
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields ...Fields) {
	if level < d.level {
		return
	}
	d.logger.Println(d.formatMessage(level, err, msg, fields...))
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(DebugLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(InfoLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(WarnLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields...)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	newFields := make(Fields)
	maps.Copy(newFields, d.fields)
	maps.Copy(newFields, fields)

	return &DefaultLogger{
		logger:    d.logger,
		level:     d.level,
		fields:    newFields,
		styles:    d.styles,
		useColors: d.useColors,
	}
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.level = level
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (n *NoOpLogger) Info(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) WithFields(fields Fields) Logger               { return n }
func (n *NoOpLogger) SetLevel(level Level)                          {}
