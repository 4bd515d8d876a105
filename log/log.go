package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Verbose controls whether debug messages are being printed.
var Verbose bool

// IndentationLevel controls the amount of indentation of log messages.
var IndentationLevel = 0

// Spinner is shown while an external tool runs with its output captured.
var Spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))

var errorOccured = false

const kindField = "kind"

const (
	kindPlain   = "plain"
	kindDebug   = "debug"
	kindSuccess = "success"
	kindWarning = "warning"
	kindError   = "error"
)

var prefixes = map[string]struct{ color, label string }{
	kindDebug:   {"\033[36m", "Debug: "},
	kindSuccess: {"\033[32m", "Success: "},
	kindWarning: {"\033[33m", "Warning: "},
	kindError:   {"\033[31m", "Error: "},
}

// formatter renders entries the way the tool always printed them: indented,
// with a coloured label and the message verbatim (no trailing newline added).
type formatter struct {
	color bool
}

func (f *formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(strings.Repeat("  ", IndentationLevel))
	kind, _ := entry.Data[kindField].(string)
	if p, ok := prefixes[kind]; ok {
		if f.color {
			b.WriteString(p.color + p.label + "\033[0m")
		} else {
			b.WriteString(p.label)
		}
	}
	b.WriteString(entry.Message)
	return b.Bytes(), nil
}

var logger = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&formatter{color: isTerminal(out)})
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetOutput redirects all log messages to `w`. Colours are only used when `w` is a terminal.
func SetOutput(w io.Writer) {
	logger = newLogger(w)
}

// IsTerminal reports whether log messages end up on a terminal.
func IsTerminal() bool {
	return isTerminal(logger.Out)
}

// ErrorOccured reports whether any errors have occured.
func ErrorOccured() bool {
	return errorOccured
}

func emit(level logrus.Level, kind, format string, a ...interface{}) {
	logger.WithField(kindField, kind).Log(level, fmt.Sprintf(format, a...))
}

// Log prints an indented and formatted message to os.Stderr.
func Log(format string, a ...interface{}) {
	emit(logrus.InfoLevel, kindPlain, format, a...)
}

// Debug prints an indented and formatted debug message to os.Stderr if verbose output is selected.
func Debug(format string, a ...interface{}) {
	if Verbose {
		emit(logrus.DebugLevel, kindDebug, format, a...)
	}
}

// Success prints an indented and formatted success message to os.Stderr.
func Success(format string, a ...interface{}) {
	emit(logrus.InfoLevel, kindSuccess, format, a...)
}

// Warning prints an indented and formatted warning to os.Stderr.
func Warning(format string, a ...interface{}) {
	emit(logrus.WarnLevel, kindWarning, format, a...)
}

// Error prints an indented and formatted error message to os.Stderr.
func Error(format string, a ...interface{}) {
	errorOccured = true
	emit(logrus.ErrorLevel, kindError, format, a...)
}

// Fatal prints an indented and formatted error message to os.Stderr and terminates the program.
func Fatal(format string, a ...interface{}) {
	Error(format, a...)
	fmt.Fprintf(logger.Out, "\033[31mA fatal error occured. Exiting...\033[0m\n")
	os.Exit(1)
}
