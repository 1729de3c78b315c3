// Package log provides prefixed, colored loggers for the service
// subsystems, backed by logrus.
package log

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

// Logger writes leveled messages tagged with a subsystem prefix.
// Implements i.Logger.
type Logger struct {
	log *logrus.Logger
}

type prefixedFormatter struct {
	prefix string
	color  string
}

// Format renders entries as "[PREFIX] [LEVEL] message" with the
// subsystem color around the tags.
func (f *prefixedFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	level := strings.ToUpper(entry.Level.String())
	return []byte(fmt.Sprintf("%s[%s] [%s]%s %s\n", f.color, f.prefix, level, colorReset, entry.Message)), nil
}

// New creates a logger for one subsystem, writing to out with the given
// ANSI color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&prefixedFormatter{prefix: prefix, color: color})
	return &Logger{log: l}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.log.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.log.Error(msg)
}
