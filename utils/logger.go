package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	infoTag  = color.New(color.FgGreen).Sprint("INFO ")
	warnTag  = color.New(color.FgYellow).Sprint("WARN ")
	errorTag = color.New(color.FgRed).Sprint("ERROR")
	debugTag = color.New(color.FgCyan).Sprint("DEBUG")
)

// Logger provides structured, leveled logging throughout the application.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	debug *log.Logger

	debugEnabled bool
}

// NewLogger creates a new Logger writing to stdout/stderr. Debug output is
// suppressed unless level is "debug".
func NewLogger(level string) *Logger {
	return newLogger(os.Stdout, os.Stderr, level)
}

// NewLoggerTo creates a Logger writing every level to w.
func NewLoggerTo(w io.Writer, level string) *Logger {
	return newLogger(w, w, level)
}

func newLogger(out, errOut io.Writer, level string) *Logger {
	flags := 0
	return &Logger{
		info:         log.New(out, "", flags),
		warn:         log.New(out, "", flags),
		err:          log.New(errOut, "", flags),
		debug:        log.New(out, "", flags),
		debugEnabled: strings.EqualFold(level, "debug"),
	}
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) line(tag, format string) string {
	return fmt.Sprintf("[%s] %s %s\n", l.timestamp(), tag, format)
}

func (l *Logger) Info(format string, args ...any) {
	l.info.Printf(l.line(infoTag, format), args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.warn.Printf(l.line(warnTag, format), args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Printf(l.line(errorTag, format), args...)
}

func (l *Logger) Debug(format string, args ...any) {
	if !l.debugEnabled {
		return
	}
	l.debug.Printf(l.line(debugTag, format), args...)
}

// DebugEnabled reports whether Debug lines are written.
func (l *Logger) DebugEnabled() bool {
	return l.debugEnabled
}
