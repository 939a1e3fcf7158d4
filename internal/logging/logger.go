// Package logging provides leveled loggers writing "LEVEL: [component] msg"
// lines to stderr and, optionally, to a size-rotated log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Options configure a Logger.
type Options struct {
	Level      Level
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Logger writes leveled messages. The zero value is not usable; use New.
type Logger struct {
	mu     sync.Mutex
	level  Level
	debug  *log.Logger
	info   *log.Logger
	warn   *log.Logger
	err    *log.Logger
	closer io.Closer
}

// New builds a logger writing to w, plus a rotating file when opts.File is set.
func New(w io.Writer, opts Options) *Logger {
	l := &Logger{level: opts.Level}
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		l.closer = rotator
		w = io.MultiWriter(w, rotator)
	}
	flags := log.Ldate | log.Ltime
	l.debug = log.New(w, "DEBUG: ", flags)
	l.info = log.New(w, "INFO: ", flags)
	l.warn = log.New(w, "WARNING: ", flags)
	l.err = log.New(w, "ERROR: ", flags)
	return l
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, Options{Level: LevelError + 1})
}

func (l *Logger) logf(level Level, out *log.Logger, component, format string, v ...any) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out.Printf("[%s] %s", component, fmt.Sprintf(format, v...))
}

// Debugf logs at debug level.
func (l *Logger) Debugf(component, format string, v ...any) {
	l.logf(LevelDebug, l.debug, component, format, v...)
}

// Infof logs at info level.
func (l *Logger) Infof(component, format string, v ...any) {
	l.logf(LevelInfo, l.info, component, format, v...)
}

// Warnf logs at warning level.
func (l *Logger) Warnf(component, format string, v ...any) {
	l.logf(LevelWarn, l.warn, component, format, v...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(component, format string, v ...any) {
	l.logf(LevelError, l.err, component, format, v...)
}

// Close flushes and closes the rotating file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

var (
	stdMu sync.RWMutex
	std   = New(os.Stderr, Options{Level: LevelWarn})
)

// Setup replaces the package logger and returns it.
func Setup(opts Options) *Logger {
	l := New(os.Stderr, opts)
	stdMu.Lock()
	std = l
	stdMu.Unlock()
	return l
}

// SetDefault installs l as the package logger.
func SetDefault(l *Logger) {
	stdMu.Lock()
	std = l
	stdMu.Unlock()
}

// Default returns the package logger.
func Default() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// LevelFor maps the quiet/verbose flags onto a level.
func LevelFor(quiet, verbose bool) Level {
	switch {
	case verbose:
		return LevelDebug
	case quiet:
		return LevelError
	default:
		return LevelInfo
	}
}

func Debugf(component, format string, v ...any) { Default().Debugf(component, format, v...) }

func Infof(component, format string, v ...any) { Default().Infof(component, format, v...) }

func Warnf(component, format string, v ...any) { Default().Warnf(component, format, v...) }

func Errorf(component, format string, v ...any) { Default().Errorf(component, format, v...) }
