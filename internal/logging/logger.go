package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Logger is the leveled logging surface handed to packages that log.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel is case-insensitive and falls back to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// StdLogger writes "[LEVEL] message" lines through a *log.Logger.
type StdLogger struct {
	level Level
	out   *log.Logger
}

func New(w io.Writer, level string) *StdLogger {
	return &StdLogger{
		level: ParseLevel(level),
		out:   log.New(w, "atomlab ", log.LstdFlags),
	}
}

func (l *StdLogger) Level() Level { return l.level }

func (l *StdLogger) logf(level Level, format string, v ...any) {
	if level < l.level {
		return
	}
	l.out.Output(3, "["+strings.ToUpper(level.String())+"] "+fmt.Sprintf(format, v...))
}

func (l *StdLogger) Debugf(format string, v ...any) { l.logf(LevelDebug, format, v...) }
func (l *StdLogger) Infof(format string, v ...any)  { l.logf(LevelInfo, format, v...) }
func (l *StdLogger) Warnf(format string, v ...any)  { l.logf(LevelWarn, format, v...) }
func (l *StdLogger) Errorf(format string, v ...any) { l.logf(LevelError, format, v...) }

// NoOp discards everything.
type NoOp struct{}

func (NoOp) Debugf(string, ...any) {}
func (NoOp) Infof(string, ...any)  {}
func (NoOp) Warnf(string, ...any)  {}
func (NoOp) Errorf(string, ...any) {}
