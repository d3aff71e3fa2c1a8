package sources

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is a log severity. Messages below the active level are dropped.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel maps a flag value to a Level. ok is false for unknown names.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelInfo, false
}

var active atomic.Int32

var out = log.New(os.Stderr, "", log.Ldate|log.Ltime)

func init() { active.Store(int32(LevelInfo)) }

// SetLogLevel applies a level by name. Unknown names leave the level as is, so
// a mistyped flag value degrades to the current behavior instead of silencing
// or flooding the log.
func SetLogLevel(s string) {
	if l, ok := ParseLevel(s); ok {
		active.Store(int32(l))
	}
}

func logf(l Level, format string, args ...any) {
	if l < Level(active.Load()) {
		return
	}
	// Plain messages pass through unformatted; dataset percentages put literal
	// % signs in most of these lines.
	if len(args) == 0 {
		out.Printf("[%s] %s", l, format)
		return
	}
	out.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...any) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...any)  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...any)  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...any) { logf(LevelError, format, a...) }
