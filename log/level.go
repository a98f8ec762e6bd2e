package log

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
)

// A Level is the importance or severity of a log event. Levels share the
// numbering of [slog.Level], with the addition of [LevelDisabled] which is
// above every other level and so silences all output.
type Level slog.Level

const (
	LevelDebug    = Level(slog.LevelDebug)
	LevelInfo     = Level(slog.LevelInfo)
	LevelWarn     = Level(slog.LevelWarn)
	LevelError    = Level(slog.LevelError)
	LevelDisabled = Level(1<<31 - 1)
)

// String returns the upper-case name of the level, i.e. "WARN" or
// "ERROR+2". Every level at or above LevelDisabled is "DISABLED".
func (l Level) String() string {
	if l >= LevelDisabled {
		return "DISABLED"
	}
	return slog.Level(l).String()
}

func isDisabled(s string) bool {
	switch strings.ToLower(s) {
	case "disable", "disabled", "false", "off":
		return true
	}
	return false
}

// MarshalJSON implements [encoding/json.Marshaler].
func (l Level) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, l.String()), nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. It accepts the
// output of [Level.MarshalJSON] in any case, as well as "off" and "false"
// for [LevelDisabled].
func (l *Level) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	if isDisabled(s) {
		*l = LevelDisabled
		return nil
	}
	return (*slog.Level)(l).UnmarshalJSON(data)
}

// AppendText implements [encoding.TextAppender].
func (l Level) AppendText(b []byte) ([]byte, error) {
	return append(b, l.String()...), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return l.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the same
// names as [Level.UnmarshalJSON], without the quotes.
func (l *Level) UnmarshalText(data []byte) error {
	if isDisabled(string(bytes.TrimSpace(data))) {
		*l = LevelDisabled
		return nil
	}
	return (*slog.Level)(l).UnmarshalText(data)
}

// Level implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }

// LevelFlag is a Level usable as a command-line flag value.
type LevelFlag Level

func (lf *LevelFlag) String() string { return Level(*lf).String() }

func (lf *LevelFlag) Set(s string) error { return (*Level)(lf).UnmarshalText([]byte(s)) }

func (lf *LevelFlag) Get() any { return Level(*lf) }

func (lf *LevelFlag) Type() string { return "level" }
