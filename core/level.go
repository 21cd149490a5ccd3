package core

import (
	"encoding"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Level is the numeric severity rank of a log record. Higher ranks are more
// severe. The built-in ranks leave gaps so custom levels can be registered
// between them.
type Level int

const (
	TraceLevel    Level = 5
	DebugLevel    Level = 10
	InfoLevel     Level = 20
	SuccessLevel  Level = 25
	WarningLevel  Level = 30
	ErrorLevel    Level = 40
	CriticalLevel Level = 50
)

var ErrUnknownLevel = errors.New("unknown log level (known: trace, debug, info, success, warning, error, critical)")

// The following are necessary for cobra and viper, respectively, to
// unmarshal level CLI/config parameters properly.
var (
	_ pflag.Value              = (*Level)(nil)
	_ encoding.TextUnmarshaler = (*Level)(nil)
)

// String returns the built-in name for the level, or "LEVEL(n)" for ranks
// that have no built-in name. Names for custom levels live in the registry
// that created them, not here.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case SuccessLevel:
		return "SUCCESS"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
}

// Set implements pflag.Value. It accepts built-in level names in any case,
// plus bare numeric ranks.
func (l *Level) Set(s string) error {
	switch strings.ToUpper(s) {
	case "TRACE":
		*l = TraceLevel
	case "DEBUG":
		*l = DebugLevel
	case "INFO":
		*l = InfoLevel
	case "SUCCESS":
		*l = SuccessLevel
	case "WARN", "WARNING":
		*l = WarningLevel
	case "ERROR":
		*l = ErrorLevel
	case "CRITICAL":
		*l = CriticalLevel
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return ErrUnknownLevel
		}
		*l = Level(n)
	}
	return nil
}

func (l *Level) Type() string {
	return "Level"
}

func (l *Level) UnmarshalText(text []byte) error {
	return l.Set(string(text))
}

// ParseLevel converts a string to a Level, returning ErrUnknownLevel for
// strings that name no built-in level and are not numeric.
func ParseLevel(s string) (Level, error) {
	var l Level
	if err := l.Set(s); err != nil {
		return InfoLevel, err
	}
	return l, nil
}
