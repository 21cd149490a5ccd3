package core

import (
	"time"

	"github.com/philipp01105/log11/colors"
)

// Record is an immutable snapshot of one log event. It is built once per
// emission by the sink fan-out and consumed read-only by every formatter.
type Record struct {
	Time      time.Time
	Level     Level
	LevelName string
	Color     colors.Color
	Message   string
	File      string
	Line      int
	Function  string
	Extra     []ExtraField
}

// ExtraField is one caller-attached key/value pair. Values are already
// normalized to bounded text by ToString, so formatters never see raw
// values. The slice form preserves the order fields were attached in.
type ExtraField struct {
	Key   string
	Value string
}

// LevelInfo describes one registered severity level.
type LevelInfo struct {
	Name  string
	Level Level
	Color colors.Color
}

var builtinLevels = []LevelInfo{
	{Name: "TRACE", Level: TraceLevel, Color: colors.Cyan},
	{Name: "DEBUG", Level: DebugLevel, Color: colors.Blue},
	{Name: "INFO", Level: InfoLevel, Color: colors.Unset},
	{Name: "SUCCESS", Level: SuccessLevel, Color: colors.Green},
	{Name: "WARNING", Level: WarningLevel, Color: colors.Yellow},
	{Name: "ERROR", Level: ErrorLevel, Color: colors.Red},
	{Name: "CRITICAL", Level: CriticalLevel, Color: colors.LightRed},
}

// BuiltinLevels returns the default level set with its display colors.
func BuiltinLevels() []LevelInfo {
	return append([]LevelInfo(nil), builtinLevels...)
}

// DescribeLevel returns the built-in descriptor for a rank. Ranks without
// a built-in name get a bare descriptor named by Level.String.
func DescribeLevel(l Level) LevelInfo {
	for _, li := range builtinLevels {
		if li.Level == l {
			return li
		}
	}
	return LevelInfo{Name: l.String(), Level: l}
}
