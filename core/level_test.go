package core

import (
	"errors"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{SuccessLevel, "SUCCESS"},
		{WarningLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{CriticalLevel, "CRITICAL"},
		{Level(35), "LEVEL(35)"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevel_Set(t *testing.T) {
	var l Level

	if err := l.Set("warning"); err != nil || l != WarningLevel {
		t.Errorf("Set(warning) = %v, level %v", err, l)
	}
	if err := l.Set("WARN"); err != nil || l != WarningLevel {
		t.Errorf("Set(WARN) = %v, level %v", err, l)
	}
	if err := l.Set("25"); err != nil || l != Level(25) {
		t.Errorf("Set(25) = %v, level %v", err, l)
	}
	if err := l.Set("bogus"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Set(bogus) = %v, want ErrUnknownLevel", err)
	}
}

func TestLevel_UnmarshalText(t *testing.T) {
	var l Level
	if err := l.UnmarshalText([]byte("error")); err != nil || l != ErrorLevel {
		t.Errorf("UnmarshalText(error) = %v, level %v", err, l)
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("success")
	if err != nil || l != SuccessLevel {
		t.Errorf("ParseLevel(success) = %v, %v", l, err)
	}
	if _, err := ParseLevel("nope"); err == nil {
		t.Error("ParseLevel(nope) expected error")
	}
}
