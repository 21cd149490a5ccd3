package core

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestToString_Sentinels(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "_NULL_"},
		{"empty string", "", "_EMPTY_"},
		{"nan", math.NaN(), "_NAN_"},
		{"positive infinity", math.Inf(1), "_INFINITY_"},
		{"negative infinity", math.Inf(-1), "_-INFINITY_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.value, DefaultMaxLen); got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestToString_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int64", int64(1 << 40), "1099511627776"},
		{"uint", uint(3), "3"},
		{"float", 1.5, "1.5"},
		{"float32", float32(0.25), "0.25"},
		{"plain string", "hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.value, DefaultMaxLen); got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestToString_StringTruncation(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := ToString(long, DefaultMaxLen)
	if len(got) != DefaultMaxLen {
		t.Errorf("Expected length %d, got %d", DefaultMaxLen, len(got))
	}
	// The raw-string branch truncates without an ellipsis.
	if strings.HasSuffix(got, "...") {
		t.Errorf("String branch must not append an ellipsis, got %q", got)
	}
}

type longStringer struct{}

func (longStringer) String() string { return strings.Repeat("x", 150) }

func TestToString_FallbackTruncation(t *testing.T) {
	got := ToString(longStringer{}, DefaultMaxLen)
	if len(got) > DefaultMaxLen {
		t.Errorf("Expected length <= %d, got %d", DefaultMaxLen, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Fallback truncation must end in ellipsis, got %q", got)
	}
}

type panicky struct{}

func (panicky) String() string { panic("no text for you") }

func TestToString_NeverPanics(t *testing.T) {
	got := ToString(panicky{}, DefaultMaxLen)
	if got != "<UNPRINTABLE panicky>" {
		t.Errorf("ToString(panicky{}) = %q, want %q", got, "<UNPRINTABLE panicky>")
	}

	// A panicking value nested inside a struct degrades the same way.
	type wrapper struct {
		Inner panicky
	}
	got = ToString(wrapper{}, DefaultMaxLen)
	if !strings.Contains(got, "<UNPRINTABLE panicky>") {
		t.Errorf("Expected nested unprintable marker, got %q", got)
	}
}

type brokenError struct{}

func (brokenError) Error() string { panic("broken") }

func TestToString_Errors(t *testing.T) {
	if got := ToString(errors.New("boom"), DefaultMaxLen); got != "boom" {
		t.Errorf("ToString(error) = %q, want %q", got, "boom")
	}
	if got := ToString(brokenError{}, DefaultMaxLen); got != "<UNPRINTABLE brokenError>" {
		t.Errorf("ToString(brokenError{}) = %q, want %q", got, "<UNPRINTABLE brokenError>")
	}
}

type account struct {
	id   int
	name string
}

func (a account) LogMap() map[string]any {
	return map[string]any{"id": a.id, "name": a.name}
}

func TestToString_Mapper(t *testing.T) {
	got := ToString(account{id: 7, name: "ada"}, DefaultMaxLen)
	if got != "account(id=7, name=ada)" {
		t.Errorf("ToString(account) = %q", got)
	}
}

func TestToString_StructReflection(t *testing.T) {
	type endpoint struct {
		Host string
		Port int
	}
	got := ToString(endpoint{Host: "db", Port: 5432}, DefaultMaxLen)
	if got != "endpoint(Host=db, Port=5432)" {
		t.Errorf("ToString(endpoint) = %q", got)
	}

	// Pointers dereference to the same rendering.
	got = ToString(&endpoint{Host: "db", Port: 5432}, DefaultMaxLen)
	if got != "endpoint(Host=db, Port=5432)" {
		t.Errorf("ToString(&endpoint) = %q", got)
	}
}

func TestToString_UnexportedStructFallsThrough(t *testing.T) {
	type opaque struct {
		secret string
	}
	got := ToString(opaque{secret: "k"}, DefaultMaxLen)
	if got != "{k}" {
		t.Errorf("ToString(opaque) = %q, want generic stringification", got)
	}
}

func TestToString_TinyMaxLen(t *testing.T) {
	got := ToString(longStringer{}, 2)
	if len(got) > 2 {
		t.Errorf("Expected length <= 2, got %q", got)
	}
}
