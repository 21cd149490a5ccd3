package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/log11/colors"
	"github.com/philipp01105/log11/core"
)

func testRecord() *core.Record {
	return &core.Record{
		Time:      time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:     core.InfoLevel,
		LevelName: "INFO",
		Message:   "service started",
		File:      "/elsewhere/app/main.go",
		Line:      12,
		Function:  "main.main",
	}
}

func TestTextFormatter_MessageOnly(t *testing.T) {
	cfg := FormatConfig{Message: true}
	f := NewTextFormatter(cfg, plainFields())

	result, err := f.Format(testRecord())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := string(result); got != "service started\n" {
		t.Errorf("Format() = %q, want bare message line", got)
	}
}

func TestTextFormatter_FullLine(t *testing.T) {
	f := NewTextFormatter(DefaultFormatConfig(), plainFields())

	rec := testRecord()
	rec.Extra = []core.ExtraField{{Key: "port", Value: "8080"}}

	result, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "2026-02-18  13:00:00  INFO      main()  service started  /elsewhere/app/main.go:12  port=8080\n"
	if got := string(result); got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestTextFormatter_FunctionBeforeMessage(t *testing.T) {
	cfg := FormatConfig{Function: true, Message: true}
	f := NewTextFormatter(cfg, plainFields())

	result, _ := f.Format(testRecord())
	if got := string(result); got != "main()  service started\n" {
		t.Errorf("Format() = %q, want function column first", got)
	}
}

func TestTextFormatter_EmptyExtrasOmitted(t *testing.T) {
	cfg := FormatConfig{Message: true, Extras: true}
	f := NewTextFormatter(cfg, plainFields())

	result, _ := f.Format(testRecord())
	if got := string(result); got != "service started\n" {
		t.Errorf("Format() = %q, empty extras must not leave a separator", got)
	}
}

func TestTextFormatter_Colored(t *testing.T) {
	fields := plainFields()
	fields.Style = colors.Style{Enabled: true}

	cfg := FormatConfig{Level: true, Message: true}
	f := NewTextFormatter(cfg, fields)

	rec := testRecord()
	rec.Color = colors.Red
	result, _ := f.Format(rec)
	out := string(result)
	if !strings.Contains(out, "\x1b[31m") {
		t.Errorf("Expected level color markup in %q", out)
	}
	if !strings.Contains(out, "\x1b[1m") {
		t.Errorf("Expected bold markup in %q", out)
	}
}
