package formatter

import (
	"bytes"
	"strings"

	"github.com/philipp01105/log11/core"
)

// FormatConfig selects which record components appear in a text line. The
// zero value disables everything; use DefaultFormatConfig for the
// all-enabled default.
type FormatConfig struct {
	Date     bool
	Time     bool
	Level    bool
	Location bool
	Function bool
	Message  bool
	Extras   bool
}

// DefaultFormatConfig returns a config with every component enabled.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		Date:     true,
		Time:     true,
		Level:    true,
		Location: true,
		Function: true,
		Message:  true,
		Extras:   true,
	}
}

// TextFormatter assembles enabled field renderers into one output line.
// The component order is fixed: date, time, level, function, message,
// location, extras. Enabled parts are joined by two spaces; the extras
// part is appended only when non-empty.
type TextFormatter struct {
	cfg    FormatConfig
	fields Fields
}

// NewTextFormatter creates a text formatter with the given field selection.
func NewTextFormatter(cfg FormatConfig, fields Fields) *TextFormatter {
	return &TextFormatter{cfg: cfg, fields: fields}
}

// Format renders a record into a single newline-terminated line.
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

func (f *TextFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	parts := make([]string, 0, 7)

	if f.cfg.Date {
		parts = append(parts, f.fields.Date(rec))
	}
	if f.cfg.Time {
		parts = append(parts, f.fields.Clock(rec))
	}
	if f.cfg.Level {
		parts = append(parts, f.fields.Level(rec))
	}
	if f.cfg.Function {
		parts = append(parts, f.fields.Function(rec))
	}
	if f.cfg.Message {
		parts = append(parts, f.fields.Message(rec))
	}
	if f.cfg.Location {
		parts = append(parts, f.fields.Location(rec))
	}
	if f.cfg.Extras {
		if extras := f.fields.Extras(rec); extras != "" {
			parts = append(parts, extras)
		}
	}

	buf.WriteString(strings.Join(parts, "  "))
	buf.WriteByte('\n')
}
