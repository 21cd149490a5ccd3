package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/philipp01105/log11/core"
)

type structuredLine struct {
	Record struct {
		Time  string `json:"time"`
		Level struct {
			Name string `json:"name"`
			No   int    `json:"no"`
		} `json:"level"`
		Message  string            `json:"message"`
		File     string            `json:"file"`
		Line     int               `json:"line"`
		Function string            `json:"function"`
		Extra    map[string]string `json:"extra"`
	} `json:"record"`
}

func TestJSONFormatter_Shape(t *testing.T) {
	f := NewJSONFormatter()

	rec := testRecord()
	rec.Extra = []core.ExtraField{
		{Key: "count", Value: "3"},
		{Key: "ok", Value: "true"},
	}

	result, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(result), "\n") {
		t.Fatal("Expected newline-terminated output")
	}

	var line structuredLine
	if err := json.Unmarshal(result, &line); err != nil {
		t.Fatalf("Unmarshal() error = %v, raw: %s", err, result)
	}

	if line.Record.Message != "service started" {
		t.Errorf("message = %q", line.Record.Message)
	}
	if line.Record.Level.Name != "INFO" || line.Record.Level.No != 20 {
		t.Errorf("level = %+v", line.Record.Level)
	}
	if line.Record.Line != 12 {
		t.Errorf("line = %d", line.Record.Line)
	}
	if line.Record.Extra["count"] != "3" || line.Record.Extra["ok"] != "true" {
		t.Errorf("extra = %v", line.Record.Extra)
	}
}

func TestJSONFormatter_Escaping(t *testing.T) {
	f := NewJSONFormatter()

	rec := testRecord()
	rec.Message = "quote \" backslash \\ newline \n tab \t"
	rec.Extra = []core.ExtraField{{Key: "json", Value: `{"a": 1}`}}

	result, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var line structuredLine
	if err := json.Unmarshal(result, &line); err != nil {
		t.Fatalf("Unmarshal() error = %v, raw: %s", err, result)
	}
	if line.Record.Message != rec.Message {
		t.Errorf("message round-trip = %q", line.Record.Message)
	}
	if line.Record.Extra["json"] != `{"a": 1}` {
		t.Errorf("extra round-trip = %q", line.Record.Extra["json"])
	}
}

func TestJSONFormatter_EmptyExtra(t *testing.T) {
	f := NewJSONFormatter()

	result, err := f.Format(testRecord())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var line structuredLine
	if err := json.Unmarshal(result, &line); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if line.Record.Extra == nil || len(line.Record.Extra) != 0 {
		t.Errorf("extra = %v, want present and empty", line.Record.Extra)
	}
}
