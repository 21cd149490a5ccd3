package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/philipp01105/log11/core"
)

// JSONFormatter serializes records as one JSON object per line:
//
//	{"record":{"time":...,"level":{"name":...,"no":...},"message":...,
//	 "file":...,"line":...,"function":...,"extra":{...}}}
//
// Extra values are pre-normalized text, so the extra object is always a
// string-to-string mapping in attachment order.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteString(`{"record":{"time":"`)
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))

	buf.WriteString(`","level":{"name":"`)
	appendJSONString(buf, rec.LevelName)
	buf.WriteString(`","no":`)
	buf.WriteString(strconv.Itoa(int(rec.Level)))
	buf.WriteByte('}')

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, rec.Message)
	buf.WriteByte('"')

	buf.WriteString(`,"file":"`)
	appendJSONString(buf, rec.File)
	buf.WriteString(`","line":`)
	buf.WriteString(strconv.Itoa(rec.Line))

	buf.WriteString(`,"function":"`)
	appendJSONString(buf, rec.Function)
	buf.WriteByte('"')

	buf.WriteString(`,"extra":{`)
	for i, kv := range rec.Extra {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		appendJSONString(buf, kv.Key)
		buf.WriteString(`":"`)
		appendJSONString(buf, kv.Value)
		buf.WriteByte('"')
	}
	buf.WriteString("}}}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
