package core

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// DefaultMaxLen is the default bound on normalized field values.
const DefaultMaxLen = 100

// Sentinel tokens for values that have no useful text form. These are part
// of the output contract and must not change.
const (
	NullToken        = "_NULL_"
	EmptyToken       = "_EMPTY_"
	NaNToken         = "_NAN_"
	InfinityToken    = "_INFINITY_"
	NegInfinityToken = "_-INFINITY_"
)

// Mapper is implemented by values that expose a stable mapping view of
// their fields. ToString prefers it over reflection.
type Mapper interface {
	LogMap() map[string]any
}

// ToString converts an arbitrary value into a bounded, printable string.
// It never panics: every exceptional path degrades to a sentinel token or
// best-effort text. Boolean values normalize to lowercase true/false.
func ToString(value any, maxLen int) (out string) {
	defer func() {
		if recover() != nil {
			out = unprintable(value)
		}
	}()

	if value == nil {
		return NullToken
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			return EmptyToken
		}
		return cut(v, maxLen)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return floatText(float64(v), 32)
	case float64:
		return floatText(v, 64)
	}

	if m, ok := value.(Mapper); ok {
		if text, ok := mapperText(value, m); ok {
			return truncate(text, maxLen)
		}
	}

	if text, ok := structText(value); ok {
		return truncate(text, maxLen)
	}

	return truncate(stringify(value), maxLen)
}

func floatText(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return NaNToken
	case math.IsInf(v, 1):
		return InfinityToken
	case math.IsInf(v, -1):
		return NegInfinityToken
	}
	return strconv.FormatFloat(v, 'g', -1, bits)
}

// mapperText renders a Mapper value as "TypeName(k=v, ...)". Keys are
// sorted because Go maps have no stable iteration order.
func mapperText(value any, m Mapper) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	fields := m.LogMap()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(typeName(value))
	b.WriteByte('(')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(ToString(fields[k], DefaultMaxLen))
	}
	b.WriteByte(')')
	return b.String(), true
}

// structText renders a plain struct (or pointer to one) with exported
// fields as "TypeName(k=v, ...)". Introspection failure falls through to
// generic stringification.
func structText(value any) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", false
	}

	rt := rv.Type()
	var b strings.Builder
	b.WriteString(typeName(value))
	b.WriteByte('(')
	n := 0
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if n > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(ToString(rv.Field(i).Interface(), DefaultMaxLen))
		n++
	}
	if n == 0 {
		return "", false
	}
	b.WriteByte(')')
	return b.String(), true
}

// stringify is the best-effort fallback. String and Error methods are
// invoked directly so a panicking method degrades to the unprintable
// marker; going through fmt would not work, because fmt recovers such
// panics itself and embeds its own panic marker in the output.
func stringify(value any) (s string) {
	defer func() {
		if recover() != nil {
			s = unprintable(value)
		}
	}()
	switch v := value.(type) {
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}
	return fmt.Sprintf("%v", value)
}

func unprintable(value any) string {
	return "<UNPRINTABLE " + typeName(value) + ">"
}

func typeName(value any) string {
	t := reflect.TypeOf(value)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// cut truncates without an ellipsis; the raw-string branch keeps whatever
// fits. Rune-based so multi-byte text is never split mid-character.
func cut(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen])
}

// truncate bounds fallback and object renderings, marking the cut with an
// ellipsis.
func truncate(s string, maxLen int) string {
	if maxLen <= 3 {
		return cut(s, maxLen)
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
