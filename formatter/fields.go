package formatter

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/philipp01105/log11/colors"
	"github.com/philipp01105/log11/core"
)

// Fields renders the individual components of a record into styled
// strings. One value is built per sink at rebuild time, carrying that
// sink's style flag and the registry's current label width.
type Fields struct {
	Style      colors.Style
	LabelWidth int
}

// Date renders the date part of the timestamp, dimmed.
func (f Fields) Date(rec *core.Record) string {
	return f.Style.Apply(rec.Time.Format("2006-01-02"), colors.Unset, true, false, 0)
}

// Clock renders the time part of the timestamp, dimmed.
func (f Fields) Clock(rec *core.Record) string {
	return f.Style.Apply(rec.Time.Format("15:04:05"), colors.Unset, true, false, 0)
}

// Level renders the severity label, bold in the record's level color,
// left-padded to the registry's current max label width for column
// alignment.
func (f Fields) Level(rec *core.Record) string {
	return f.Style.Apply(rec.LevelName, rec.Color, false, true, f.LabelWidth)
}

// Location renders the call site as path:line, with the path rewritten
// relative to the detected project root when the file lives under it.
func (f Fields) Location(rec *core.Record) string {
	path := rec.File
	if rel, err := filepath.Rel(ProjectRoot(), path); err == nil && !strings.HasPrefix(rel, "..") {
		path = rel
	}
	return path + ":" + strconv.Itoa(rec.Line)
}

// Function renders the calling function name. Records without caller
// information render as "__"; angle-bracket markers are stripped;
// otherwise the short name is suffixed with "()".
func (f Fields) Function(rec *core.Record) string {
	name := rec.Function
	if name == "" {
		return "__"
	}
	if strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">") {
		name = name[1 : len(name)-1]
	}
	// Runtime function names are fully qualified; keep only the part
	// after the package path and package name.
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name + "()"
}

// Message renders the message body, bold.
func (f Fields) Message(rec *core.Record) string {
	return f.Style.Apply(rec.Message, colors.Unset, false, true, 0)
}

// Extras renders the attached-field set as "key=value" entries joined by
// " | ", keys colored. Values are already normalized. An empty set renders
// as the empty string.
func (f Fields) Extras(rec *core.Record) string {
	if len(rec.Extra) == 0 {
		return ""
	}
	parts := make([]string, 0, len(rec.Extra))
	for _, kv := range rec.Extra {
		key := f.Style.Apply(kv.Key, colors.Green, false, false, 0)
		parts = append(parts, key+"="+kv.Value)
	}
	return strings.Join(parts, " | ")
}

var (
	projectRootOnce sync.Once
	projectRoot     string
)

// ProjectRoot returns the detected project root, computed once per process
// from the working directory.
func ProjectRoot() string {
	projectRootOnce.Do(func() {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		projectRoot = FindProjectRoot(wd)
	})
	return projectRoot
}

// FindProjectRoot walks upward from start until it finds a directory
// containing a go.mod file or a .git directory. A missing marker is not an
// error: the start directory is returned and call-site paths stay
// absolute.
func FindProjectRoot(start string) string {
	abs, err := filepath.Abs(start)
	if err != nil {
		return start
	}
	for dir := abs; ; {
		if hasMarker(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs
		}
		dir = parent
	}
}

func hasMarker(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return true
	}
	return false
}
