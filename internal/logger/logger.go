package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the diagnostics log, relative to the working directory.
const DefaultPath = "logs/fractals.txt"

const timeLayout = "2006-01-02 15:04:05"

// Logger keeps diagnostic lines in memory, appends them to a file on disk and mirrors them
// to an optional writer (e.g. stderr).
type Logger struct {
	mu     sync.Mutex
	path   string
	mirror io.Writer
	lines  []string
	now    func() time.Time
}

// New returns a Logger writing to path and mirror. An empty path keeps lines in memory only;
// mirror may be nil. The log directory is created if needed.
func New(path string, mirror io.Writer) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, mirror: mirror, lines: make([]string, 0), now: time.Now}
}

// Log records line prefixed with [timestamp].
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format(timeLayout) + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	if l.mirror != nil {
		_, _ = io.WriteString(l.mirror, stamped+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and records the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
