package cmd

import "strings"
import "sync"

// maxLatestLogs is the number of log records kept for the error dump.
const maxLatestLogs = 100

// latestLogs keeps the last records written to it. slog handlers emit
// each record with a single Write call, so every write is one line.
type latestLogs struct {
	mu    sync.Mutex
	limit int
	lines []string
}

func newLatestLogs(limit int) *latestLogs {
	return &latestLogs{limit: limit}
}

func (l *latestLogs) Write(p []byte) (int, error) {
	if l.limit <= 0 {
		return len(p), nil
	}
	line := strings.TrimRight(string(p), "\n")
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) >= l.limit {
		n := copy(l.lines, l.lines[len(l.lines)-l.limit+1:])
		l.lines = l.lines[:n]
	}
	l.lines = append(l.lines, line)
	return len(p), nil
}

// Lines returns the kept records, oldest first.
func (l *latestLogs) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func (l *latestLogs) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
}
