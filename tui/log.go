// Package tui provides a Bubble Tea terminal UI that plays one level with
// single key presses.
package tui

import "fmt"

// entry is one message line and how many times it arrived in a row.
type entry struct {
	text  string
	count int
}

// Log is a bounded ring of recent messages. Consecutive duplicates
// collapse into one line with a repeat count.
type Log struct {
	entries []entry
	max     int
}

// NewLog creates a log that keeps at most max messages.
func NewLog(max int) *Log {
	return &Log{
		entries: make([]entry, 0, max),
		max:     max,
	}
}

// Push adds a message, dropping the oldest once the log is full.
func (l *Log) Push(text string) {
	if n := len(l.entries); n > 0 && l.entries[n-1].text == text {
		l.entries[n-1].count++
		return
	}
	l.entries = append(l.entries, entry{text: text, count: 1})
	if len(l.entries) > l.max {
		l.entries = l.entries[1:]
	}
}

// Lines returns up to n of the newest messages, oldest first. A negative
// n returns them all.
func (l *Log) Lines(n int) []string {
	start := len(l.entries) - n
	if start < 0 || n < 0 {
		start = 0
	}
	out := make([]string, 0, len(l.entries)-start)
	for _, e := range l.entries[start:] {
		if e.count > 1 {
			out = append(out, fmt.Sprintf("%s (x%d)", e.text, e.count))
		} else {
			out = append(out, e.text)
		}
	}
	return out
}

// Len returns how many messages are kept.
func (l *Log) Len() int { return len(l.entries) }

// Clear forgets every message.
func (l *Log) Clear() { l.entries = l.entries[:0] }
