// Package diag carries the selector's diagnostic records: informational
// "Selected" lines and warnings for cards with no destination. Records do
// not affect control flow anywhere.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Level classifies a diagnostic record.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
)

// Record is a single diagnostic line.
type Record struct {
	Level   Level
	Message string
}

// Sink receives diagnostic records.
type Sink interface {
	Log(Record)
}

// Infof logs a formatted informational record to the sink.
func Infof(s Sink, format string, args ...any) {
	s.Log(Record{Level: LevelInfo, Message: fmt.Sprintf(format, args...)})
}

// Warnf logs a formatted warning record to the sink.
func Warnf(s Sink, format string, args ...any) {
	s.Log(Record{Level: LevelWarn, Message: fmt.Sprintf(format, args...)})
}

// --- MemorySink: stores records in memory for the TUI status area and tests ---

type MemorySink struct {
	records []Record
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (m *MemorySink) Log(r Record) {
	m.records = append(m.records, r)
}

func (m *MemorySink) Records() []Record {
	return m.records
}

// Messages returns just the message text of every record, in order.
func (m *MemorySink) Messages() []string {
	msgs := make([]string, len(m.records))
	for i, r := range m.records {
		msgs[i] = r.Message
	}
	return msgs
}

// Tail returns up to n of the most recent records.
func (m *MemorySink) Tail(n int) []Record {
	if len(m.records) <= n {
		return m.records
	}
	return m.records[len(m.records)-n:]
}

// --- TextSink: writes human-readable lines to an io.Writer ---

type TextSink struct {
	w    io.Writer
	warn *color.Color
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{
		w:    w,
		warn: color.New(color.FgYellow),
	}
}

func (t *TextSink) Log(r Record) {
	if r.Level == LevelWarn {
		t.warn.Fprintln(t.w, r.Message)
		return
	}
	fmt.Fprintln(t.w, r.Message)
}
