package diag

import (
	"fmt"
	"sync"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"
	"tlog.app/go/tlog/tlwire"
)

type (
	// Location is a source span. Lines and columns are 1-based.
	Location struct {
		File string

		StartLine   int
		StartColumn int
		EndLine     int
		EndColumn   int
	}

	// Site is one of the places a conflict refers to.
	Site struct {
		Location Location
		Message  string
	}

	Diagnostic struct {
		Location Location
		Message  string

		// Sites is set for conflicts.
		Sites []Site

		// From is the check which reported it.
		From loc.PC
	}

	// Sink receives diagnostics. It never fails and may be called
	// any number of times.
	Sink interface {
		Error(at Location, msg string)
		Conflict(msg string, sites ...Site)
	}

	// List collects diagnostics. It's safe for concurrent use.
	List struct {
		mu   sync.Mutex
		list []Diagnostic
	}

	// Logger reports diagnostics to a tlog span and passes them on to Next.
	Logger struct {
		Span tlog.Span
		Next Sink
	}
)

var Empty = Location{File: "<unknown>", StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 1}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d-%d:%d", l.File, l.StartLine, l.StartColumn, l.EndLine, l.EndColumn)
}

func (l Location) IsZero() bool {
	return l == Location{}
}

// After is an empty span at the end of l.
func (l Location) After() Location {
	return Location{
		File:        l.File,
		StartLine:   l.EndLine,
		StartColumn: l.EndColumn,
		EndLine:     l.EndLine,
		EndColumn:   l.EndColumn,
	}
}

func (l Location) Less(x Location) bool {
	if l.File != x.File {
		return l.File < x.File
	}

	for _, d := range [...]int{
		l.StartLine - x.StartLine,
		l.StartColumn - x.StartColumn,
		l.EndLine - x.EndLine,
		l.EndColumn - x.EndColumn,
	} {
		if d != 0 {
			return d < 0
		}
	}

	return false
}

func (l Location) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 5)
	b = e.AppendKeyString(b, "file", l.File)
	b = e.AppendKeyInt64(b, "line", int64(l.StartLine))
	b = e.AppendKeyInt64(b, "col", int64(l.StartColumn))
	b = e.AppendKeyInt64(b, "end_line", int64(l.EndLine))
	b = e.AppendKeyInt64(b, "end_col", int64(l.EndColumn))

	return b
}

func (d Diagnostic) IsConflict() bool {
	return d.Sites != nil
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%v: %s", d.Location, d.Message)
}

func (l *List) Error(at Location, msg string) {
	l.add(Diagnostic{
		Location: at,
		Message:  msg,
		From:     loc.Caller(1),
	})
}

func (l *List) Conflict(msg string, sites ...Site) {
	d := Diagnostic{
		Location: Empty,
		Message:  msg,
		Sites:    append([]Site{}, sites...),
		From:     loc.Caller(1),
	}

	if len(sites) != 0 {
		d.Location = sites[0].Location
	}

	l.add(d)
}

func (l *List) add(d Diagnostic) {
	defer l.mu.Unlock()
	l.mu.Lock()

	l.list = append(l.list, d)
}

func (l *List) Len() int {
	defer l.mu.Unlock()
	l.mu.Lock()

	return len(l.list)
}

// Diagnostics returns a copy of everything reported so far, in call order.
func (l *List) Diagnostics() []Diagnostic {
	defer l.mu.Unlock()
	l.mu.Lock()

	return append([]Diagnostic(nil), l.list...)
}

func (l *List) Reset() {
	defer l.mu.Unlock()
	l.mu.Lock()

	l.list = l.list[:0]
}

func (l Logger) Error(at Location, msg string) {
	l.Span.Printw("diagnostic", "at", at, "msg", msg, "from", loc.Caller(1))

	if l.Next != nil {
		l.Next.Error(at, msg)
	}
}

func (l Logger) Conflict(msg string, sites ...Site) {
	if l.Span.If("diag") {
		for _, s := range sites {
			l.Span.Printw("conflict site", "at", s.Location, "msg", s.Message)
		}
	}

	l.Span.Printw("conflict", "msg", msg, "sites", len(sites), "from", loc.Caller(1))

	if l.Next != nil {
		l.Next.Conflict(msg, sites...)
	}
}
