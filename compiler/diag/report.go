package diag

import (
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"nikand.dev/go/heap"
	"tlog.app/go/errors"
)

type cursor struct {
	list []Diagnostic
	i    int
}

// Merge combines per-unit lists into one ordered by location.
// Diagnostics of one list at the same location keep their order.
func Merge(lists ...[]Diagnostic) []Diagnostic {
	h := heap.Heap[cursor]{Less: cursorLess}

	n := 0

	for _, l := range lists {
		if len(l) == 0 {
			continue
		}

		l = slices.Clone(l)
		slices.SortStableFunc(l, compare)

		h.Push(cursor{list: l})

		n += len(l)
	}

	res := make([]Diagnostic, 0, n)

	for h.Len() != 0 {
		c := h.Pop()

		res = append(res, c.list[c.i])

		if c.i++; c.i < len(c.list) {
			h.Push(c)
		}
	}

	return res
}

func cursorLess(d []cursor, i, j int) bool {
	return d[i].list[d[i].i].Location.Less(d[j].list[d[j].i].Location)
}

func compare(a, b Diagnostic) int {
	switch {
	case a.Location.Less(b.Location):
		return -1
	case b.Location.Less(a.Location):
		return 1
	}

	return 0
}

// Write prints diagnostics one per line, conflicts followed by their sites.
func Write(w io.Writer, ds []Diagnostic) error {
	for _, d := range ds {
		var err error

		if d.IsConflict() {
			_, err = fmt.Fprintf(w, "%s\n", d.Message)

			for _, s := range d.Sites {
				if err != nil {
					break
				}

				_, err = fmt.Fprintf(w, "%v: %s\n", s.Location, s.Message)
			}
		} else {
			_, err = fmt.Fprintf(w, "%v: %s\n", d.Location, d.Message)
		}

		if err != nil {
			return errors.Wrap(err, "write diagnostic")
		}
	}

	return nil
}

func WriteTable(w io.Writer, ds []Diagnostic) error {
	t := table.NewWriter()
	t.SetTitle("Diagnostics")
	t.AppendHeader(table.Row{"#", "File", "Span", "Message"})

	n := 0

	for _, d := range ds {
		n++

		t.AppendRow(table.Row{n, d.Location.File, span(d.Location), d.Message})

		for _, s := range d.Sites {
			t.AppendRow(table.Row{"", s.Location.File, span(s.Location), "  " + s.Message})
		}
	}

	t.AppendFooter(table.Row{"", "", "total", n})

	_, err := fmt.Fprintln(w, t.Render())
	if err != nil {
		return errors.Wrap(err, "write table")
	}

	return nil
}

func span(l Location) string {
	return fmt.Sprintf("%d:%d-%d:%d", l.StartLine, l.StartColumn, l.EndLine, l.EndColumn)
}
