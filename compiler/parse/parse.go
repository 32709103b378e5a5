package parse

import (
	"context"
	"fmt"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/kws/compiler/diag"
	"github.com/slowlang/kws/compiler/ir"
	"github.com/slowlang/kws/compiler/kws"
)

type (
	// State assembles the text form of one compilation unit.
	// A unit may span several files. Function names are shared by the unit,
	// value names are local to a file.
	State struct {
		b []byte // all files concatenated

		files []*file
	}

	file struct {
		base int
		size int
		name string

		lines []line
	}

	line struct {
		f   *file
		num int

		st, end int
	}

	// SyntaxError is text which can't be read as instructions.
	// Assembling stops at the first one.
	SyntaxError struct {
		Location diag.Location
		Err      error
	}

	funcDecl struct {
		line   line
		kind   kws.FuncKind
		export bool
		name   string
		params []param
		blocks []*blockDecl

		fn *kws.Func
	}

	blockDecl struct {
		line   line
		name   string
		params []param
		code   []line

		blk *kws.Block
	}

	param struct {
		name string
		typ  ir.Type
		pos  int
	}
)

func AssembleFile(ctx context.Context, fc *kws.Factory, name string) error {
	text, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "read file")
	}

	return Assemble(ctx, fc, name, text)
}

func Assemble(ctx context.Context, fc *kws.Factory, name string, text []byte) error {
	s := New()

	s.AddFile(name, text)

	return s.Assemble(ctx, fc)
}

func New() *State {
	return &State{}
}

func (s *State) AddFile(name string, text []byte) {
	f := &file{
		name: name,
		base: len(s.b),
		size: len(text),
	}

	s.b = append(s.b, text...)

	for st, num := f.base, 1; st <= len(s.b); num++ {
		end := st

		for end < len(s.b) && s.b[end] != '\n' {
			end++
		}

		next := end + 1

		if end > st && s.b[end-1] == '\r' {
			end--
		}

		f.lines = append(f.lines, line{f: f, num: num, st: st, end: end})

		st = next
	}

	s.files = append(s.files, f)
}

// Assemble creates the functions of all the files in fc.
// Every function is finished once its instructions are issued.
func (s *State) Assemble(ctx context.Context, fc *kws.Factory) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "assemble", "files", len(s.files))
	defer tr.Finish("err", &err)

	var decls [][]*funcDecl

	for _, f := range s.files {
		fs, err := s.declare(ctx, f)
		if err != nil {
			return err
		}

		decls = append(decls, fs)
	}

	funcs := map[string]*kws.Func{}

	for _, fs := range decls {
		for _, d := range fs {
			s.create(ctx, fc, funcs, d)
		}
	}

	for i, fs := range decls {
		a := &asm{
			s:      s,
			fc:     fc,
			funcs:  funcs,
			values: map[string]kws.Value{},
		}

		for _, d := range fs {
			err = a.issue(ctx, d)
			if err != nil {
				return errors.Wrap(err, "func %v", d.name)
			}
		}

		tr.V("assemble").Printw("file assembled", "file", s.files[i].name, "funcs", len(fs), "values", len(a.values))
	}

	return nil
}

// declare reads function and block headers and sorts instruction lines into blocks.
func (s *State) declare(ctx context.Context, f *file) (fs []*funcDecl, err error) {
	var fn *funcDecl
	var blk *blockDecl

	for _, l := range f.lines {
		sc := s.scan(l)

		if sc.eol() {
			continue
		}

		switch {
		case fn == nil:
			fn, err = sc.funcHeader()
			if err != nil {
				return nil, err
			}

			blk = nil
		case sc.try('}'):
			if !sc.eol() {
				return nil, sc.errorf("unexpected text after function end")
			}

			if len(fn.blocks) == 0 {
				return nil, s.errorf(fn.line, fn.line.st, "function %s has no blocks", fn.name)
			}

			fs = append(fs, fn)
			fn = nil
		case sc.blockHeader():
			blk, err = sc.blockDecl()
			if err != nil {
				return nil, err
			}

			fn.blocks = append(fn.blocks, blk)
		case blk == nil:
			return nil, sc.errorf("instruction outside of a block")
		default:
			blk.code = append(blk.code, l)
		}
	}

	if fn != nil {
		return nil, s.errorf(fn.line, fn.line.st, "function %s is not closed", fn.name)
	}

	return fs, nil
}

// create makes the function and its blocks so they can be referenced before they are defined.
func (s *State) create(ctx context.Context, fc *kws.Factory, funcs map[string]*kws.Func, d *funcDecl) {
	at := s.location(d.line)

	captures := make([]ir.Type, len(d.params))
	for i, p := range d.params {
		captures[i] = p.typ
	}

	entry := d.blocks[0]

	d.fn = fc.Create(d.kind, at, d.name, d.export, entry.name, captures...)
	entry.blk = d.fn.EntryBlock()

	if prev, ok := funcs[d.name]; ok {
		fc.Sink().Conflict(fmt.Sprintf("Function “%s” is defined multiple times.", d.name),
			diag.Site{Location: prev.Location(), Message: "first defined here"},
			diag.Site{Location: at, Message: "defined again"},
		)
	} else {
		funcs[d.name] = d.fn
	}

	want := entry.blk.Params()

	if len(entry.params) != len(want) {
		fc.Sink().Error(s.location(entry.line), fmt.Sprintf("Entry block “%s” takes %d parameters, but %d are declared.", entry.name, len(want), len(entry.params)))
	}

	for i, p := range entry.params {
		if i < len(want) && want[i] != p.typ {
			fc.Sink().Error(s.location(entry.line), fmt.Sprintf("Entry block “%s” parameter %d is %v, but %v is declared.", entry.name, i, want[i], p.typ))
		}
	}

	for _, b := range d.blocks[1:] {
		types := make([]ir.Type, len(b.params))
		for i, p := range b.params {
			types[i] = p.typ
		}

		b.blk = d.fn.CreateBlockAt(s.location(b.line), b.name, types...)
	}
}

func (s *State) location(l line) diag.Location {
	st := SpaceTab.Skip(s.b[:l.end], l.st)
	end := ContentEnd(s.b, st, l.end)

	return diag.Location{
		File:        l.f.name,
		StartLine:   l.num,
		StartColumn: st - l.st + 1,
		EndLine:     l.num,
		EndColumn:   end - l.st + 1,
	}
}

func (s *State) errorf(l line, pos int, format string, args ...any) error {
	return SyntaxError{
		Location: diag.Location{
			File:        l.f.name,
			StartLine:   l.num,
			StartColumn: pos - l.st + 1,
			EndLine:     l.num,
			EndColumn:   pos - l.st + 1,
		},
		Err: errors.New(format, args...),
	}
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %v", e.Location.File, e.Location.StartLine, e.Location.StartColumn, e.Err)
}

func (e SyntaxError) Unwrap() error {
	return e.Err
}
