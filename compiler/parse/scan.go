package parse

import (
	"bytes"

	"github.com/slowlang/kws/compiler/ir"
	"github.com/slowlang/kws/compiler/kws"
)

type scanner struct {
	s *State
	l line

	b []byte // text up to the line end
	i int
}

func (s *State) scan(l line) *scanner {
	return &scanner{
		s: s,
		l: l,
		b: s.b[:l.end],
		i: l.st,
	}
}

func (sc *scanner) skip() {
	sc.i = SpaceTab.Skip(sc.b, sc.i)
}

// eol skips spaces and tells if nothing but a comment is left.
func (sc *scanner) eol() bool {
	sc.skip()

	return sc.i == len(sc.b) || bytes.HasPrefix(sc.b[sc.i:], []byte("//"))
}

func (sc *scanner) peek(c byte) bool {
	sc.skip()

	return sc.i < len(sc.b) && sc.b[sc.i] == c
}

func (sc *scanner) try(c byte) bool {
	if !sc.peek(c) {
		return false
	}

	sc.i++

	return true
}

func (sc *scanner) expect(c byte) error {
	if !sc.try(c) {
		return sc.errorf("%q expected", c)
	}

	return nil
}

func (sc *scanner) ident() (string, error) {
	sc.skip()

	end, err := Ident(sc.b, sc.i)
	if err != nil {
		return "", sc.errorf("%v", err)
	}

	id := string(sc.b[sc.i:end])
	sc.i = end

	return id, nil
}

// valueName reads %name and returns name.
func (sc *scanner) valueName() (string, error) {
	if err := sc.expect('%'); err != nil {
		return "", err
	}

	end, err := Name(sc.b, sc.i)
	if err != nil {
		return "", sc.errorf("%v", err)
	}

	n := string(sc.b[sc.i:end])
	sc.i = end

	return n, nil
}

func (sc *scanner) quoted() (string, error) {
	sc.skip()

	s, end, err := Quoted(sc.b, sc.i)
	if err != nil {
		return "", sc.errorf("%v", err)
	}

	sc.i = end

	return s, nil
}

func (sc *scanner) strings() (l []string, err error) {
	err = sc.list('[', ']', func() error {
		s, err := sc.quoted()
		l = append(l, s)

		return err
	})
	if l == nil {
		l = []string{}
	}

	return l, err
}

func (sc *scanner) bool() (bool, error) {
	sc.skip()

	v, end, err := Bool(sc.b, sc.i)
	if err != nil {
		return false, sc.errorf("%v", err)
	}

	sc.i = end

	return v, nil
}

func (sc *scanner) int() (int64, error) {
	sc.skip()

	v, end, err := Int(sc.b, sc.i)
	if err != nil {
		return 0, sc.errorf("%v", err)
	}

	sc.i = end

	return v, nil
}

func (sc *scanner) float() (float64, error) {
	sc.skip()

	v, end, err := Float(sc.b, sc.i)
	if err != nil {
		return 0, sc.errorf("%v", err)
	}

	sc.i = end

	return v, nil
}

func (sc *scanner) typ() (ir.Type, error) {
	pos := SpaceTab.Skip(sc.b, sc.i)

	n, err := sc.ident()
	if err != nil {
		return 0, err
	}

	t, ok := ir.ParseType(n)
	if !ok {
		return 0, sc.s.errorf(sc.l, pos, "unknown type %q", n)
	}

	return t, nil
}

func (sc *scanner) kind() (ir.Kind, error) {
	pos := SpaceTab.Skip(sc.b, sc.i)

	n, err := sc.ident()
	if err != nil {
		return 0, err
	}

	k, ok := ir.ParseKind(n)
	if !ok {
		return 0, sc.s.errorf(sc.l, pos, "unknown kind %q", n)
	}

	return k, nil
}

func (sc *scanner) kinds() (ks ir.KindSet, err error) {
	err = sc.list('{', '}', func() error {
		k, err := sc.kind()
		ks = ks.With(k)

		return err
	})

	return ks, err
}

// list reads comma separated items between open and close.
func (sc *scanner) list(open, close byte, item func() error) error {
	if err := sc.expect(open); err != nil {
		return err
	}

	if sc.try(close) {
		return nil
	}

	for {
		if err := item(); err != nil {
			return err
		}

		if sc.try(close) {
			return nil
		}

		if err := sc.expect(','); err != nil {
			return err
		}
	}
}

func (sc *scanner) params() (ps []param, err error) {
	err = sc.list('(', ')', func() error {
		pos := SpaceTab.Skip(sc.b, sc.i)

		n, err := sc.valueName()
		if err != nil {
			return err
		}

		t, err := sc.typ()
		if err != nil {
			return err
		}

		ps = append(ps, param{name: n, typ: t, pos: pos})

		return nil
	})

	return ps, err
}

func (sc *scanner) funcHeader() (d *funcDecl, err error) {
	pos := SpaceTab.Skip(sc.b, sc.i)

	k, err := sc.ident()
	if err != nil {
		return nil, err
	}

	kind, ok := kws.ParseFuncKind(k)
	if !ok {
		return nil, sc.s.errorf(sc.l, pos, "unknown function kind %q", k)
	}

	d = &funcDecl{
		line: sc.l,
		kind: kind,
	}

	d.name, err = sc.ident()
	if err != nil {
		return nil, err
	}

	if d.name == "export" && !sc.peek('(') {
		d.export = true

		d.name, err = sc.ident()
		if err != nil {
			return nil, err
		}
	}

	d.params, err = sc.params()
	if err != nil {
		return nil, err
	}

	if err = sc.expect('{'); err != nil {
		return nil, err
	}

	if !sc.eol() {
		return nil, sc.errorf("unexpected text after function header")
	}

	return d, nil
}

// blockHeader tells if the line is name(...): without consuming it.
func (sc *scanner) blockHeader() bool {
	end, err := Ident(sc.b, sc.i)
	if err != nil {
		return false
	}

	return end < len(sc.b) && sc.b[end] == '('
}

func (sc *scanner) blockDecl() (d *blockDecl, err error) {
	d = &blockDecl{line: sc.l}

	d.name, err = sc.ident()
	if err != nil {
		return nil, err
	}

	d.params, err = sc.params()
	if err != nil {
		return nil, err
	}

	if err = sc.expect(':'); err != nil {
		return nil, err
	}

	if !sc.eol() {
		return nil, sc.errorf("unexpected text after block header")
	}

	return d, nil
}

func (sc *scanner) errorf(format string, args ...any) error {
	return sc.s.errorf(sc.l, sc.i, format, args...)
}
