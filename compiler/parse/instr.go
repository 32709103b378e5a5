package parse

import (
	"context"

	"tlog.app/go/tlog"

	"github.com/slowlang/kws/compiler/ir"
	"github.com/slowlang/kws/compiler/kws"
)

type asm struct {
	s  *State
	fc *kws.Factory

	funcs  map[string]*kws.Func
	values map[string]kws.Value

	fn *funcDecl
}

// issue calls the builder methods for every instruction of d in text order.
func (a *asm) issue(ctx context.Context, d *funcDecl) error {
	a.fn = d

	for i, p := range d.params {
		a.values[p.name] = d.fn.Capture(i)
	}

	for _, bd := range d.blocks {
		b := bd.blk

		b.Update(a.s.location(bd.line), "")

		for i, p := range bd.params {
			a.values[p.name] = b.Parameter(i)
		}

		for _, l := range bd.code {
			b.Update(a.s.location(l), "")

			err := a.instr(ctx, b, l)
			if err != nil {
				return err
			}
		}
	}

	d.fn.Finish()

	if tr := tlog.SpanFromContext(ctx); tr.If("assemble") {
		tr.Printw("function issued", "func", d.name, "kind", d.kind, "blocks", len(d.blocks))
	}

	return nil
}

func (a *asm) instr(ctx context.Context, b *kws.Block, l line) (err error) {
	sc := a.s.scan(l)

	var out string

	if sc.peek('%') {
		out, err = sc.valueName()
		if err != nil {
			return err
		}

		if err = sc.expect('='); err != nil {
			return err
		}
	}

	pos := SpaceTab.Skip(sc.b, sc.i)

	name, err := sc.ident()
	if err != nil {
		return err
	}

	op, ok := ir.ParseOp(name)
	if !ok {
		return a.s.errorf(l, pos, "unknown instruction %q", name)
	}

	info := op.Info()

	if out != "" && (info.Terminal || info.Void) {
		return a.s.errorf(l, l.st, "%v has no result", op)
	}

	var res kws.Value

	switch op {
	case ir.OpBr, ir.OpBrZ, ir.OpBrAA, ir.OpBrIA, ir.OpBrFA, ir.OpBrA, ir.OpError, ir.OpRet:
		err = a.terminal(sc, b, op)
	case ir.OpAccess:
		res, err = a.access(sc, b)
	default:
		res, err = a.emit(sc, b, op)
	}
	if err != nil {
		return err
	}

	if !sc.eol() {
		return sc.errorf("unexpected text after %v", op)
	}

	if out != "" {
		a.values[out] = res
	}

	return nil
}

func (a *asm) emit(sc *scanner, b *kws.Block, op ir.Op) (kws.Value, error) {
	in := kws.Instr{Op: op}

	for i, c := range []byte(op.Info().Sig) {
		if i != 0 {
			if err := sc.expect(','); err != nil {
				return kws.Value{}, err
			}
		}

		var x any
		var err error

		switch c {
		case 'v':
			var v kws.Value

			v, err = a.value(sc)
			if err != nil {
				return kws.Value{}, err
			}

			in.Args = append(in.Args, v)

			continue
		case 'V':
			var l []kws.Value

			l, err = a.valueList(sc)
			if err != nil {
				return kws.Value{}, err
			}

			in.Lists = append(in.Lists, l)

			continue
		case 's':
			x, err = sc.quoted()
		case 'S':
			x, err = sc.strings()
		case 'i':
			x, err = sc.int()
		case 'f':
			x, err = sc.float()
		case 'z':
			x, err = sc.bool()
		case 'b':
			var s string

			s, err = sc.quoted()
			x = []byte(s)
		case 't':
			x, err = sc.typ()
		case 'K':
			x, err = sc.kinds()
		default:
			panic(c)
		}
		if err != nil {
			return kws.Value{}, err
		}

		in.Imms = append(in.Imms, x)
	}

	return b.Emit(in), nil
}

func (a *asm) terminal(sc *scanner, b *kws.Block, op ir.Op) error {
	switch op {
	case ir.OpBr:
		t, err := a.target(sc)
		if err != nil {
			return err
		}

		b.Br(t.Block, t.Args...)
	case ir.OpBrZ:
		vs, ts, err := a.branch(sc, 1, 2)
		if err != nil {
			return err
		}

		b.BrZ(vs[0], ts[0].Block, ts[0].Args, ts[1].Block, ts[1].Args)
	case ir.OpBrAA, ir.OpBrIA:
		vs, ts, err := a.branch(sc, 2, 2)
		if err != nil {
			return err
		}

		if op == ir.OpBrAA {
			b.BrAA(vs[0], vs[1], ts[0].Block, ts[0].Args, ts[1].Block, ts[1].Args)
		} else {
			b.BrIA(vs[0], vs[1], ts[0].Block, ts[0].Args, ts[1].Block, ts[1].Args)
		}
	case ir.OpBrFA:
		vs, ts, err := a.branch(sc, 2, 1)
		if err != nil {
			return err
		}

		b.BrFA(vs[0], vs[1], ts[0].Block, ts[0].Args...)
	case ir.OpBrA:
		return a.dispatch(sc, b)
	case ir.OpError:
		v, err := a.value(sc)
		if err != nil {
			return err
		}

		b.Error(v)
	case ir.OpRet:
		v, err := a.value(sc)
		if err != nil {
			return err
		}

		if !sc.try(',') {
			b.Ret(v)

			return nil
		}

		builders, err := a.valueList(sc)
		if err != nil {
			return err
		}

		b.RetAccumulator(v, builders...)
	}

	return nil
}

// branch reads nv values followed by nt targets.
func (a *asm) branch(sc *scanner, nv, nt int) (vs []kws.Value, ts []kws.Target, err error) {
	for i := 0; i < nv+nt; i++ {
		if i != 0 {
			if err := sc.expect(','); err != nil {
				return nil, nil, err
			}
		}

		if i < nv {
			v, err := a.value(sc)
			if err != nil {
				return nil, nil, err
			}

			vs = append(vs, v)

			continue
		}

		t, err := a.target(sc)
		if err != nil {
			return nil, nil, err
		}

		ts = append(ts, t)
	}

	return vs, ts, nil
}

func (a *asm) dispatch(sc *scanner, b *kws.Block) error {
	v, err := a.value(sc)
	if err != nil {
		return err
	}

	if err = sc.expect(','); err != nil {
		return err
	}

	d := b.CreateDispatch()

	err = sc.list('{', '}', func() error {
		k, err := sc.kind()
		if err != nil {
			return err
		}

		if err = sc.expect(':'); err != nil {
			return err
		}

		t, err := a.target(sc)
		if err != nil {
			return err
		}

		d.Add(k, t.Block, t.Args...)

		return nil
	})
	if err != nil {
		return err
	}

	var msg string

	if sc.try(',') {
		msg, err = sc.quoted()
		if err != nil {
			return err
		}
	}

	b.BrA(v, d, msg)

	return nil
}

func (a *asm) access(sc *scanner, b *kws.Block) (kws.Value, error) {
	pos := SpaceTab.Skip(sc.b, sc.i)

	name, err := sc.ident()
	if err != nil {
		return kws.Value{}, err
	}

	f, ok := a.funcs[name]
	if !ok {
		return kws.Value{}, a.s.errorf(sc.l, pos, "undefined function %q", name)
	}

	if err = sc.expect(','); err != nil {
		return kws.Value{}, err
	}

	captures, err := a.valueList(sc)
	if err != nil {
		return kws.Value{}, err
	}

	return f.Access(b, captures...), nil
}

func (a *asm) target(sc *scanner) (t kws.Target, err error) {
	pos := SpaceTab.Skip(sc.b, sc.i)

	name, err := sc.ident()
	if err != nil {
		return t, err
	}

	t.Block = a.fn.fn.Block(name)
	if t.Block == nil {
		return t, a.s.errorf(sc.l, pos, "undefined block %q", name)
	}

	err = sc.list('(', ')', func() error {
		v, err := a.value(sc)
		t.Args = append(t.Args, v)

		return err
	})

	return t, err
}

func (a *asm) valueList(sc *scanner) (l []kws.Value, err error) {
	err = sc.list('[', ']', func() error {
		v, err := a.value(sc)
		l = append(l, v)

		return err
	})
	if l == nil {
		l = []kws.Value{}
	}

	return l, err
}

func (a *asm) value(sc *scanner) (kws.Value, error) {
	pos := SpaceTab.Skip(sc.b, sc.i)

	n, err := sc.valueName()
	if err != nil {
		return kws.Value{}, err
	}

	v, ok := a.values[n]
	if !ok {
		return kws.Value{}, a.s.errorf(sc.l, pos, "undefined value %%%s", n)
	}

	return v, nil
}
