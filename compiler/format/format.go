package format

import (
	"context"
	"strconv"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/slowlang/kws/compiler/ir"
	"github.com/slowlang/kws/compiler/kws"
)

// Format appends the text form of x to b.
// x is *kws.Factory, []*kws.Func or *kws.Func.
func Format(ctx context.Context, b []byte, x any) ([]byte, error) {
	switch x := x.(type) {
	case *kws.Factory:
		return formatFuncs(ctx, b, x.Funcs())
	case []*kws.Func:
		return formatFuncs(ctx, b, x)
	case *kws.Func:
		return formatFunc(ctx, b, x)
	default:
		return nil, errors.New("unsupported type: %T", x)
	}
}

func formatFuncs(ctx context.Context, b []byte, fs []*kws.Func) (_ []byte, err error) {
	for i, f := range fs {
		if i != 0 {
			b = append(b, '\n')
		}

		b, err = formatFunc(ctx, b, f)
		if err != nil {
			return nil, errors.Wrap(err, "func %v", f.Name())
		}
	}

	return b, nil
}

func formatFunc(ctx context.Context, b []byte, f *kws.Func) (_ []byte, err error) {
	b = app(b, 0, "%v ", f.Kind())

	if f.Export() {
		b = append(b, "export "...)
	}

	b = app(b, 0, "%s(", f.Name())

	for i, t := range f.Captures() {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = app(b, 0, "%v %v", value(f, f.Capture(i)), t)
	}

	b = append(b, ") {\n"...)

	for _, blk := range f.Blocks() {
		b, err = formatBlock(ctx, b, f, blk)
		if err != nil {
			return nil, errors.Wrap(err, "block %v", blk.Name())
		}
	}

	b = append(b, "}\n"...)

	return b, nil
}

func formatBlock(ctx context.Context, b []byte, f *kws.Func, blk *kws.Block) (_ []byte, err error) {
	b = app(b, 0, "%s(", blk.Name())

	for i, t := range blk.Params() {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = app(b, 0, "%v %v", value(f, blk.ParamValues()[i]), t)
	}

	b = append(b, "):\n"...)

	note := ""

	for _, in := range blk.Code() {
		if in.Note != "" && in.Note != note {
			b = app(b, 1, "// %s\n", in.Note)
		}

		note = in.Note

		b, err = formatInstr(ctx, b, f, &in)
		if err != nil {
			return nil, errors.Wrap(err, "instr %v", in.Op)
		}
	}

	return b, nil
}

func formatInstr(ctx context.Context, b []byte, f *kws.Func, in *kws.Instr) (_ []byte, err error) {
	b = app(b, 1, "")

	if !in.Out.IsZero() {
		b = app(b, 0, "%v = ", value(f, in.Out))
	}

	b = append(b, in.Op.String()...)

	switch in.Op {
	case ir.OpBr, ir.OpBrZ, ir.OpBrAA, ir.OpBrIA, ir.OpBrFA:
		b = sep(b, 0)
		b = values(b, f, in.Args)

		for i, t := range in.Targets {
			b = sep(b, len(in.Args)+i)
			b = target(b, f, t)
		}
	case ir.OpBrA:
		b = sep(b, 0)
		b = values(b, f, in.Args)
		b = append(b, ", {"...)

		for i, a := range in.Arms {
			if i != 0 {
				b = append(b, ", "...)
			}

			b = app(b, 0, "%s: ", a.Kind.Name())
			b = target(b, f, a.Target)
		}

		b = append(b, '}')

		if len(in.Imms) != 0 {
			b = app(b, 0, ", %s", strconv.Quote(in.Imms[0].(string)))
		}
	case ir.OpError:
		b = sep(b, 0)
		b = values(b, f, in.Args)
	case ir.OpRet:
		b = sep(b, 0)
		b = values(b, f, in.Args)

		if len(in.Lists) != 0 {
			b = append(b, ", "...)
			b = list(b, f, in.Lists[0])
		}
	case ir.OpAccess:
		callee, _ := in.Imms[0].(*kws.Func)

		b = app(b, 0, " %s, ", callee.Name())
		b = list(b, f, in.Lists[0])
	default:
		b, err = operands(b, f, in)
		if err != nil {
			return nil, err
		}
	}

	b = append(b, '\n')

	return b, nil
}

func operands(b []byte, f *kws.Func, in *kws.Instr) ([]byte, error) {
	var args, lists, imms int

	for i, c := range []byte(in.Op.Info().Sig) {
		b = sep(b, i)

		switch c {
		case 'v':
			if args == len(in.Args) {
				return nil, errors.New("missing value operand %d", args)
			}

			b = append(b, value(f, in.Args[args])...)
			args++
		case 'V':
			if lists == len(in.Lists) {
				return nil, errors.New("missing list operand %d", lists)
			}

			b = list(b, f, in.Lists[lists])
			lists++
		default:
			if imms == len(in.Imms) {
				return nil, errors.New("missing immediate operand %d", imms)
			}

			b = immediate(b, c, in.Imms[imms])
			imms++
		}
	}

	return b, nil
}

func immediate(b []byte, c byte, x any) []byte {
	switch x := x.(type) {
	case string:
		return strconv.AppendQuote(b, x)
	case []string:
		b = append(b, '[')

		for i, s := range x {
			if i != 0 {
				b = append(b, ", "...)
			}

			b = strconv.AppendQuote(b, s)
		}

		return append(b, ']')
	case int64:
		return strconv.AppendInt(b, x, 10)
	case float64:
		return strconv.AppendFloat(b, x, 'g', -1, 64)
	case bool:
		return strconv.AppendBool(b, x)
	case []byte:
		return strconv.AppendQuote(b, string(x))
	case ir.Type:
		return append(b, x.String()...)
	case ir.KindSet:
		b = append(b, '{')

		i := 0

		x.Range(func(k ir.Kind) bool {
			if i != 0 {
				b = append(b, ", "...)
			}

			b = append(b, k.Name()...)
			i++

			return true
		})

		return append(b, '}')
	default:
		return app(b, 0, "<%c: %v>", c, x)
	}
}

func target(b []byte, f *kws.Func, t kws.Target) []byte {
	b = append(b, t.Block.Name()...)
	b = append(b, '(')
	b = values(b, f, t.Args)

	return append(b, ')')
}

func list(b []byte, f *kws.Func, l []kws.Value) []byte {
	b = append(b, '[')
	b = values(b, f, l)

	return append(b, ']')
}

func values(b []byte, f *kws.Func, l []kws.Value) []byte {
	for i, v := range l {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = append(b, value(f, v)...)
	}

	return b
}

// value names values of f by id, values of other functions by function and id.
func value(f *kws.Func, v kws.Value) string {
	switch {
	case v.IsZero():
		return "%nil"
	case v.Func() != f:
		return "%" + v.Func().Name() + "." + strconv.Itoa(v.ID())
	case v.ID() < 0:
		return "%?"
	}

	return v.String()
}

func sep(b []byte, i int) []byte {
	if i == 0 {
		return append(b, ' ')
	}

	return append(b, ", "...)
}

func app(b []byte, d int, f string, args ...any) []byte {
	const tabs = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"
	b = append(b, tabs[:d]...)
	b = hfmt.AppendPrintf(b, f, args...)
	return b
}
