package format

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/kws/compiler/diag"
	"github.com/slowlang/kws/compiler/ir"
	"github.com/slowlang/kws/compiler/kws"
)

var at = diag.Location{File: "a.kws", StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 10}

func TestFormat(t *testing.T) {
	var l diag.List

	fc := kws.NewFactory(&l, false)

	f := fc.CreateDefinition(at, "f", true, "entry", ir.R)
	b := f.EntryBlock()

	next := f.CreateBlock("next", ir.I, ir.F)
	ti := f.CreateBlock("ti", ir.I)
	tn := f.CreateBlock("tn")

	x := b.Int(3)
	fl := b.Float(1.5)
	s := b.Str(`a"b`)
	k := b.Atoz(x, ir.MakeKindSet(ir.Int, ir.Str))
	imp := b.Import("lib", ir.A, x, fl)
	b.DisperseI(f.Capture(0), s, x)
	b.BrAA(x, k, next, nil, next, nil)

	d := next.CreateDispatch()
	d.Int(ti)
	d.Null(tn)
	next.BrA(imp, d, "bad")

	ti.Ret(ti.Parameter(0))
	tn.Error(s)

	f.Finish()

	require.Empty(t, l.Diagnostics())

	res, err := Format(context.Background(), nil, fc)
	require.NoError(t, err)

	assert.Equal(t, `definition export f(%0 frame) {
entry(%1 context):
	%5 = i 3
	%6 = f 1.5
	%7 = s "a\"b"
	%8 = atoz %5, {int, str}
	%9 = import "lib", any, [%5, %6]
	disperse.i %0, %7, %5
	br.aa %5, %8, next(), next()
next(%2 int, %3 float):
	br.a %9, {int: ti(), null: tn()}, "bad"
ti(%4 int):
	ret %4
tn():
	error %7
}
`, string(res))
}

func TestFormatAccess(t *testing.T) {
	var l diag.List

	fc := kws.NewFactory(&l, true)

	g := fc.CreateAccumulator(at, "g", false, "start", ir.A)
	gb := g.EntryBlock()
	gb.RetAccumulator(g.Capture(0), gb.NilA())

	f := fc.CreateFile(at, "main", "entry")
	b := f.EntryBlock()

	n := b.NilA()
	r := g.Access(b, n)
	b.Lookup(b.Parameter(0), "x")
	b.Bin([]byte{0, 'a'})
	b.Bool(true)
	b.Ret(r)

	require.Empty(t, l.Diagnostics())

	res, err := Format(context.Background(), nil, []*kws.Func{g, f})
	require.NoError(t, err)

	assert.Equal(t, `accumulator g(%0 any) {
start(%1 context, %2 any):
	%3 = nil.a
	ret %0, [%3]
}

file main() {
entry(%0 context):
	%1 = nil.a
	%2 = access g, [%1]
	%3 = lookup %0, ["x"]
	%4 = b "\x00a"
	%5 = z true
	ret %2
}
`, string(res))
}

func TestFormatForeign(t *testing.T) {
	var l diag.List

	fc := kws.NewFactory(&l, false)

	f := fc.CreateDefinition(at, "f", false, "entry")
	g := fc.CreateDefinition(at, "g", false, "entry")

	x := f.EntryBlock().NilA()
	g.EntryBlock().Ret(x)

	res, err := Format(context.Background(), nil, g)
	require.NoError(t, err)

	assert.Contains(t, string(res), "ret %f.1\n")
	assert.Len(t, l.Diagnostics(), 1)

	b := f.EntryBlock()
	b.Update(at, "x := 1")
	b.Ret(b.Int(1))

	res, err = Format(context.Background(), nil, f)
	require.NoError(t, err)

	assert.Contains(t, string(res), "\t// x := 1\n\t%2 = i 1\n\tret %2\n")

	_, err = Format(context.Background(), nil, 5)
	assert.Error(t, err)
}
