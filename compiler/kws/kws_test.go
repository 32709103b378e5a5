package kws

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/kws/compiler/diag"
	"github.com/slowlang/kws/compiler/ir"
)

//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_diag_test.go github.com/slowlang/kws/compiler/diag Sink

var (
	fAt = diag.Location{File: "a.kws", StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 20}
	gAt = diag.Location{File: "a.kws", StartLine: 10, StartColumn: 1, EndLine: 10, EndColumn: 20}
)

func messages(l *diag.List) (r []string) {
	for _, d := range l.Diagnostics() {
		r = append(r, d.Message)
	}

	return r
}

func TestWellFormed(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)

	f := fc.CreateDefinition(fAt, "f", true, "entry", ir.R)
	entry := f.EntryBlock()

	frame := f.Capture(0)
	ctx := entry.Parameter(0)

	x := entry.Int(1)
	entry.Lookup(ctx, "a", "b")
	sum := entry.AddI(x, x)

	next := f.CreateBlock("next", ir.I)
	entry.Br(next, sum)

	next.Ret(next.Parameter(0))

	f.Finish()

	assert.Empty(t, messages(&l))

	assert.True(t, f.Finished())
	assert.False(t, entry.Alive())
	assert.Equal(t, ir.Any, f.Result())
	assert.Equal(t, []ir.Type{ir.C}, entry.Params())
	assert.Equal(t, 0, frame.ID())
	assert.Equal(t, 1, ctx.ID())
	assert.Same(t, f, x.Func())

	require.Len(t, entry.Code(), 4)
	assert.Equal(t, ir.OpBr, entry.Terminal().Op)
	assert.Equal(t, []Value{x, x}, entry.Code()[2].Args)
	assert.Equal(t, []any{[]string{"a", "b"}}, entry.Code()[1].Imms)
	assert.Same(t, next, f.Block("next"))
	assert.Equal(t, []*Func{f}, fc.Funcs())
}

func TestAfterTerminal(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	b := f.EntryBlock()

	b.Ret(b.Int(1))

	v := b.Int(2)
	b.Ret(v)

	assert.Equal(t, []string{
		"“i” was called after terminal instruction.",
		"“ret” was called after terminal instruction.",
	}, messages(&l))

	assert.False(t, v.IsZero())
	assert.Len(t, b.Code(), 4)
	assert.Same(t, &b.Code()[1], b.Terminal())
}

func TestForeignValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := NewMockSink(ctrl)

	fc := NewFactory(sink, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	g := fc.CreateDefinition(gAt, "g", false, "entry")

	x := f.EntryBlock().Int(1)

	sink.EXPECT().Error(gAt, "“add.i” was called with a value from another function.").Times(1)

	v := g.EntryBlock().AddI(x, x)
	assert.Same(t, g, v.Func())

	sink.EXPECT().Error(gAt, "“access” was called with a value from another function.").Times(1)
	sink.EXPECT().Error(gAt, "“f” requires 0 captures, but 1 were given.").Times(1)

	f.Access(g.EntryBlock(), x)
}

func TestForeignReturn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := NewMockSink(ctrl)

	fc := NewFactory(sink, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	g := fc.CreateDefinition(gAt, "g", false, "entry")

	require.Len(t, f.EntryBlock().Params(), 1)

	h := g.EntryBlock().Str("x")

	sink.EXPECT().Error(fAt, "“ret” was called with a value from another function.").Times(1)

	f.EntryBlock().Ret(h)

	assert.False(t, f.EntryBlock().Alive())

	sink.EXPECT().Error(fAt, "“i” was called after terminal instruction.").Times(1)

	f.EntryBlock().Int(1)
}

func TestForeignBranchArgs(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	g := fc.CreateDefinition(gAt, "g", false, "entry")

	x := g.EntryBlock().Int(1)
	z := g.EntryBlock().Bool(true)

	next := f.CreateBlock("next", ir.I)
	yes := f.CreateBlock("yes")
	no := f.CreateBlock("no", ir.I)

	f.EntryBlock().Br(next, x)
	next.BrZ(z, yes, nil, no, []Value{x})

	assert.Equal(t, []string{
		"“br” was called with a value from another function.",
		"“br.z” was called with a value from another function.",
		"“br.z” was called with a value from another function.",
	}, messages(&l))

	assert.False(t, f.EntryBlock().Alive())
	assert.False(t, next.Alive())
}

func TestForeignDispatch(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	g := fc.CreateDefinition(gAt, "g", false, "entry")

	b := f.EntryBlock()
	v := b.NilA()

	d := g.EntryBlock().CreateDispatch()
	d.Null(g.CreateBlock("tn"))

	assert.Same(t, g, d.Owner())
	assert.Zero(t, d.Pending())

	b.BrA(v, d, "")

	assert.Equal(t, []string{
		"Dispatch for “br.a” is from another function.",
	}, messages(&l))

	assert.False(t, b.Alive())
}

func TestDispatchReuse(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")

	b := f.EntryBlock()
	other := f.CreateBlock("other")
	arm := f.CreateBlock("arm", ir.I)

	d := b.CreateDispatch()
	d.Int(arm)
	d.Int(arm)

	assert.Equal(t, 1, d.Pending())

	b.BrA(b.NilA(), d, "")
	assert.Zero(t, d.Pending())

	other.BrA(other.NilA(), d, "")

	assert.Equal(t, []string{
		"Attempted to add arm, but block for Int already present.",
	}, messages(&l))
}

func TestAccessSink(t *testing.T) {
	var caller, callee diag.List

	f := NewFactory(&caller, false).CreateDefinition(fAt, "f", false, "entry")
	g := NewFactory(&callee, false).CreateDefinition(gAt, "g", false, "entry", ir.A)

	g.Access(f.EntryBlock())

	assert.Equal(t, []string{"“g” requires 1 captures, but 0 were given."}, messages(&caller))
	assert.Empty(t, callee.Diagnostics())
}

func TestForeignTarget(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	g := fc.CreateDefinition(gAt, "g", false, "entry")

	f.EntryBlock().Br(g.EntryBlock())

	assert.Equal(t, []string{
		"Target block “entry” for “br” is from another function.",
		"Block “entry” takes 1 parameters, but “br” supplies 0.",
	}, messages(&l))
}

func TestDispatch(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	b := f.EntryBlock()

	v := b.NilA()

	ti := f.CreateBlock("ti", ir.I)
	ts := f.CreateBlock("ts", ir.S)
	tn := f.CreateBlock("tn")

	d := b.CreateDispatch()
	d.Int(ti)
	d.Int(ts)
	d.Null(tn)

	assert.Empty(t, messages(&l))
	assert.Equal(t, 1, d.Pending())
	assert.True(t, d.Has(ir.Int))
	assert.Equal(t, ir.MakeKindSet(ir.Int, ir.Null), d.Kinds())

	b.BrA(v, d, "")

	assert.Equal(t, []string{"Attempted to add ts, but block for Int already present."}, messages(&l))
	assert.Zero(t, d.Pending())

	require.Len(t, d.Arms(), 2)
	assert.Same(t, ti, d.Arms()[0].Block)
	assert.Equal(t, ir.Null, d.Arms()[1].Kind)

	in := b.Terminal()
	require.NotNil(t, in)
	assert.Equal(t, ir.OpBrA, in.Op)
	assert.Empty(t, in.Imms)
}

func TestDispatchEmpty(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	b := f.EntryBlock()

	b.BrA(b.NilA(), b.CreateDispatch(), "no such kind")

	assert.Equal(t, []string{"br.a has no branches."}, messages(&l))
	assert.Equal(t, []any{"no such kind"}, b.Terminal().Imms)
}

func TestDispatchArms(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	g := fc.CreateDefinition(gAt, "g", false, "entry")
	b := f.EntryBlock()

	v := b.NilA()

	d := b.CreateDispatch()
	d.Str(g.CreateBlock("gs", ir.S))
	d.Float(f.CreateBlock("tf"))
	d.Bool(f.CreateBlock("tz", ir.S, ir.Z), g.EntryBlock().NilA())

	b.BrA(v, d, "")

	assert.Equal(t, []string{
		"Block for Str is not in the same function.",
		"Block “tf” for Float takes 0 parameters, but 1 are supplied.",
		"Value from function “g” used out of context.",
	}, messages(&l))
}

func TestReturnConvention(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)

	acc := fc.CreateAccumulator(fAt, "acc", false, "entry")
	b := acc.EntryBlock()
	assert.Equal(t, []ir.Type{ir.C, ir.A}, b.Params())

	b.Ret(b.Parameter(1))

	assert.Equal(t, []string{"Incorrect return used."}, messages(&l))

	l.Reset()

	ok := fc.CreateAccumulator(fAt, "ok", false, "entry")
	b = ok.EntryBlock()
	b.RetAccumulator(b.Parameter(1), b.NilA())

	assert.Empty(t, messages(&l))
	assert.Len(t, b.Terminal().Lists, 1)

	def := fc.CreateDefinition(gAt, "def", false, "entry")
	b = def.EntryBlock()
	b.RetAccumulator(b.Parameter(0))

	assert.Equal(t, []string{"Incorrect return used."}, messages(&l))
	assert.Equal(t, [][]Value{{}}, b.Terminal().Lists)
}

func TestFinish(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")

	b1 := f.CreateBlock("b1")
	b2 := f.CreateBlock("b2")

	f.EntryBlock().Br(b1)
	b1.Br(b2)

	f.Finish()

	ds := l.Diagnostics()
	require.Len(t, ds, 1)
	assert.Equal(t, "Block “b2” has no terminal instruction.", ds[0].Message)
	assert.Equal(t, fAt, ds[0].Location)
}

func TestFileFunc(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, true)

	f1 := fc.CreateFile(fAt, "file", "entry")
	f2 := fc.CreateFile(gAt, "file2", "entry")

	ds := l.Diagnostics()
	require.Len(t, ds, 1)
	assert.Equal(t, "File function has already been created.", ds[0].Message)
	assert.Equal(t, gAt, ds[0].Location)

	assert.Same(t, f1, fc.FileFunc())
	assert.Equal(t, []*Func{f1, f2}, fc.Funcs())
	assert.Equal(t, []ir.Type{ir.C}, f1.EntryBlock().Params())
	assert.Equal(t, File, f1.Kind())

	var l2 diag.List

	f3 := NewFactory(&l2, false).Create(File, fAt, "file", false, "entry", ir.A)

	assert.Empty(t, f3.EntryBlock().Params())
	assert.Equal(t, []string{"File function “file” can't have captures."}, messages(&l2))
}

func TestFactoryKinds(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)

	for _, tc := range []struct {
		kind   FuncKind
		params []ir.Type
		result ir.Result
	}{
		{Definition, []ir.Type{ir.C}, ir.Any},
		{Accumulator, []ir.Type{ir.C, ir.A}, ir.Accumulator},
		{Collector, []ir.Type{ir.C, ir.R}, ir.Any},
		{Distributor, []ir.Type{ir.C}, ir.Fricassee},
		{Override, []ir.Type{ir.C, ir.A}, ir.Any},
	} {
		f := fc.Create(tc.kind, fAt, tc.kind.String(), false, "entry")

		assert.Equal(t, tc.kind, f.Kind(), "%v", tc.kind)
		assert.Equal(t, tc.params, f.EntryBlock().Params(), "%v", tc.kind)
		assert.Equal(t, tc.result, f.Result(), "%v", tc.kind)

		k, ok := ParseFuncKind(tc.kind.String())
		assert.True(t, ok)
		assert.Equal(t, tc.kind, k)
	}

	assert.Empty(t, messages(&l))
}

func TestArity(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	b := f.EntryBlock()

	next := f.CreateBlock("next", ir.I)
	b.Br(next)

	assert.Equal(t, []string{"Block “next” takes 1 parameters, but “br” supplies 0."}, messages(&l))

	l.Reset()

	g := fc.CreateDefinition(gAt, "g", false, "entry")
	b = g.EntryBlock()

	in := g.CreateBlock("in", ir.A, ir.I, ir.I)
	fl := g.CreateBlock("fl", ir.F)

	x := b.NilA()
	b.BrAA(x, x, in, []Value{x}, fl, nil)

	assert.Equal(t, []string{"Block “fl” takes 1 parameters, but “br.aa” supplies 2."}, messages(&l))

	l.Reset()

	h := fc.CreateDefinition(gAt, "h", false, "entry")
	b = h.EntryBlock()

	y := b.NilA()
	b.BrFA(y, y, h.CreateBlock("ff", ir.F))

	assert.Empty(t, messages(&l))
}

func TestDuplicateBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := NewMockSink(ctrl)

	fc := NewFactory(sink, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")

	xAt := diag.Location{File: "a.kws", StartLine: 5, StartColumn: 1, EndLine: 5, EndColumn: 4}

	first := f.CreateBlockAt(gAt, "x")
	assert.Equal(t, gAt, first.Declared())
	assert.Equal(t, gAt, first.Location())

	sink.EXPECT().Conflict("Block “x” is defined multiple times in “f”.",
		diag.Site{Location: gAt, Message: "first defined here"},
		diag.Site{Location: xAt, Message: "defined again in this function"},
	).Times(1)

	second := f.CreateBlockAt(xAt, "x")

	assert.Same(t, first, f.Block("x"))
	assert.NotSame(t, first, second)
	assert.Len(t, f.Blocks(), 3)

	sink.EXPECT().Conflict("Block “entry” is defined multiple times in “f”.",
		diag.Site{Location: fAt, Message: "first defined here"},
		diag.Site{Location: fAt, Message: "defined again in this function"},
	).Times(1)

	third := f.CreateBlock("entry")
	assert.Equal(t, fAt, third.Declared())
}

func TestAccess(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	g := fc.CreateDefinition(gAt, "g", false, "entry", ir.A, ir.A)

	b := f.EntryBlock()
	x := b.NilA()

	v := g.Access(b, x)

	assert.Equal(t, []string{"“g” requires 2 captures, but 1 were given."}, messages(&l))
	assert.Same(t, f, v.Func())

	in := b.Code()[1]
	assert.Equal(t, ir.OpAccess, in.Op)
	assert.Equal(t, []any{g}, in.Imms)
	assert.Equal(t, [][]Value{{x}}, in.Lists)
}

func TestOutOfBounds(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	b := f.EntryBlock()

	p := b.Parameter(5)
	c := f.Capture(0)

	assert.Equal(t, []string{
		"Parameter 5 out of bounds for block “entry”.",
		"Capture 0 out of bounds for function “f”.",
	}, messages(&l))

	assert.Equal(t, -1, p.ID())
	assert.Equal(t, "%?", p.String())
	assert.Equal(t, -1, c.ID())
	assert.Same(t, f, c.Func())
}

func TestEmit(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	b := f.EntryBlock()

	assert.Panics(t, func() { b.Emit(Instr{Op: ir.OpRet}) })
	assert.Panics(t, func() { b.Emit(Instr{Op: ir.OpAccess}) })

	x := b.Str("x")
	frame := b.NilA()

	b.DisperseI(frame, x, x)

	in := b.Code()[2]
	assert.Equal(t, ir.OpDisperseI, in.Op)
	assert.True(t, in.Out.IsZero())

	v := b.Emit(Instr{Op: ir.OpAtoz, Args: []Value{x}, Imms: []any{ir.MakeKindSet(ir.Int)}})
	assert.False(t, v.IsZero())
	assert.Equal(t, "%3", v.String())

	assert.Empty(t, messages(&l))
}

func TestUpdate(t *testing.T) {
	var l diag.List

	fc := NewFactory(&l, false)
	f := fc.CreateDefinition(fAt, "f", false, "entry")
	b := f.EntryBlock()

	assert.Equal(t, fAt, b.Location())

	at := diag.Location{File: "a.kws", StartLine: 3, StartColumn: 2, EndLine: 3, EndColumn: 9}

	b.Update(at, "x := 1")
	b.Ret(b.Int(1))
	b.Int(2)

	ds := l.Diagnostics()
	require.Len(t, ds, 1)
	assert.Equal(t, at, ds[0].Location)

	assert.Equal(t, at, b.Code()[0].Location)
	assert.Equal(t, "x := 1", b.Code()[0].Note)
}
