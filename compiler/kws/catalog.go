package kws

import "github.com/slowlang/kws/compiler/ir"

// One method per non-terminal instruction. Each checks that the block is
// still alive and that every operand comes from the same function.

func (b *Block) AddF(left, right Value) Value { return b.op(ir.OpAddF, left, right) }
func (b *Block) AddI(left, right Value) Value { return b.op(ir.OpAddI, left, right) }
func (b *Block) AddN(source Value, names ...string) Value {
	return b.Emit(Instr{Op: ir.OpAddN, Args: []Value{source}, Imms: []any{names}})
}
func (b *Block) AddNA(source, value Value) Value   { return b.op(ir.OpAddNA, source, value) }
func (b *Block) AddNI(source, ordinal Value) Value { return b.op(ir.OpAddNI, source, ordinal) }
func (b *Block) AddNR(source, frame Value) Value   { return b.op(ir.OpAddNR, source, frame) }
func (b *Block) AddNS(source, name Value) Value    { return b.op(ir.OpAddNS, source, name) }
func (b *Block) AdjacentF(name, definition Value) Value {
	return b.op(ir.OpAdjacentF, name, definition)
}
func (b *Block) AdjacentI(name, definition Value) Value {
	return b.op(ir.OpAdjacentI, name, definition)
}
func (b *Block) AdjacentS(name, definition Value) Value {
	return b.op(ir.OpAdjacentS, name, definition)
}
func (b *Block) AdjacentZ(name, definition Value) Value {
	return b.op(ir.OpAdjacentZ, name, definition)
}
func (b *Block) AlwaysIncludeF(name, key Value) Value { return b.op(ir.OpAlwaysIncludeF, name, key) }
func (b *Block) AlwaysIncludeI(name, key Value) Value { return b.op(ir.OpAlwaysIncludeI, name, key) }
func (b *Block) AlwaysIncludeS(name, key Value) Value { return b.op(ir.OpAlwaysIncludeS, name, key) }
func (b *Block) AlwaysIncludeZ(name, key Value) Value { return b.op(ir.OpAlwaysIncludeZ, name, key) }
func (b *Block) AndG(groupers ...Value) Value {
	return b.Emit(Instr{Op: ir.OpAndG, Lists: [][]Value{groupers}})
}
func (b *Block) AndI(left, right Value) Value { return b.op(ir.OpAndI, left, right) }
func (b *Block) Atos(value Value) Value       { return b.op(ir.OpAtos, value) }
func (b *Block) Atoz(value Value, include ir.KindSet) Value {
	return b.Emit(Instr{Op: ir.OpAtoz, Args: []Value{value}, Imms: []any{include}})
}
func (b *Block) Bin(value []byte) Value { return b.Emit(Instr{Op: ir.OpBin, Imms: []any{value}}) }
func (b *Block) Boundary(definition, trailing Value) Value {
	return b.op(ir.OpBoundary, definition, trailing)
}
func (b *Block) Btoa(value Value) Value { return b.op(ir.OpBtoa, value) }
func (b *Block) BucketsF(definition, count Value) Value {
	return b.op(ir.OpBucketsF, definition, count)
}
func (b *Block) BucketsI(definition, count Value) Value {
	return b.op(ir.OpBucketsI, definition, count)
}
func (b *Block) BucketsS(definition, count Value) Value {
	return b.op(ir.OpBucketsS, definition, count)
}
func (b *Block) CallD(definition, context Value) Value { return b.op(ir.OpCallD, definition, context) }
func (b *Block) CallO(override, context, original Value) Value {
	return b.op(ir.OpCallO, override, context, original)
}
func (b *Block) CatE(context Value, chains ...Value) Value {
	return b.Emit(Instr{Op: ir.OpCatE, Args: []Value{context}, Lists: [][]Value{chains}})
}
func (b *Block) CatKe(definition, chain Value) Value { return b.op(ir.OpCatKe, definition, chain) }
func (b *Block) CatR(context, first, second Value) Value {
	return b.op(ir.OpCatR, context, first, second)
}
func (b *Block) CatRc(head, tail Value) Value     { return b.op(ir.OpCatRc, head, tail) }
func (b *Block) CatS(first, second Value) Value   { return b.op(ir.OpCatS, first, second) }
func (b *Block) ChunkE(width Value) Value         { return b.op(ir.OpChunkE, width) }
func (b *Block) CmpF(left, right Value) Value     { return b.op(ir.OpCmpF, left, right) }
func (b *Block) CmpI(left, right Value) Value     { return b.op(ir.OpCmpI, left, right) }
func (b *Block) CmpS(left, right Value) Value     { return b.op(ir.OpCmpS, left, right) }
func (b *Block) CmpZ(left, right Value) Value     { return b.op(ir.OpCmpZ, left, right) }
func (b *Block) Contextual() Value                { return b.op(ir.OpContextual) }
func (b *Block) CountW(count Value) Value         { return b.op(ir.OpCountW, count) }
func (b *Block) CrosstabF(key Value) Value        { return b.op(ir.OpCrosstabF, key) }
func (b *Block) CrosstabI(key Value) Value        { return b.op(ir.OpCrosstabI, key) }
func (b *Block) CrosstabS(key Value) Value        { return b.op(ir.OpCrosstabS, key) }
func (b *Block) CrosstabZ(key Value) Value        { return b.op(ir.OpCrosstabZ, key) }
func (b *Block) CtrC(value Value) Value           { return b.op(ir.OpCtrC, value) }
func (b *Block) CtrR(frame Value) Value           { return b.op(ir.OpCtrR, frame) }
func (b *Block) CtxtR(context, frame Value) Value { return b.op(ir.OpCtxtR, context, frame) }
func (b *Block) DebugD(definition, context Value) Value {
	return b.op(ir.OpDebugD, definition, context)
}
func (b *Block) DiscGF(name, getter Value) Value    { return b.op(ir.OpDiscGF, name, getter) }
func (b *Block) DiscGI(name, getter Value) Value    { return b.op(ir.OpDiscGI, name, getter) }
func (b *Block) DiscGS(name, getter Value) Value    { return b.op(ir.OpDiscGS, name, getter) }
func (b *Block) DiscGZ(name, getter Value) Value    { return b.op(ir.OpDiscGZ, name, getter) }
func (b *Block) DisperseI(frame, name, value Value) { b.op(ir.OpDisperseI, frame, name, value) }
func (b *Block) DisperseS(frame, name, value Value) { b.op(ir.OpDisperseS, frame, name, value) }
func (b *Block) DivF(left, right Value) Value       { return b.op(ir.OpDivF, left, right) }
func (b *Block) DivI(left, right Value) Value       { return b.op(ir.OpDivI, left, right) }
func (b *Block) DropEd(source, clause Value) Value  { return b.op(ir.OpDropEd, source, clause) }
func (b *Block) DropEi(source, count Value) Value   { return b.op(ir.OpDropEi, source, count) }
func (b *Block) DropX(name Value) Value             { return b.op(ir.OpDropX, name) }
func (b *Block) DroplEi(source, count Value) Value  { return b.op(ir.OpDroplEi, source, count) }
func (b *Block) DurationF(definition, duration Value) Value {
	return b.op(ir.OpDurationF, definition, duration)
}
func (b *Block) DurationI(definition, duration Value) Value {
	return b.op(ir.OpDurationI, definition, duration)
}
func (b *Block) EtoaAo(source, initial, reducer Value) Value {
	return b.op(ir.OpEtoaAo, source, initial, reducer)
}
func (b *Block) EtoaD(source, extractor Value) Value { return b.op(ir.OpEtoaD, source, extractor) }
func (b *Block) EtoaDd(source, extractor, alternate Value) Value {
	return b.op(ir.OpEtoaDd, source, extractor, alternate)
}
func (b *Block) Etod(source, computeValue Value) Value { return b.op(ir.OpEtod, source, computeValue) }
func (b *Block) EtodA(source, computeValue, empty Value) Value {
	return b.op(ir.OpEtodA, source, computeValue, empty)
}
func (b *Block) EtoeG(source Value, groupers ...Value) Value {
	return b.Emit(Instr{Op: ir.OpEtoeG, Args: []Value{source}, Lists: [][]Value{groupers}})
}
func (b *Block) EtoeM(source, initial, reducer Value) Value {
	return b.op(ir.OpEtoeM, source, initial, reducer)
}
func (b *Block) EtoeU(source, flattener Value) Value { return b.op(ir.OpEtoeU, source, flattener) }
func (b *Block) Etoi(source Value) Value             { return b.op(ir.OpEtoi, source) }
func (b *Block) EtorAo(source, initial, reducer Value) Value {
	return b.op(ir.OpEtorAo, source, initial, reducer)
}
func (b *Block) EtorI(source, computeValue Value) Value {
	return b.op(ir.OpEtorI, source, computeValue)
}
func (b *Block) EtorS(source, computeName, computeValue Value) Value {
	return b.op(ir.OpEtorS, source, computeName, computeValue)
}
func (b *Block) Ext(uri string) Value             { return b.Emit(Instr{Op: ir.OpExt, Imms: []any{uri}}) }
func (b *Block) Float(value float64) Value        { return b.Emit(Instr{Op: ir.OpFloat, Imms: []any{value}}) }
func (b *Block) FiltE(source, clause Value) Value { return b.op(ir.OpFiltE, source, clause) }
func (b *Block) Ftoa(value Value) Value           { return b.op(ir.OpFtoa, value) }
func (b *Block) Ftoi(value Value) Value           { return b.op(ir.OpFtoi, value) }
func (b *Block) Ftos(value Value) Value           { return b.op(ir.OpFtos, value) }
func (b *Block) GatherI(frame, name Value) Value  { return b.op(ir.OpGatherI, frame, name) }
func (b *Block) GatherS(frame, name Value) Value  { return b.op(ir.OpGatherS, frame, name) }
func (b *Block) Int(value int64) Value            { return b.Emit(Instr{Op: ir.OpInt, Imms: []any{value}}) }
func (b *Block) ID(frame Value) Value             { return b.op(ir.OpID, frame) }
func (b *Block) Import(name string, returnType ir.Type, arguments ...Value) Value {
	return b.Emit(Instr{Op: ir.OpImport, Lists: [][]Value{arguments}, Imms: []any{name, returnType}})
}
func (b *Block) InfF() Value                { return b.op(ir.OpInfF) }
func (b *Block) IsFinite(value Value) Value { return b.op(ir.OpIsFinite, value) }
func (b *Block) IsNaN(value Value) Value    { return b.op(ir.OpIsNaN, value) }
func (b *Block) Itoa(value Value) Value     { return b.op(ir.OpItoa, value) }
func (b *Block) Itof(value Value) Value     { return b.op(ir.OpItof, value) }
func (b *Block) Itos(value Value) Value     { return b.op(ir.OpItos, value) }
func (b *Block) Itoz(reference int64, value Value) Value {
	return b.Emit(Instr{Op: ir.OpItoz, Args: []Value{value}, Imms: []any{reference}})
}
func (b *Block) Ktol(name, context, definition Value) Value {
	return b.op(ir.OpKtol, name, context, definition)
}
func (b *Block) LenB(blob Value) Value { return b.op(ir.OpLenB, blob) }
func (b *Block) LenS(str Value) Value  { return b.op(ir.OpLenS, str) }
func (b *Block) LetE(source Value, builder ...Value) Value {
	return b.Emit(Instr{Op: ir.OpLetE, Args: []Value{source}, Lists: [][]Value{builder}})
}
func (b *Block) Lookup(context Value, names ...string) Value {
	return b.Emit(Instr{Op: ir.OpLookup, Args: []Value{context}, Imms: []any{names}})
}
func (b *Block) LookupL(handler, context, names Value) Value {
	return b.op(ir.OpLookupL, handler, context, names)
}
func (b *Block) Ltoa(value Value) Value       { return b.op(ir.OpLtoa, value) }
func (b *Block) MaxF() Value                  { return b.op(ir.OpMaxF) }
func (b *Block) MaxI() Value                  { return b.op(ir.OpMaxI) }
func (b *Block) MaxZ() Value                  { return b.op(ir.OpMaxZ) }
func (b *Block) MinF() Value                  { return b.op(ir.OpMinF) }
func (b *Block) MinI() Value                  { return b.op(ir.OpMinI) }
func (b *Block) MinZ() Value                  { return b.op(ir.OpMinZ) }
func (b *Block) ModF(left, right Value) Value { return b.op(ir.OpModF, left, right) }
func (b *Block) ModI(left, right Value) Value { return b.op(ir.OpModI, left, right) }
func (b *Block) Mtoe(context, initial, definition Value) Value {
	return b.op(ir.OpMtoe, context, initial, definition)
}
func (b *Block) MulF(left, right Value) Value     { return b.op(ir.OpMulF, left, right) }
func (b *Block) MulI(left, right Value) Value     { return b.op(ir.OpMulI, left, right) }
func (b *Block) NanF() Value                      { return b.op(ir.OpNanF) }
func (b *Block) NegF(value Value) Value           { return b.op(ir.OpNegF, value) }
func (b *Block) NegI(value Value) Value           { return b.op(ir.OpNegI, value) }
func (b *Block) NewG(name, collector Value) Value { return b.op(ir.OpNewG, name, collector) }
func (b *Block) NewGA(name, value Value) Value    { return b.op(ir.OpNewGA, name, value) }
func (b *Block) NewP(source, intersect Value, zippers ...Value) Value {
	return b.Emit(Instr{Op: ir.OpNewP, Args: []Value{source, intersect}, Lists: [][]Value{zippers}})
}
func (b *Block) NewPI(name Value) Value        { return b.op(ir.OpNewPI, name) }
func (b *Block) NewPR(name, frame Value) Value { return b.op(ir.OpNewPR, name, frame) }
func (b *Block) NewPS(name Value) Value        { return b.op(ir.OpNewPS, name) }
func (b *Block) NewR(selfIsThis, context Value, gatherers, builder []Value) Value {
	return b.Emit(Instr{Op: ir.OpNewR, Args: []Value{selfIsThis, context}, Lists: [][]Value{gatherers, builder}})
}
func (b *Block) NewRI(context, start, end Value) Value { return b.op(ir.OpNewRI, context, start, end) }
func (b *Block) NewT(context Value, gatherers, builder []Value) Value {
	return b.Emit(Instr{Op: ir.OpNewT, Args: []Value{context}, Lists: [][]Value{gatherers, builder}})
}
func (b *Block) NewXIa(ordinal, value Value) Value   { return b.op(ir.OpNewXIa, ordinal, value) }
func (b *Block) NewXSa(name, value Value) Value      { return b.op(ir.OpNewXSa, name, value) }
func (b *Block) NewXSd(name, definition Value) Value { return b.op(ir.OpNewXSd, name, definition) }
func (b *Block) NewXSo(name, override Value) Value   { return b.op(ir.OpNewXSo, name, override) }
func (b *Block) NilA() Value                         { return b.op(ir.OpNilA) }
func (b *Block) NilC() Value                         { return b.op(ir.OpNilC) }
func (b *Block) NilN() Value                         { return b.op(ir.OpNilN) }
func (b *Block) NilR() Value                         { return b.op(ir.OpNilR) }
func (b *Block) NilW() Value                         { return b.op(ir.OpNilW) }
func (b *Block) NotG(value Value) Value              { return b.op(ir.OpNotG, value) }
func (b *Block) NotI(value Value) Value              { return b.op(ir.OpNotI, value) }
func (b *Block) NotZ(value Value) Value              { return b.op(ir.OpNotZ, value) }
func (b *Block) OrG(groupers ...Value) Value {
	return b.Emit(Instr{Op: ir.OpOrG, Lists: [][]Value{groupers}})
}
func (b *Block) OrI(left, right Value) Value { return b.op(ir.OpOrI, left, right) }
func (b *Block) OrdEF(source, ascending, clause Value) Value {
	return b.op(ir.OpOrdEF, source, ascending, clause)
}
func (b *Block) OrdEI(source, ascending, clause Value) Value {
	return b.op(ir.OpOrdEI, source, ascending, clause)
}
func (b *Block) OrdES(source, ascending, clause Value) Value {
	return b.op(ir.OpOrdES, source, ascending, clause)
}
func (b *Block) OrdEZ(source, ascending, clause Value) Value {
	return b.op(ir.OpOrdEZ, source, ascending, clause)
}
func (b *Block) Powerset(groupers ...Value) Value {
	return b.Emit(Instr{Op: ir.OpPowerset, Lists: [][]Value{groupers}})
}
func (b *Block) PrivCr(context, frame Value) Value     { return b.op(ir.OpPrivCr, context, frame) }
func (b *Block) PrivX(inner Value) Value               { return b.op(ir.OpPrivX, inner) }
func (b *Block) RequireX(name Value) Value             { return b.op(ir.OpRequireX, name) }
func (b *Block) RevE(source Value) Value               { return b.op(ir.OpRevE, source) }
func (b *Block) RingG(primitive, size Value) Value     { return b.op(ir.OpRingG, primitive, size) }
func (b *Block) Rtoa(value Value) Value                { return b.op(ir.OpRtoa, value) }
func (b *Block) Rtoe(source, context Value) Value      { return b.op(ir.OpRtoe, source, context) }
func (b *Block) Str(value string) Value                { return b.Emit(Instr{Op: ir.OpStr, Imms: []any{value}}) }
func (b *Block) SealD(definition, context Value) Value { return b.op(ir.OpSealD, definition, context) }
func (b *Block) SealO(definition, context Value) Value { return b.op(ir.OpSealO, definition, context) }
func (b *Block) SessionF(definition, adjacent, maximum Value) Value {
	return b.op(ir.OpSessionF, definition, adjacent, maximum)
}
func (b *Block) SessionI(definition, adjacent, maximum Value) Value {
	return b.op(ir.OpSessionI, definition, adjacent, maximum)
}
func (b *Block) ShI(value, offset Value) Value     { return b.op(ir.OpShI, value, offset) }
func (b *Block) ShufE(source Value) Value          { return b.op(ir.OpShufE, source) }
func (b *Block) Stoa(value Value) Value            { return b.op(ir.OpStoa, value) }
func (b *Block) StripeE(width Value) Value         { return b.op(ir.OpStripeE, width) }
func (b *Block) SubF(left, right Value) Value      { return b.op(ir.OpSubF, left, right) }
func (b *Block) SubI(left, right Value) Value      { return b.op(ir.OpSubI, left, right) }
func (b *Block) TakeEd(source, clause Value) Value { return b.op(ir.OpTakeEd, source, clause) }
func (b *Block) TakeEi(source, count Value) Value  { return b.op(ir.OpTakeEi, source, count) }
func (b *Block) TakelEi(source, count Value) Value { return b.op(ir.OpTakelEi, source, count) }
func (b *Block) Ttoa(value Value) Value            { return b.op(ir.OpTtoa, value) }
func (b *Block) WindowG(length, next Value) Value  { return b.op(ir.OpWindowG, length, next) }
func (b *Block) XorI(left, right Value) Value      { return b.op(ir.OpXorI, left, right) }
func (b *Block) Bool(value bool) Value             { return b.Emit(Instr{Op: ir.OpBool, Imms: []any{value}}) }
func (b *Block) Ztoa(value Value) Value            { return b.op(ir.OpZtoa, value) }
func (b *Block) Ztos(value Value) Value            { return b.op(ir.OpZtos, value) }
