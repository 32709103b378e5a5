package ir

type (
	// Op is an entry of the instruction catalog.
	Op uint16

	OpInfo struct {
		Name string

		// Sig lists the operands in call order:
		// v value, V value list, s string, S string list, i int, f float,
		// z bool, b bytes, t type, K kind set.
		Sig string

		Terminal bool
		Void     bool
	}
)

const (
	OpInvalid Op = iota
	OpAddF
	OpAddI
	OpAddN
	OpAddNA
	OpAddNI
	OpAddNR
	OpAddNS
	OpAdjacentF
	OpAdjacentI
	OpAdjacentS
	OpAdjacentZ
	OpAlwaysIncludeF
	OpAlwaysIncludeI
	OpAlwaysIncludeS
	OpAlwaysIncludeZ
	OpAndG
	OpAndI
	OpAtos
	OpAtoz
	OpBin
	OpBoundary
	OpBr
	OpBrA
	OpBrAA
	OpBrFA
	OpBrIA
	OpBrZ
	OpBtoa
	OpBucketsF
	OpBucketsI
	OpBucketsS
	OpCallD
	OpCallO
	OpCatE
	OpCatKe
	OpCatR
	OpCatRc
	OpCatS
	OpChunkE
	OpCmpF
	OpCmpI
	OpCmpS
	OpCmpZ
	OpContextual
	OpCountW
	OpCrosstabF
	OpCrosstabI
	OpCrosstabS
	OpCrosstabZ
	OpCtrC
	OpCtrR
	OpCtxtR
	OpDebugD
	OpDiscGF
	OpDiscGI
	OpDiscGS
	OpDiscGZ
	OpDisperseI
	OpDisperseS
	OpDivF
	OpDivI
	OpDropEd
	OpDropEi
	OpDropX
	OpDroplEi
	OpDurationF
	OpDurationI
	OpError
	OpEtoaAo
	OpEtoaD
	OpEtoaDd
	OpEtod
	OpEtodA
	OpEtoeG
	OpEtoeM
	OpEtoeU
	OpEtoi
	OpEtorAo
	OpEtorI
	OpEtorS
	OpExt
	OpFloat
	OpFiltE
	OpFtoa
	OpFtoi
	OpFtos
	OpGatherI
	OpGatherS
	OpInt
	OpID
	OpImport
	OpInfF
	OpIsFinite
	OpIsNaN
	OpItoa
	OpItof
	OpItos
	OpItoz
	OpKtol
	OpLenB
	OpLenS
	OpLetE
	OpLookup
	OpLookupL
	OpLtoa
	OpMaxF
	OpMaxI
	OpMaxZ
	OpMinF
	OpMinI
	OpMinZ
	OpModF
	OpModI
	OpMtoe
	OpMulF
	OpMulI
	OpNanF
	OpNegF
	OpNegI
	OpNewG
	OpNewGA
	OpNewP
	OpNewPI
	OpNewPR
	OpNewPS
	OpNewR
	OpNewRI
	OpNewT
	OpNewXIa
	OpNewXSa
	OpNewXSd
	OpNewXSo
	OpNilA
	OpNilC
	OpNilN
	OpNilR
	OpNilW
	OpNotG
	OpNotI
	OpNotZ
	OpOrG
	OpOrI
	OpOrdEF
	OpOrdEI
	OpOrdES
	OpOrdEZ
	OpPowerset
	OpPrivCr
	OpPrivX
	OpRequireX
	OpRet
	OpRevE
	OpRingG
	OpRtoa
	OpRtoe
	OpStr
	OpSealD
	OpSealO
	OpSessionF
	OpSessionI
	OpShI
	OpShufE
	OpStoa
	OpStripeE
	OpSubF
	OpSubI
	OpTakeEd
	OpTakeEi
	OpTakelEi
	OpTtoa
	OpWindowG
	OpXorI
	OpBool
	OpZtoa
	OpZtos
	OpAccess

	OpCount
)

var ops = [...]OpInfo{
	OpInvalid:        {Name: "invalid"},
	OpAddF:           {Name: "add.f", Sig: "vv"},
	OpAddI:           {Name: "add.i", Sig: "vv"},
	OpAddN:           {Name: "add.n", Sig: "vS"},
	OpAddNA:          {Name: "add.n.a", Sig: "vv"},
	OpAddNI:          {Name: "add.n.i", Sig: "vv"},
	OpAddNR:          {Name: "add.n.r", Sig: "vv"},
	OpAddNS:          {Name: "add.n.s", Sig: "vv"},
	OpAdjacentF:      {Name: "adjacent.f", Sig: "vv"},
	OpAdjacentI:      {Name: "adjacent.i", Sig: "vv"},
	OpAdjacentS:      {Name: "adjacent.s", Sig: "vv"},
	OpAdjacentZ:      {Name: "adjacent.z", Sig: "vv"},
	OpAlwaysIncludeF: {Name: "alwaysinclude.f", Sig: "vv"},
	OpAlwaysIncludeI: {Name: "alwaysinclude.i", Sig: "vv"},
	OpAlwaysIncludeS: {Name: "alwaysinclude.s", Sig: "vv"},
	OpAlwaysIncludeZ: {Name: "alwaysinclude.z", Sig: "vv"},
	OpAndG:           {Name: "and.g", Sig: "V"},
	OpAndI:           {Name: "and.i", Sig: "vv"},
	OpAtos:           {Name: "atos", Sig: "v"},
	OpAtoz:           {Name: "atoz", Sig: "vK"},
	OpBin:            {Name: "b", Sig: "b"},
	OpBoundary:       {Name: "boundary", Sig: "vv"},
	OpBr:             {Name: "br", Terminal: true},
	OpBrA:            {Name: "br.a", Terminal: true},
	OpBrAA:           {Name: "br.aa", Terminal: true},
	OpBrFA:           {Name: "br.fa", Terminal: true},
	OpBrIA:           {Name: "br.ia", Terminal: true},
	OpBrZ:            {Name: "br.z", Terminal: true},
	OpBtoa:           {Name: "btoa", Sig: "v"},
	OpBucketsF:       {Name: "buckets.f", Sig: "vv"},
	OpBucketsI:       {Name: "buckets.i", Sig: "vv"},
	OpBucketsS:       {Name: "buckets.s", Sig: "vv"},
	OpCallD:          {Name: "call.d", Sig: "vv"},
	OpCallO:          {Name: "call.o", Sig: "vvv"},
	OpCatE:           {Name: "cat.e", Sig: "vV"},
	OpCatKe:          {Name: "cat.ke", Sig: "vv"},
	OpCatR:           {Name: "cat.r", Sig: "vvv"},
	OpCatRc:          {Name: "cat.rc", Sig: "vv"},
	OpCatS:           {Name: "cat.s", Sig: "vv"},
	OpChunkE:         {Name: "chunk.e", Sig: "v"},
	OpCmpF:           {Name: "cmp.f", Sig: "vv"},
	OpCmpI:           {Name: "cmp.i", Sig: "vv"},
	OpCmpS:           {Name: "cmp.s", Sig: "vv"},
	OpCmpZ:           {Name: "cmp.z", Sig: "vv"},
	OpContextual:     {Name: "contextual"},
	OpCountW:         {Name: "count.w", Sig: "v"},
	OpCrosstabF:      {Name: "crosstab.f", Sig: "v"},
	OpCrosstabI:      {Name: "crosstab.i", Sig: "v"},
	OpCrosstabS:      {Name: "crosstab.s", Sig: "v"},
	OpCrosstabZ:      {Name: "crosstab.z", Sig: "v"},
	OpCtrC:           {Name: "ctr.c", Sig: "v"},
	OpCtrR:           {Name: "ctr.r", Sig: "v"},
	OpCtxtR:          {Name: "ctxt.r", Sig: "vv"},
	OpDebugD:         {Name: "debug.d", Sig: "vv"},
	OpDiscGF:         {Name: "disc.g.f", Sig: "vv"},
	OpDiscGI:         {Name: "disc.g.i", Sig: "vv"},
	OpDiscGS:         {Name: "disc.g.s", Sig: "vv"},
	OpDiscGZ:         {Name: "disc.g.z", Sig: "vv"},
	OpDisperseI:      {Name: "disperse.i", Sig: "vvv", Void: true},
	OpDisperseS:      {Name: "disperse.s", Sig: "vvv", Void: true},
	OpDivF:           {Name: "div.f", Sig: "vv"},
	OpDivI:           {Name: "div.i", Sig: "vv"},
	OpDropEd:         {Name: "drop.ed", Sig: "vv"},
	OpDropEi:         {Name: "drop.ei", Sig: "vv"},
	OpDropX:          {Name: "drop.x", Sig: "v"},
	OpDroplEi:        {Name: "dropl.ei", Sig: "vv"},
	OpDurationF:      {Name: "duration.f", Sig: "vv"},
	OpDurationI:      {Name: "duration.i", Sig: "vv"},
	OpError:          {Name: "error", Terminal: true},
	OpEtoaAo:         {Name: "etoa.ao", Sig: "vvv"},
	OpEtoaD:          {Name: "etoa.d", Sig: "vv"},
	OpEtoaDd:         {Name: "etoa.dd", Sig: "vvv"},
	OpEtod:           {Name: "etod", Sig: "vv"},
	OpEtodA:          {Name: "etod.a", Sig: "vvv"},
	OpEtoeG:          {Name: "etoe.g", Sig: "vV"},
	OpEtoeM:          {Name: "etoe.m", Sig: "vvv"},
	OpEtoeU:          {Name: "etoe.u", Sig: "vv"},
	OpEtoi:           {Name: "etoi", Sig: "v"},
	OpEtorAo:         {Name: "etor.ao", Sig: "vvv"},
	OpEtorI:          {Name: "etor.i", Sig: "vv"},
	OpEtorS:          {Name: "etor.s", Sig: "vvv"},
	OpExt:            {Name: "ext", Sig: "s"},
	OpFloat:          {Name: "f", Sig: "f"},
	OpFiltE:          {Name: "filt.e", Sig: "vv"},
	OpFtoa:           {Name: "ftoa", Sig: "v"},
	OpFtoi:           {Name: "ftoi", Sig: "v"},
	OpFtos:           {Name: "ftos", Sig: "v"},
	OpGatherI:        {Name: "gather.i", Sig: "vv"},
	OpGatherS:        {Name: "gather.s", Sig: "vv"},
	OpInt:            {Name: "i", Sig: "i"},
	OpID:             {Name: "id", Sig: "v"},
	OpImport:         {Name: "import", Sig: "stV"},
	OpInfF:           {Name: "inf.f"},
	OpIsFinite:       {Name: "is.finite", Sig: "v"},
	OpIsNaN:          {Name: "is.nan", Sig: "v"},
	OpItoa:           {Name: "itoa", Sig: "v"},
	OpItof:           {Name: "itof", Sig: "v"},
	OpItos:           {Name: "itos", Sig: "v"},
	OpItoz:           {Name: "itoz", Sig: "iv"},
	OpKtol:           {Name: "ktol", Sig: "vvv"},
	OpLenB:           {Name: "len.b", Sig: "v"},
	OpLenS:           {Name: "len.s", Sig: "v"},
	OpLetE:           {Name: "let.e", Sig: "vV"},
	OpLookup:         {Name: "lookup", Sig: "vS"},
	OpLookupL:        {Name: "lookup.l", Sig: "vvv"},
	OpLtoa:           {Name: "ltoa", Sig: "v"},
	OpMaxF:           {Name: "max.f"},
	OpMaxI:           {Name: "max.i"},
	OpMaxZ:           {Name: "max.z"},
	OpMinF:           {Name: "min.f"},
	OpMinI:           {Name: "min.i"},
	OpMinZ:           {Name: "min.z"},
	OpModF:           {Name: "mod.f", Sig: "vv"},
	OpModI:           {Name: "mod.i", Sig: "vv"},
	OpMtoe:           {Name: "mtoe", Sig: "vvv"},
	OpMulF:           {Name: "mul.f", Sig: "vv"},
	OpMulI:           {Name: "mul.i", Sig: "vv"},
	OpNanF:           {Name: "nan.f"},
	OpNegF:           {Name: "neg.f", Sig: "v"},
	OpNegI:           {Name: "neg.i", Sig: "v"},
	OpNewG:           {Name: "new.g", Sig: "vv"},
	OpNewGA:          {Name: "new.g.a", Sig: "vv"},
	OpNewP:           {Name: "new.p", Sig: "vvV"},
	OpNewPI:          {Name: "new.p.i", Sig: "v"},
	OpNewPR:          {Name: "new.p.r", Sig: "vv"},
	OpNewPS:          {Name: "new.p.s", Sig: "v"},
	OpNewR:           {Name: "new.r", Sig: "vvVV"},
	OpNewRI:          {Name: "new.r.i", Sig: "vvv"},
	OpNewT:           {Name: "new.t", Sig: "vVV"},
	OpNewXIa:         {Name: "new.x.ia", Sig: "vv"},
	OpNewXSa:         {Name: "new.x.sa", Sig: "vv"},
	OpNewXSd:         {Name: "new.x.sd", Sig: "vv"},
	OpNewXSo:         {Name: "new.x.so", Sig: "vv"},
	OpNilA:           {Name: "nil.a"},
	OpNilC:           {Name: "nil.c"},
	OpNilN:           {Name: "nil.n"},
	OpNilR:           {Name: "nil.r"},
	OpNilW:           {Name: "nil.w"},
	OpNotG:           {Name: "not.g", Sig: "v"},
	OpNotI:           {Name: "not.i", Sig: "v"},
	OpNotZ:           {Name: "not.z", Sig: "v"},
	OpOrG:            {Name: "or.g", Sig: "V"},
	OpOrI:            {Name: "or.i", Sig: "vv"},
	OpOrdEF:          {Name: "ord.e.f", Sig: "vvv"},
	OpOrdEI:          {Name: "ord.e.i", Sig: "vvv"},
	OpOrdES:          {Name: "ord.e.s", Sig: "vvv"},
	OpOrdEZ:          {Name: "ord.e.z", Sig: "vvv"},
	OpPowerset:       {Name: "powerset", Sig: "V"},
	OpPrivCr:         {Name: "priv.cr", Sig: "vv"},
	OpPrivX:          {Name: "priv.x", Sig: "v"},
	OpRequireX:       {Name: "require.x", Sig: "v"},
	OpRet:            {Name: "ret", Terminal: true},
	OpRevE:           {Name: "rev.e", Sig: "v"},
	OpRingG:          {Name: "ring.g", Sig: "vv"},
	OpRtoa:           {Name: "rtoa", Sig: "v"},
	OpRtoe:           {Name: "rtoe", Sig: "vv"},
	OpStr:            {Name: "s", Sig: "s"},
	OpSealD:          {Name: "seal.d", Sig: "vv"},
	OpSealO:          {Name: "seal.o", Sig: "vv"},
	OpSessionF:       {Name: "session.f", Sig: "vvv"},
	OpSessionI:       {Name: "session.i", Sig: "vvv"},
	OpShI:            {Name: "sh.i", Sig: "vv"},
	OpShufE:          {Name: "shuf.e", Sig: "v"},
	OpStoa:           {Name: "stoa", Sig: "v"},
	OpStripeE:        {Name: "stripe.e", Sig: "v"},
	OpSubF:           {Name: "sub.f", Sig: "vv"},
	OpSubI:           {Name: "sub.i", Sig: "vv"},
	OpTakeEd:         {Name: "take.ed", Sig: "vv"},
	OpTakeEi:         {Name: "take.ei", Sig: "vv"},
	OpTakelEi:        {Name: "takel.ei", Sig: "vv"},
	OpTtoa:           {Name: "ttoa", Sig: "v"},
	OpWindowG:        {Name: "window.g", Sig: "vv"},
	OpXorI:           {Name: "xor.i", Sig: "vv"},
	OpBool:           {Name: "z", Sig: "z"},
	OpZtoa:           {Name: "ztoa", Sig: "v"},
	OpZtos:           {Name: "ztos", Sig: "v"},
	OpAccess:         {Name: "access", Sig: "V"},
}

var opNames = func() map[string]Op {
	m := make(map[string]Op, len(ops))

	for op := OpInvalid + 1; op < OpCount; op++ {
		m[ops[op].Name] = op
	}

	return m
}()

func (op Op) Info() OpInfo {
	if op < OpCount {
		return ops[op]
	}

	return ops[OpInvalid]
}

func (op Op) String() string {
	return op.Info().Name
}

func (op Op) Terminal() bool {
	return op.Info().Terminal
}

func ParseOp(name string) (Op, bool) {
	op, ok := opNames[name]

	return op, ok
}
