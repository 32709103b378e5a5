package kws

import (
	"fmt"

	"github.com/slowlang/kws/compiler/diag"
	"github.com/slowlang/kws/compiler/ir"
)

type (
	FuncKind uint8

	Func struct {
		kind   FuncKind
		name   string
		export bool
		loc    diag.Location
		result ir.Result

		captures []ir.Type
		capvals  []Value

		blocks []*Block
		names  map[string]*Block

		sink diag.Sink

		next int

		finished bool
	}

	// Factory makes functions of one compilation unit.
	Factory struct {
		sink       diag.Sink
		definition bool

		file  *Func
		funcs []*Func
	}
)

const (
	Definition FuncKind = iota
	Accumulator
	Collector
	Distributor
	Override
	File
)

var funcKinds = [...]string{
	Definition:  "definition",
	Accumulator: "accumulator",
	Collector:   "collector",
	Distributor: "distributor",
	Override:    "override",
	File:        "file",
}

func (k FuncKind) String() string {
	if int(k) < len(funcKinds) {
		return funcKinds[k]
	}

	return "?"
}

func ParseFuncKind(s string) (FuncKind, bool) {
	for k, n := range funcKinds {
		if n == s {
			return FuncKind(k), true
		}
	}

	return 0, false
}

// NewFactory makes a factory reporting to sink.
// definition tells if the unit is a definition-style file,
// which gives the file function a context parameter.
func NewFactory(sink diag.Sink, definition bool) *Factory {
	return &Factory{
		sink:       sink,
		definition: definition,
	}
}

func (f *Factory) CreateDefinition(at diag.Location, name string, export bool, entry string, captures ...ir.Type) *Func {
	return f.create(Definition, at, name, export, entry, captures, []ir.Type{ir.C}, ir.Any)
}

func (f *Factory) CreateAccumulator(at diag.Location, name string, export bool, entry string, captures ...ir.Type) *Func {
	return f.create(Accumulator, at, name, export, entry, captures, []ir.Type{ir.C, ir.A}, ir.Accumulator)
}

func (f *Factory) CreateCollector(at diag.Location, name string, export bool, entry string, captures ...ir.Type) *Func {
	return f.create(Collector, at, name, export, entry, captures, []ir.Type{ir.C, ir.R}, ir.Any)
}

func (f *Factory) CreateDistributor(at diag.Location, name string, export bool, entry string, captures ...ir.Type) *Func {
	return f.create(Distributor, at, name, export, entry, captures, []ir.Type{ir.C}, ir.Fricassee)
}

func (f *Factory) CreateOverride(at diag.Location, name string, export bool, entry string, captures ...ir.Type) *Func {
	return f.create(Override, at, name, export, entry, captures, []ir.Type{ir.C, ir.A}, ir.Any)
}

// CreateFile makes the top-level function of the unit.
// Only one is allowed; any later one is reported but still returned.
func (f *Factory) CreateFile(at diag.Location, name string, entry string) *Func {
	if f.file != nil {
		f.sink.Error(at, "File function has already been created.")
	}

	var params []ir.Type
	if f.definition {
		params = []ir.Type{ir.C}
	}

	fn := f.create(File, at, name, false, entry, nil, params, ir.Any)

	if f.file == nil {
		f.file = fn
	}

	return fn
}

// Create makes a function of the given kind.
func (f *Factory) Create(kind FuncKind, at diag.Location, name string, export bool, entry string, captures ...ir.Type) *Func {
	switch kind {
	case Accumulator:
		return f.CreateAccumulator(at, name, export, entry, captures...)
	case Collector:
		return f.CreateCollector(at, name, export, entry, captures...)
	case Distributor:
		return f.CreateDistributor(at, name, export, entry, captures...)
	case Override:
		return f.CreateOverride(at, name, export, entry, captures...)
	case File:
		if len(captures) != 0 {
			f.sink.Error(at, fmt.Sprintf("File function “%s” can't have captures.", name))
		}

		return f.CreateFile(at, name, entry)
	default:
		return f.CreateDefinition(at, name, export, entry, captures...)
	}
}

func (f *Factory) create(kind FuncKind, at diag.Location, name string, export bool, entry string, captures, params []ir.Type, res ir.Result) *Func {
	fn := &Func{
		kind:     kind,
		name:     name,
		export:   export,
		loc:      at,
		result:   res,
		captures: captures,
		names:    make(map[string]*Block),
		sink:     f.sink,
	}

	for range captures {
		fn.capvals = append(fn.capvals, fn.newValue())
	}

	fn.CreateBlock(entry, params...)

	f.funcs = append(f.funcs, fn)

	return fn
}

// Funcs returns all created functions in creation order.
func (f *Factory) Funcs() []*Func { return f.funcs }

// FileFunc is the first file function created.
func (f *Factory) FileFunc() *Func { return f.file }

func (f *Factory) Sink() diag.Sink { return f.sink }

func (f *Func) Name() string            { return f.name }
func (f *Func) Kind() FuncKind          { return f.kind }
func (f *Func) Export() bool            { return f.export }
func (f *Func) Location() diag.Location { return f.loc }
func (f *Func) Result() ir.Result       { return f.result }
func (f *Func) Captures() []ir.Type     { return f.captures }
func (f *Func) EntryBlock() *Block      { return f.blocks[0] }
func (f *Func) Blocks() []*Block        { return f.blocks }
func (f *Func) Finished() bool          { return f.finished }

// Block finds a block by name. The first one wins on duplicates.
func (f *Func) Block(name string) *Block {
	return f.names[name]
}

// Capture is a value captured by the function when it was accessed.
func (f *Func) Capture(i int) Value {
	if i < 0 || i >= len(f.capvals) {
		f.sink.Error(f.loc, fmt.Sprintf("Capture %d out of bounds for function “%s”.", i, f.name))

		return Value{fn: f, id: -1}
	}

	return f.capvals[i]
}

// CreateBlock adds a new block taking the given parameters.
// The block is located at the function until the first Update.
func (f *Func) CreateBlock(name string, params ...ir.Type) *Block {
	return f.CreateBlockAt(f.loc, name, params...)
}

// CreateBlockAt is CreateBlock for a block declared at at.
func (f *Func) CreateBlockAt(at diag.Location, name string, params ...ir.Type) *Block {
	b := &Block{
		fn:     f,
		name:   name,
		params: params,
		decl:   at,
		loc:    at,
		sink:   f.sink,
	}

	for range params {
		b.paramvals = append(b.paramvals, f.newValue())
	}

	if prev, ok := f.names[name]; ok {
		f.sink.Conflict(fmt.Sprintf("Block “%s” is defined multiple times in “%s”.", name, f.name),
			diag.Site{Location: prev.decl, Message: "first defined here"},
			diag.Site{Location: at, Message: "defined again in this function"},
		)
	} else {
		f.names[name] = b
	}

	f.blocks = append(f.blocks, b)

	return b
}

// Access makes a reference to f with the given captures in block b.
// b may belong to any function; the captures must belong to the same one as b.
func (f *Func) Access(b *Block, captures ...Value) Value {
	b.checkAlive(ir.OpAccess)
	b.checkValues(ir.OpAccess, captures...)

	if len(captures) != len(f.captures) {
		b.sink.Error(b.loc, fmt.Sprintf("“%s” requires %d captures, but %d were given.", f.name, len(f.captures), len(captures)))
	}

	return b.record(Instr{
		Op:    ir.OpAccess,
		Lists: [][]Value{captures},
		Imms:  []any{f},
	})
}

// Finish reports every block which has no terminal instruction.
// It may be called more than once.
func (f *Func) Finish() {
	for _, b := range f.blocks {
		if b.Alive() {
			f.sink.Error(f.loc, fmt.Sprintf("Block “%s” has no terminal instruction.", b.name))
		}
	}

	f.finished = true
}

func (f *Func) String() string {
	return f.name
}

func (f *Func) newValue() Value {
	v := Value{fn: f, id: f.next}
	f.next++

	return v
}
