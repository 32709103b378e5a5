package kws

import (
	"fmt"

	"tlog.app/go/errors"

	"github.com/slowlang/kws/compiler/diag"
	"github.com/slowlang/kws/compiler/ir"
)

type (
	// Block is a basic block being built.
	// Every method keeps working after a problem is reported,
	// so all the problems of a unit are found in one pass.
	Block struct {
		fn     *Func
		name   string
		params []ir.Type

		paramvals []Value

		dead bool

		decl diag.Location
		loc  diag.Location
		note string

		code []Instr

		sink diag.Sink
	}
)

func (b *Block) Name() string            { return b.name }
func (b *Block) Func() *Func             { return b.fn }
func (b *Block) Params() []ir.Type       { return b.params }
func (b *Block) ParamValues() []Value    { return b.paramvals }
func (b *Block) Alive() bool             { return !b.dead }
func (b *Block) Location() diag.Location { return b.loc }
func (b *Block) Declared() diag.Location { return b.decl }
func (b *Block) Code() []Instr           { return b.code }

// Terminal returns the first terminal instruction or nil.
func (b *Block) Terminal() *Instr {
	for i := range b.code {
		if b.code[i].Terminal() {
			return &b.code[i]
		}
	}

	return nil
}

// Update sets the location the following diagnostics are attributed to.
func (b *Block) Update(at diag.Location, msg string) {
	b.loc = at
	b.note = msg
}

func (b *Block) Parameter(i int) Value {
	if i < 0 || i >= len(b.params) {
		b.sink.Error(b.loc, fmt.Sprintf("Parameter %d out of bounds for block “%s”.", i, b.name))

		return Value{fn: b.fn, id: -1}
	}

	return b.paramvals[i]
}

func (b *Block) CreateDispatch() *Dispatch {
	return &Dispatch{owner: b.fn}
}

// Emit issues a non-terminal instruction with operands laid out as in Instr.
func (b *Block) Emit(in Instr) Value {
	if in.Op.Terminal() || in.Op == ir.OpAccess {
		panic(errors.New("emit: %v must be issued by its own method", in.Op))
	}

	b.checkAlive(in.Op)
	b.checkValues(in.Op, in.Args...)

	for _, l := range in.Lists {
		b.checkValues(in.Op, l...)
	}

	return b.record(in)
}

func (b *Block) op(op ir.Op, args ...Value) Value {
	return b.Emit(Instr{Op: op, Args: args})
}

func (b *Block) Br(target *Block, args ...Value) {
	b.checkAlive(ir.OpBr)
	b.checkTarget(ir.OpBr, target, args, 0)

	b.terminate(Instr{
		Op:      ir.OpBr,
		Targets: []Target{{Block: target, Args: args}},
	})
}

// BrA jumps to the arm of d matching the kind of value.
// msg is the error raised at run time if there is no such arm, empty for the default.
func (b *Block) BrA(value Value, d *Dispatch, msg string) {
	b.checkAlive(ir.OpBrA)
	b.checkValues(ir.OpBrA, value)

	if d.owner != b.fn {
		b.sink.Error(b.loc, fmt.Sprintf("Dispatch for “%v” is from another function.", ir.OpBrA))
	}

	in := Instr{
		Op:   ir.OpBrA,
		Args: []Value{value},
		Arms: d.Arms(),
	}

	if msg != "" {
		in.Imms = []any{msg}
	}

	d.Check(b.sink, b.loc)

	b.terminate(in)
}

// BrAA compares two boxed numbers and goes to intTarget if both are ints
// or to floatTarget otherwise. Targets take the two numbers after args.
func (b *Block) BrAA(left, right Value, intTarget *Block, intArgs []Value, floatTarget *Block, floatArgs []Value) {
	b.numeric(ir.OpBrAA, left, right, intTarget, intArgs, floatTarget, floatArgs)
}

// BrIA is BrAA with left known to be an int.
func (b *Block) BrIA(left, right Value, intTarget *Block, intArgs []Value, floatTarget *Block, floatArgs []Value) {
	b.numeric(ir.OpBrIA, left, right, intTarget, intArgs, floatTarget, floatArgs)
}

// BrFA coerces right to float against a float left.
// The target takes the coerced value after args.
func (b *Block) BrFA(left, right Value, target *Block, args ...Value) {
	b.checkAlive(ir.OpBrFA)
	b.checkValues(ir.OpBrFA, left, right)
	b.checkTarget(ir.OpBrFA, target, args, 1)

	b.terminate(Instr{
		Op:      ir.OpBrFA,
		Args:    []Value{left, right},
		Targets: []Target{{Block: target, Args: args}},
	})
}

func (b *Block) numeric(op ir.Op, left, right Value, intTarget *Block, intArgs []Value, floatTarget *Block, floatArgs []Value) {
	b.checkAlive(op)
	b.checkValues(op, left, right)
	b.checkTarget(op, intTarget, intArgs, 2)
	b.checkTarget(op, floatTarget, floatArgs, 2)

	b.terminate(Instr{
		Op:   op,
		Args: []Value{left, right},
		Targets: []Target{
			{Block: intTarget, Args: intArgs},
			{Block: floatTarget, Args: floatArgs},
		},
	})
}

func (b *Block) BrZ(cond Value, trueTarget *Block, trueArgs []Value, falseTarget *Block, falseArgs []Value) {
	b.checkAlive(ir.OpBrZ)
	b.checkValues(ir.OpBrZ, cond)
	b.checkTarget(ir.OpBrZ, trueTarget, trueArgs, 0)
	b.checkTarget(ir.OpBrZ, falseTarget, falseArgs, 0)

	b.terminate(Instr{
		Op:   ir.OpBrZ,
		Args: []Value{cond},
		Targets: []Target{
			{Block: trueTarget, Args: trueArgs},
			{Block: falseTarget, Args: falseArgs},
		},
	})
}

// Error stops evaluation with a user visible error message.
func (b *Block) Error(msg Value) {
	b.checkAlive(ir.OpError)
	b.checkValues(ir.OpError, msg)

	b.terminate(Instr{
		Op:   ir.OpError,
		Args: []Value{msg},
	})
}

// Ret returns a value from a function which is not an accumulator.
func (b *Block) Ret(value Value) {
	b.checkReturn(false)
	b.checkAlive(ir.OpRet)
	b.checkValues(ir.OpRet, value)

	b.terminate(Instr{
		Op:   ir.OpRet,
		Args: []Value{value},
	})
}

// RetAccumulator returns a value and attribute builders from an accumulator.
func (b *Block) RetAccumulator(value Value, builders ...Value) {
	b.checkReturn(true)
	b.checkAlive(ir.OpRet)
	b.checkValues(ir.OpRet, value)
	b.checkValues(ir.OpRet, builders...)

	if builders == nil {
		builders = []Value{}
	}

	b.terminate(Instr{
		Op:    ir.OpRet,
		Args:  []Value{value},
		Lists: [][]Value{builders},
	})
}

func (b *Block) String() string {
	return b.name
}

func (b *Block) record(in Instr) Value {
	info := in.Op.Info()

	if !info.Terminal && !info.Void {
		in.Out = b.fn.newValue()
	}

	in.Location = b.loc
	in.Note = b.note

	b.code = append(b.code, in)

	return in.Out
}

func (b *Block) terminate(in Instr) {
	b.dead = true

	b.record(in)
}

func (b *Block) checkAlive(op ir.Op) {
	if b.dead {
		b.sink.Error(b.loc, fmt.Sprintf("“%v” was called after terminal instruction.", op))
	}
}

func (b *Block) checkValues(op ir.Op, vals ...Value) {
	for _, v := range vals {
		if v.fn != nil && v.fn != b.fn {
			b.sink.Error(b.loc, fmt.Sprintf("“%v” was called with a value from another function.", op))

			return
		}
	}
}

// checkTarget checks the target and its arguments.
// extra is the number of values the branch itself passes after args.
func (b *Block) checkTarget(op ir.Op, target *Block, args []Value, extra int) {
	if target.fn != b.fn {
		b.sink.Error(b.loc, fmt.Sprintf("Target block “%s” for “%v” is from another function.", target.name, op))
	}

	b.checkValues(op, args...)

	if want, got := len(target.params), len(args)+extra; want != got {
		b.sink.Error(b.loc, fmt.Sprintf("Block “%s” takes %d parameters, but “%v” supplies %d.", target.name, want, op, got))
	}
}

func (b *Block) checkReturn(accumulator bool) {
	if accumulator != (b.fn.result == ir.Accumulator) {
		b.sink.Error(b.loc, "Incorrect return used.")
	}
}
