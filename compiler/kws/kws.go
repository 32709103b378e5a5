package kws

import (
	"fmt"

	"github.com/slowlang/kws/compiler/diag"
	"github.com/slowlang/kws/compiler/ir"
)

type (
	// Value is an instruction result, parameter or capture.
	// It's only meaningful inside the function it was made by.
	Value struct {
		fn *Func
		id int
	}

	Target struct {
		Block *Block
		Args  []Value
	}

	Arm struct {
		Kind ir.Kind
		Target
	}

	// Instr is a recorded instruction call.
	// Operands are stored in the order ir.OpInfo.Sig lists them:
	// v in Args, V in Lists, the rest in Imms.
	Instr struct {
		Op  ir.Op
		Out Value

		Args  []Value
		Lists [][]Value
		Imms  []any

		// Targets are br: [target], br.z: [true, false],
		// br.aa and br.ia: [int, float], br.fa: [target].
		Targets []Target
		Arms    []Arm

		Location diag.Location
		Note     string
	}
)

func (v Value) Func() *Func { return v.fn }

// ID is unique inside the function. It's negative for
// values returned from out of bounds parameter or capture access.
func (v Value) ID() int { return v.id }

func (v Value) IsZero() bool { return v.fn == nil }

func (v Value) String() string {
	if v.id < 0 {
		return "%?"
	}

	return fmt.Sprintf("%%%d", v.id)
}

func (in *Instr) Terminal() bool {
	return in.Op.Terminal()
}
