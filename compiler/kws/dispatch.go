package kws

import (
	"fmt"

	"github.com/slowlang/kws/compiler/diag"
	"github.com/slowlang/kws/compiler/ir"
)

type (
	// Dispatch collects the arms of a br.a instruction.
	// Problems are kept until Check, so they are reported
	// at the location of the branch, not where the arm was added.
	Dispatch struct {
		owner *Func

		present ir.KindSet
		arms    []Arm

		errs []armError
	}

	armError struct {
		reason armReason
		kind   ir.Kind
		target string
		fn     string

		want, got int
	}

	armReason uint8
)

const (
	armDuplicate armReason = iota
	armForeignTarget
	armForeignValue
	armArity
)

func (d *Dispatch) Bin(target *Block, args ...Value)      { d.Add(ir.Bin, target, args...) }
func (d *Dispatch) Bool(target *Block, args ...Value)     { d.Add(ir.Bool, target, args...) }
func (d *Dispatch) Float(target *Block, args ...Value)    { d.Add(ir.Float, target, args...) }
func (d *Dispatch) Frame(target *Block, args ...Value)    { d.Add(ir.Frame, target, args...) }
func (d *Dispatch) Int(target *Block, args ...Value)      { d.Add(ir.Int, target, args...) }
func (d *Dispatch) Null(target *Block, args ...Value)     { d.Add(ir.Null, target, args...) }
func (d *Dispatch) Str(target *Block, args ...Value)      { d.Add(ir.Str, target, args...) }
func (d *Dispatch) Template(target *Block, args ...Value) { d.Add(ir.Template, target, args...) }

func (d *Dispatch) LookupHandler(target *Block, args ...Value) {
	d.Add(ir.LookupHandler, target, args...)
}

// Add registers the arm for kind k. args fill the leading target parameters,
// the unboxed value goes last unless k is Null.
// Only the first arm for a kind is kept.
func (d *Dispatch) Add(k ir.Kind, target *Block, args ...Value) {
	dup := d.present.Has(k)
	if dup {
		d.errs = append(d.errs, armError{reason: armDuplicate, kind: k, target: target.name})
	}

	d.present = d.present.With(k)

	for _, v := range args {
		if v.fn != nil && v.fn != d.owner {
			d.errs = append(d.errs, armError{reason: armForeignValue, kind: k, fn: v.fn.name})
		}
	}

	if target.fn != d.owner {
		d.errs = append(d.errs, armError{reason: armForeignTarget, kind: k, target: target.name})
	}

	got := len(args)
	if _, ok := k.Payload(); ok {
		got++
	}

	if want := len(target.params); want != got {
		d.errs = append(d.errs, armError{reason: armArity, kind: k, target: target.name, want: want, got: got})
	}

	if dup {
		return
	}

	d.arms = append(d.arms, Arm{Kind: k, Target: Target{Block: target, Args: args}})
}

func (d *Dispatch) Has(k ir.Kind) bool { return d.present.Has(k) }
func (d *Dispatch) Kinds() ir.KindSet  { return d.present }
func (d *Dispatch) Arms() []Arm        { return d.arms }
func (d *Dispatch) Owner() *Func       { return d.owner }
func (d *Dispatch) Pending() int       { return len(d.errs) }

// Check reports the collected problems at loc and forgets them.
func (d *Dispatch) Check(sink diag.Sink, loc diag.Location) {
	for _, e := range d.errs {
		sink.Error(loc, e.String())
	}

	d.errs = nil

	if d.present == 0 {
		sink.Error(loc, fmt.Sprintf("%v has no branches.", ir.OpBrA))
	}
}

func (e armError) String() string {
	switch e.reason {
	case armDuplicate:
		return fmt.Sprintf("Attempted to add %s, but block for %v already present.", e.target, e.kind)
	case armForeignTarget:
		return fmt.Sprintf("Block for %v is not in the same function.", e.kind)
	case armForeignValue:
		return fmt.Sprintf("Value from function “%s” used out of context.", e.fn)
	case armArity:
		return fmt.Sprintf("Block “%s” for %v takes %d parameters, but %d are supplied.", e.target, e.kind, e.want, e.got)
	}

	return "unknown dispatch problem"
}
