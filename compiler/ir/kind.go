package ir

import (
	"math/bits"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Kind is a runtime value tag a boxed value can be dispatched on.
	Kind uint8

	KindSet uint16
)

const (
	Bin Kind = iota
	Bool
	Float
	Frame
	Int
	LookupHandler
	Null
	Str
	Template

	KindCount
)

var kindNames = [...]struct {
	title string
	name  string
}{
	Bin:           {"Bin", "bin"},
	Bool:          {"Bool", "bool"},
	Float:         {"Float", "float"},
	Frame:         {"Frame", "frame"},
	Int:           {"Int", "int"},
	LookupHandler: {"LookupHandler", "lookup_handler"},
	Null:          {"Null", "null"},
	Str:           {"Str", "str"},
	Template:      {"Template", "template"},
}

var kindPayload = [...]Type{
	Bin:           B,
	Bool:          Z,
	Float:         F,
	Frame:         R,
	Int:           I,
	LookupHandler: L,
	Str:           S,
	Template:      T,
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k].title
	}

	return "Kind(?)"
}

// Name is the spelling used in the text form.
func (k Kind) Name() string {
	if k < KindCount {
		return kindNames[k].name
	}

	return "?"
}

// Payload is the type of the unboxed value handed to a dispatch target.
// Null carries nothing.
func (k Kind) Payload() (Type, bool) {
	if k >= KindCount || k == Null {
		return 0, false
	}

	return kindPayload[k], true
}

func ParseKind(s string) (Kind, bool) {
	for k := Kind(0); k < KindCount; k++ {
		if kindNames[k].name == s {
			return k, true
		}
	}

	return 0, false
}

func MakeKindSet(ks ...Kind) (s KindSet) {
	for _, k := range ks {
		s = s.With(k)
	}

	return s
}

func AllKinds() KindSet {
	return 1<<KindCount - 1
}

func (s KindSet) With(k Kind) KindSet {
	return s | 1<<k
}

func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

func (s KindSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

func (s KindSet) Range(f func(k Kind) bool) {
	for x := uint16(s); x != 0; x &= x - 1 {
		k := Kind(bits.TrailingZeros16(x))

		if !f(k) {
			return
		}
	}
}

func (s KindSet) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	b = e.AppendTag(b, tlwire.Array, -1)

	s.Range(func(k Kind) bool {
		b = e.AppendString(b, k.Name())

		return true
	})

	b = e.AppendBreak(b)

	return b
}
