package ir

type (
	// Type is a parameter, capture or return type of the instruction set.
	Type uint8

	// Result is the way a function is allowed to return.
	Result uint8
)

const (
	A Type = iota // any
	B             // bin
	C             // context
	D             // definition
	E             // fricassée
	F             // float
	G             // fricassée grouper
	I             // int
	K             // collector
	L             // lookup handler
	M             // accumulator
	N             // name
	O             // override
	P             // fricassée zipper
	R             // frame
	S             // str
	T             // template
	U             // distributor
	W             // window
	X             // attribute builder
	Z             // bool

	TypeCount
)

const (
	Any Result = iota
	Accumulator
	Fricassee
)

var typeNames = [...]string{
	A: "any",
	B: "bin",
	C: "context",
	D: "definition",
	E: "fricassee",
	F: "float",
	G: "grouper",
	I: "int",
	K: "collector",
	L: "lookup_handler",
	M: "accumulator",
	N: "name",
	O: "override",
	P: "zipper",
	R: "frame",
	S: "str",
	T: "template",
	U: "distributor",
	W: "window",
	X: "attribute",
	Z: "bool",
}

const typeLetters = "ABCDEFGIKLMNOPRSTUWXZ"

func (t Type) String() string {
	if t < TypeCount {
		return typeNames[t]
	}

	return "?"
}

func (t Type) Letter() byte {
	if t < TypeCount {
		return typeLetters[t]
	}

	return '?'
}

func ParseType(s string) (Type, bool) {
	for t, n := range typeNames {
		if n == s {
			return Type(t), true
		}
	}

	return 0, false
}

func (r Result) String() string {
	switch r {
	case Any:
		return "any"
	case Accumulator:
		return "accumulator"
	case Fricassee:
		return "fricassee"
	}

	return "?"
}

// ReturnType is the type of the value returned.
// Accumulator builders are not included.
func (r Result) ReturnType() Type {
	if r == Fricassee {
		return E
	}

	return A
}
