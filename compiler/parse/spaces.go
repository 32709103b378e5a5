package parse

type (
	// Spaces is a set of ASCII control and punctuation chars below 64.
	Spaces uint64
)

var (
	Space    = NewSpaces(' ')
	SpaceTab = NewSpaces(' ', '\t')
	SpaceAll = NewSpaces(' ', '\t', '\r', '\n')
)

func NewSpaces(skip ...byte) (ss Spaces) {
	for _, q := range skip {
		if q >= 64 {
			panic("too high char code")
		}

		ss |= 1 << q
	}

	return
}

func (s Spaces) Skip(b []byte, st int) (i int) {
	i = st

	for i < len(b) && b[i] < 64 && s&(1<<b[i]) != 0 {
		i++
	}

	return
}

// SkipBack moves end back over spaces down to st.
func (s Spaces) SkipBack(b []byte, st, end int) (i int) {
	i = end

	for i > st && b[i-1] < 64 && s&(1<<b[i-1]) != 0 {
		i--
	}

	return
}
