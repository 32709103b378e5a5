package parse

import (
	"bytes"
	"strconv"

	"tlog.app/go/errors"
)

// Num returns the end of the number at st and whether it looks like a float.
func Num(b []byte, st int) (i int, float bool, err error) {
	i = st

	if i < len(b) && (b[i] == '-' || b[i] == '+') {
		i++
	}

	for _, w := range []string{"Inf", "NaN"} {
		if bytes.HasPrefix(b[i:], []byte(w)) {
			return i + len(w), true, nil
		}
	}

	if i+1 < len(b) && b[i] == '0' {
		switch b[i+1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			i += 2

			dst := i

			for i < len(b) && isHex(b[i]) {
				i++
			}

			if i == dst {
				return st, false, errors.New("number expected")
			}

			return i, false, nil
		}
	}

	dst := i
	dot := false
	exp := false

loop:
	for ; i < len(b); i++ {
		switch {
		case b[i] >= '0' && b[i] <= '9':
		case !dot && !exp && b[i] == '.':
			dot = true
		case !exp && i != dst && (b[i] == 'e' || b[i] == 'E'):
			exp = true

			if i+1 < len(b) && (b[i+1] == '-' || b[i+1] == '+') {
				i++
			}
		default:
			break loop
		}
	}

	if i == dst || i == dst+1 && b[dst] == '.' {
		return st, false, errors.New("number expected")
	}

	return i, dot || exp, nil
}

func Int(b []byte, st int) (v int64, i int, err error) {
	i, _, err = Num(b, st)
	if err != nil {
		return 0, st, err
	}

	v, err = strconv.ParseInt(string(b[st:i]), 0, 64)
	if err != nil {
		return 0, st, errors.Wrap(err, "int")
	}

	return v, i, nil
}

func Float(b []byte, st int) (v float64, i int, err error) {
	i, _, err = Num(b, st)
	if err != nil {
		return 0, st, err
	}

	v, err = strconv.ParseFloat(string(b[st:i]), 64)
	if err != nil {
		return 0, st, errors.Wrap(err, "float")
	}

	return v, i, nil
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' || c == '_'
}
