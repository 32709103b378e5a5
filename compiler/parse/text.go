package parse

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"tlog.app/go/errors"
)

// Ident returns the end of the identifier at st.
// Dots are allowed after the first char, so op names like br.aa are idents too.
func Ident(b []byte, st int) (i int, err error) {
	if st == len(b) {
		return st, errors.New("ident expected")
	}

	i = st

	c := b[i]

	switch {
	case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
		i++
	default:
		return st, errors.New("ident expected")
	}

	return identTail(b, i)
}

// Name is the part of a value reference after %. It may start with a digit.
func Name(b []byte, st int) (i int, err error) {
	i, err = identTail(b, st)
	if err != nil {
		return i, err
	}

	if i == st {
		return st, errors.New("value name expected")
	}

	return i, nil
}

func identTail(b []byte, i int) (int, error) {
loop:
	for i < len(b) {
		c := b[i]

		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '.':
			i++
		case c >= utf8.RuneSelf:
			if r, w := utf8.DecodeRune(b[i:]); r == utf8.RuneError {
				return i, errors.New("bad rune")
			} else {
				i += w
			}
		default:
			break loop
		}
	}

	return i, nil
}

// Quoted parses a Go quoted string at st.
func Quoted(b []byte, st int) (s string, i int, err error) {
	q, err := strconv.QuotedPrefix(string(b[st:]))
	if err != nil {
		return "", st, errors.New("quoted string expected")
	}

	s, err = strconv.Unquote(q)
	if err != nil {
		return "", st, errors.Wrap(err, "unquote")
	}

	return s, st + len(q), nil
}

func Bool(b []byte, st int) (v bool, i int, err error) {
	if bytes.HasPrefix(b[st:], []byte("true")) {
		return true, st + 4, nil
	}

	if bytes.HasPrefix(b[st:], []byte("false")) {
		return false, st + 5, nil
	}

	return false, st, errors.New("bool expected")
}

// ContentEnd is the end of the line text without a trailing comment and spaces.
func ContentEnd(b []byte, st, end int) int {
	quote := false

	for i := st; i < end; i++ {
		switch c := b[i]; {
		case quote && c == '\\':
			i++
		case c == '"':
			quote = !quote
		case !quote && c == '/' && i+1 < end && b[i+1] == '/':
			return SpaceTab.SkipBack(b, st, i)
		}
	}

	return SpaceTab.SkipBack(b, st, end)
}
