package lhef

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fields is a cursor over the whitespace separated tokens of an element body.
// Line breaks have no meaning: a token ends at any run of white space.
type Fields struct {
	str  string
	pos  int
	last string
	off  int
}

func Tokenize(str string) *Fields {
	return &Fields{
		str: str,
	}
}

// Next returns the next token or ErrUnexpectedEnd if only white space is left.
func (f *Fields) Next() (string, error) {
	f.skipBlank()
	f.off = f.pos
	if f.pos >= len(f.str) {
		f.last = ""
		return "", ErrUnexpectedEnd
	}
	for f.pos < len(f.str) {
		r, n := utf8.DecodeRuneInString(f.str[f.pos:])
		if unicode.IsSpace(r) {
			break
		}
		f.pos += n
	}
	f.last = f.str[f.off:f.pos]
	return f.last, nil
}

func (f *Fields) Int() (int, error) {
	str, err := f.Next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0, ErrNumberFormat
	}
	return n, nil
}

func (f *Fields) Float() (float64, error) {
	str, err := f.Next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, ErrNumberFormat
	}
	return n, nil
}

// Rest returns the text that has not been tokenized yet. Leading blanks are
// dropped up to and including the first line break; without a line break the
// whole leading blank run is dropped. Everything after is returned verbatim.
func (f *Fields) Rest() string {
	rest := f.str[f.pos:]
	for i, r := range rest {
		if r == '\n' {
			return rest[i+1:]
		}
		if !unicode.IsSpace(r) {
			return rest[i:]
		}
	}
	return ""
}

// Last returns the token returned by the latest call to Next.
func (f *Fields) Last() string {
	return f.last
}

// Offset returns the byte offset of the latest token in the text.
func (f *Fields) Offset() int {
	return f.off
}

// Remaining returns an upper bound of the number of tokens left.
func (f *Fields) Remaining() int {
	return (len(f.str) - f.pos + 1) / 2
}

func (f *Fields) skipBlank() {
	rest := f.str[f.pos:]
	f.pos += len(rest) - len(strings.TrimLeftFunc(rest, unicode.IsSpace))
}
