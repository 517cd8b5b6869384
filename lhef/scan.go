package lhef

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"unicode"
)

const (
	EOF rune = -(1 + iota)
	OpenTag
	CloseTag
	Text
	Comment
	ProcInst
	Invalid
)

type Position struct {
	Line   int
	Column int
}

type Attribute struct {
	Name  string
	Value string
}

type Token struct {
	Literal string
	Type    rune
	Attrs   []Attribute
	Position
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "<eof>"
	case OpenTag:
		return fmt.Sprintf("open(%s)", t.Literal)
	case CloseTag:
		return fmt.Sprintf("close(%s)", t.Literal)
	case Text:
		return fmt.Sprintf("text(%s)", t.Literal)
	case Comment:
		return fmt.Sprintf("comment(%s)", t.Literal)
	case ProcInst:
		return fmt.Sprintf("instruction(%s)", t.Literal)
	case Invalid:
		return fmt.Sprintf("<invalid(%s)>", t.Literal)
	default:
		return "<unknown>"
	}
}

const (
	langle     = '<'
	rangle     = '>'
	slash      = '/'
	bang       = '!'
	question   = '?'
	dash       = '-'
	equal      = '='
	quote      = '"'
	apos       = '\''
	underscore = '_'
	dot        = '.'
	colon      = ':'
)

// Scanner splits its input into tags and the raw text between them. It knows
// nothing about entities, namespaces or nesting. Attributes are only accepted
// on the elements registered with AllowAttributes.
type Scanner struct {
	input *bufio.Reader
	char  rune
	str   bytes.Buffer
	err   error

	Position

	attrs []string
}

func Scan(r io.Reader) *Scanner {
	var (
		rs      = bufio.NewReader(r)
		pk, err = rs.Peek(3)
	)
	if bytes.Equal(pk, []byte{0xEF, 0xBB, 0xBF}) {
		rs.Discard(3)
	}
	scan := &Scanner{
		input: rs,
	}
	if err != nil && !errors.Is(err, io.EOF) {
		scan.err = err
	}
	scan.Line = 1
	scan.read()
	return scan
}

func (s *Scanner) AllowAttributes(names ...string) {
	s.attrs = append(s.attrs, names...)
}

// Err reports the first error returned by the underlying reader, if any. The
// scanner behaves as if the input ended when such an error occurs.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) Scan() Token {
	var tok Token
	tok.Position = s.Position
	if s.done() {
		tok.Type = EOF
		return tok
	}
	s.str.Reset()
	if s.char == langle {
		s.scanTag(&tok)
	} else {
		s.scanText(&tok)
	}
	return tok
}

// ScanBody returns, as a Text token, everything up to the close tag of the
// given element and consumes that close tag. Content is not interpreted: any
// nested markup is kept as is.
func (s *Scanner) ScanBody(name string) Token {
	var tok Token
	tok.Position = s.Position
	s.str.Reset()

	mark := -1
	for !s.done() {
		char := s.char
		if char == langle {
			mark = s.str.Len()
		}
		s.write()
		s.read()
		if char != rangle || mark < 0 {
			continue
		}
		if buf := s.str.Bytes(); isCloseTag(buf[mark:], name) {
			tok.Type = Text
			tok.Literal = string(buf[:mark])
			return tok
		}
		mark = -1
	}
	tok.Type = Invalid
	tok.Literal = fmt.Sprintf("</%s> expected before end of input", name)
	return tok
}

func (s *Scanner) scanText(tok *Token) {
	for !s.done() && s.char != langle {
		s.write()
		s.read()
	}
	tok.Type = Text
	tok.Literal = s.str.String()
}

func (s *Scanner) scanTag(tok *Token) {
	s.read()
	switch s.char {
	case bang:
		s.scanComment(tok)
	case question:
		s.scanInstruction(tok)
	case slash:
		s.read()
		s.scanClosingTag(tok)
	default:
		s.scanOpeningTag(tok)
	}
}

func (s *Scanner) scanComment(tok *Token) {
	s.read()
	for i := 0; i < 2; i++ {
		if s.char != dash {
			s.invalid(tok, "only comments are supported after <!")
			return
		}
		s.read()
	}
	if !s.scanUntil("--") {
		s.invalid(tok, "comment not closed before end of input")
		return
	}
	tok.Type = Comment
	tok.Literal = s.str.String()
}

func (s *Scanner) scanInstruction(tok *Token) {
	s.read()
	if !s.scanUntil("?") {
		s.invalid(tok, "processing instruction not closed before end of input")
		return
	}
	tok.Type = ProcInst
	tok.Literal = s.str.String()
}

// scanUntil accumulates characters until the given suffix immediately
// followed by '>'. Neither the suffix nor '>' are kept.
func (s *Scanner) scanUntil(suffix string) bool {
	for !s.done() {
		if s.char == rangle && bytes.HasSuffix(s.str.Bytes(), []byte(suffix)) {
			s.str.Truncate(s.str.Len() - len(suffix))
			s.read()
			return true
		}
		s.write()
		s.read()
	}
	return false
}

func (s *Scanner) scanOpeningTag(tok *Token) {
	name := s.scanName()
	if name == "" {
		s.invalid(tok, "element name is missing")
		return
	}
	s.skipBlank()
	if !s.done() && s.char != rangle && slices.Contains(s.attrs, name) {
		attrs, ok := s.scanAttributes(tok)
		if !ok {
			return
		}
		tok.Attrs = attrs
	}
	if s.done() {
		s.invalid(tok, fmt.Sprintf("<%s: end of tag expected before end of input", name))
		return
	}
	if s.char != rangle {
		s.invalid(tok, fmt.Sprintf("<%s: unexpected %q, attributes are not allowed", name, s.char))
		return
	}
	s.read()
	tok.Type = OpenTag
	tok.Literal = name
}

func (s *Scanner) scanClosingTag(tok *Token) {
	name := s.scanName()
	if name == "" {
		s.invalid(tok, "element name is missing")
		return
	}
	s.skipBlank()
	if s.done() {
		s.invalid(tok, fmt.Sprintf("</%s: end of tag expected before end of input", name))
		return
	}
	if s.char != rangle {
		s.invalid(tok, fmt.Sprintf("</%s: unexpected %q", name, s.char))
		return
	}
	s.read()
	tok.Type = CloseTag
	tok.Literal = name
}

func (s *Scanner) scanAttributes(tok *Token) ([]Attribute, bool) {
	var attrs []Attribute
	for !s.done() && s.char != rangle {
		var attr Attribute
		s.str.Reset()
		for !s.done() && isAttrChar(s.char) {
			s.write()
			s.read()
		}
		if attr.Name = s.str.String(); attr.Name == "" {
			s.invalid(tok, fmt.Sprintf("unexpected %q, attribute name expected", s.char))
			return nil, false
		}
		s.skipBlank()
		if s.char != equal {
			s.invalid(tok, fmt.Sprintf("%s: attribute value is missing", attr.Name))
			return nil, false
		}
		s.read()
		s.skipBlank()
		if s.char != quote && s.char != apos {
			s.invalid(tok, fmt.Sprintf("%s: attribute value should be quoted", attr.Name))
			return nil, false
		}
		delim := s.char
		s.read()
		s.str.Reset()
		for !s.done() && s.char != delim {
			s.write()
			s.read()
		}
		if s.done() {
			s.invalid(tok, fmt.Sprintf("%s: attribute value not terminated", attr.Name))
			return nil, false
		}
		s.read()
		attr.Value = s.str.String()
		attrs = append(attrs, attr)
		s.skipBlank()
	}
	return attrs, true
}

func (s *Scanner) scanName() string {
	s.str.Reset()
	for !s.done() && !unicode.IsSpace(s.char) && s.char != rangle && s.char != langle && s.char != slash {
		s.write()
		s.read()
	}
	return s.str.String()
}

func (s *Scanner) invalid(tok *Token, msg string) {
	tok.Type = Invalid
	tok.Literal = msg
}

func (s *Scanner) write() {
	s.str.WriteRune(s.char)
}

func (s *Scanner) read() {
	if s.char == '\n' {
		s.Column = 0
		s.Line++
	}
	s.Column++
	char, _, err := s.input.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) && s.err == nil {
			s.err = err
		}
		char = EOF
	}
	s.char = char
}

func (s *Scanner) done() bool {
	return s.char == EOF
}

func (s *Scanner) skipBlank() {
	for !s.done() && unicode.IsSpace(s.char) {
		s.read()
	}
}

func isAttrChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == dash || r == underscore || r == dot || r == colon
}

func isCloseTag(tag []byte, name string) bool {
	if !bytes.HasPrefix(tag, []byte("</")) || !bytes.HasSuffix(tag, []byte(">")) {
		return false
	}
	tag = bytes.TrimRightFunc(tag[2:len(tag)-1], unicode.IsSpace)
	return string(tag) == name
}
