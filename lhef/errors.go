package lhef

import (
	"errors"
	"fmt"
	"strings"

	"github.com/midbel/distance"
)

var (
	ErrIO            = errors.New("io")
	ErrMalformedTag  = errors.New("malformed tag")
	ErrMissingInit   = errors.New("missing init")
	ErrNumberFormat  = errors.New("number format")
	ErrUnexpectedEnd = errors.New("unexpected end")
	ErrUnexpectedTag = errors.New("unexpected tag")
)

type ParseError struct {
	Position
	Element string
	Message string
	Others  []string
	Err     error
}

func createParseError(elem, msg string, pos Position, err error) error {
	return ParseError{
		Position: pos,
		Element:  elem,
		Message:  msg,
		Err:      err,
	}
}

func unexpectedTag(name string, pos Position) error {
	e := ParseError{
		Position: pos,
		Element:  name,
		Message:  "element not expected here",
		Err:      ErrUnexpectedTag,
	}
	e.Others = distance.Levenshtein(name, []string{rootElement, headerElement, initElement, eventElement})
	return e
}

func (p ParseError) Error() string {
	msg := fmt.Sprintf("%d:%d: %s: %s", p.Line, p.Column, p.Element, p.Message)
	if len(p.Others) > 0 {
		msg = fmt.Sprintf("%s (did you mean %s?)", msg, strings.Join(p.Others, ", "))
	}
	return msg
}

func (p ParseError) Unwrap() error {
	return p.Err
}

type DecodeError struct {
	Position
	Element string
	Field   string
	Literal string
	Err     error
}

func (d DecodeError) Error() string {
	if d.Literal == "" {
		return fmt.Sprintf("%d:%d: %s: %s: %s", d.Line, d.Column, d.Element, d.Field, d.Err)
	}
	return fmt.Sprintf("%d:%d: %s: %s: %q: %s", d.Line, d.Column, d.Element, d.Field, d.Literal, d.Err)
}

func (d DecodeError) Unwrap() error {
	return d.Err
}

type ioError struct {
	err error
}

func (e ioError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIO, e.err)
}

func (e ioError) Unwrap() []error {
	return []error{ErrIO, e.err}
}
