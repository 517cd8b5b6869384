package lhef

import (
	"errors"
	"io"
	"iter"
	"slices"
	"strings"

	"go.uber.org/zap"
)

const (
	rootElement   = "LesHouchesEvents"
	headerElement = "header"
	initElement   = "init"
	eventElement  = "event"
)

var SupportedVersions = []string{"1.0", "2.0", "3.0"}

type Option func(*Reader)

func WithLogger(logger *zap.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Reader is a cursor over the events of a document. The header and the
// run information are decoded when the Reader is created; events are decoded
// one at a time by Next.
//
// A Reader owns its input and is not safe for concurrent use.
type Reader struct {
	scan   *Scanner
	logger *zap.Logger

	root      bool
	version   string
	header    string
	hasHeader bool
	comments  []string
	run       Run

	count int
	done  bool
	err   error
}

func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	rs := Reader{
		scan:   Scan(r),
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(&rs)
	}
	rs.scan.AllowAttributes(rootElement)
	if err := rs.readInit(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Version returns the value of the version attribute of the document root
// or an empty string when the document has no root element.
func (r *Reader) Version() string {
	return r.version
}

func (r *Reader) Header() (string, bool) {
	return r.header, r.hasHeader
}

// Comments returns the content of the comments found before the init element.
func (r *Reader) Comments() []string {
	return slices.Clone(r.comments)
}

func (r *Reader) Run() Run {
	return r.run.clone()
}

// Count returns the number of events returned so far.
func (r *Reader) Count() int {
	return r.count
}

// Next decodes the next event. It returns io.EOF when the document has no
// more events: at the end of the input, at a close tag or at any element
// other than event.
//
// Once Next has failed, the reader is unusable: later calls return the same
// error. A new Reader has to be created to read the rest of the input.
func (r *Reader) Next() (*Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.done {
		return nil, io.EOF
	}
	for {
		tok, err := r.scanToken()
		if err != nil {
			return nil, r.fail(err)
		}
		switch tok.Type {
		case Text:
			if strings.TrimSpace(tok.Literal) == "" {
				continue
			}
			r.logger.Warn("text found between events", zap.Int("line", tok.Line), zap.Int("column", tok.Column))
			return nil, r.finish()
		case Comment, ProcInst:
			continue
		case OpenTag:
			if tok.Literal != eventElement {
				r.logger.Warn("element found between events", zap.String("element", tok.Literal), zap.Int("line", tok.Line))
				return nil, r.finish()
			}
			return r.readEvent()
		case CloseTag:
			if tok.Literal != rootElement {
				r.logger.Warn("unexpected close tag", zap.String("element", tok.Literal), zap.Int("line", tok.Line))
			}
			return nil, r.finish()
		default:
			return nil, r.finish()
		}
	}
}

func (r *Reader) Events() iter.Seq2[*Event, error] {
	fn := func(yield func(*Event, error) bool) {
		for {
			evt, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(evt, err) || err != nil {
				return
			}
		}
	}
	return fn
}

func (r *Reader) readInit() error {
	for {
		tok, err := r.scanToken()
		if err != nil {
			return err
		}
		switch tok.Type {
		case EOF:
			return createParseError("document", "end of input reached before <init>", tok.Position, ErrMissingInit)
		case Text:
			if strings.TrimSpace(tok.Literal) != "" {
				r.logger.Debug("text ignored before init", zap.Int("line", tok.Line))
			}
		case Comment:
			r.comments = append(r.comments, tok.Literal)
		case ProcInst:
		case CloseTag:
			return createParseError(tok.Literal, "close tag reached before <init>", tok.Position, ErrMissingInit)
		case OpenTag:
			switch tok.Literal {
			case rootElement:
				if r.root || r.hasHeader {
					return unexpectedTag(tok.Literal, tok.Position)
				}
				r.readRoot(tok)
			case headerElement:
				if r.hasHeader {
					return createParseError(tok.Literal, "header already defined", tok.Position, ErrUnexpectedTag)
				}
				if err := r.readHeader(); err != nil {
					return err
				}
			case initElement:
				return r.readRun()
			case eventElement:
				return createParseError(tok.Literal, "event found before <init>", tok.Position, ErrMissingInit)
			default:
				return unexpectedTag(tok.Literal, tok.Position)
			}
		}
	}
}

func (r *Reader) readRoot(tok Token) {
	r.root = true
	for _, a := range tok.Attrs {
		if a.Name == "version" {
			r.version = a.Value
		}
	}
	if r.version != "" && !slices.Contains(SupportedVersions, r.version) {
		r.logger.Warn("unsupported version", zap.String("version", r.version), zap.Strings("supported", SupportedVersions))
	}
	r.logger.Debug("document root found", zap.String("version", r.version))
}

func (r *Reader) readHeader() error {
	body, err := r.scanBody(headerElement)
	if err != nil {
		return err
	}
	r.header = body.Literal
	r.hasHeader = true
	r.logger.Debug("header read", zap.Int("size", len(r.header)))
	return nil
}

func (r *Reader) readRun() error {
	body, err := r.scanBody(initElement)
	if err != nil {
		return err
	}
	run, err := decodeRun(body.Literal, body.Position)
	if err != nil {
		return err
	}
	r.run = run
	r.logger.Debug("run information decoded", zap.Int("processes", run.NumProcesses), zap.Int("info", len(run.Info)))
	return nil
}

func (r *Reader) readEvent() (*Event, error) {
	body, err := r.scanBody(eventElement)
	if err != nil {
		return nil, r.fail(err)
	}
	evt, err := decodeEvent(body.Literal, body.Position)
	if err != nil {
		return nil, r.fail(err)
	}
	r.count++
	if ce := r.logger.Check(zap.DebugLevel, "event decoded"); ce != nil {
		ce.Write(zap.Int("event", r.count), zap.Int("particles", evt.NumParticles))
	}
	return evt, nil
}

func (r *Reader) scanToken() (Token, error) {
	tok := r.scan.Scan()
	return tok, r.check(tok)
}

func (r *Reader) scanBody(name string) (Token, error) {
	tok := r.scan.ScanBody(name)
	return tok, r.check(tok)
}

func (r *Reader) check(tok Token) error {
	if err := r.scan.Err(); err != nil {
		return ioError{err: err}
	}
	if tok.Type == Invalid {
		return createParseError("tag", tok.Literal, tok.Position, ErrMalformedTag)
	}
	return nil
}

func (r *Reader) finish() error {
	r.done = true
	r.logger.Debug("end of events", zap.Int("count", r.count))
	return io.EOF
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}
