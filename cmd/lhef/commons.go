package main

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/midbel/hep/lhef"
	"go.uber.org/zap"
)

type ReaderOptions struct {
	Verbose bool
}

type Document struct {
	File string
	*lhef.Reader
	io.Closer
}

func openDocument(file string, options ReaderOptions) (*Document, error) {
	r, err := openFile(file)
	if err != nil {
		return nil, err
	}
	rs, err := lhef.NewReader(r, lhef.WithLogger(createLogger(options.Verbose)))
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	doc := Document{
		File:   file,
		Reader: rs,
		Closer: r,
	}
	return &doc, nil
}

func createLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

var gzipMagic = []byte{0x1f, 0x8b}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r readCloser) Close() error {
	var err error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if e := r.closers[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// openFile opens a local file, a remote file or the standard input and
// decompresses it when its content starts with the gzip magic number.
func openFile(file string) (io.ReadCloser, error) {
	r, err := openRaw(file)
	if err != nil {
		return nil, err
	}
	var (
		rs    = bufio.NewReader(r)
		pk, _ = rs.Peek(len(gzipMagic))
	)
	if !bytes.Equal(pk, gzipMagic) {
		return readCloser{Reader: rs, closers: []io.Closer{r}}, nil
	}
	z, err := gzip.NewReader(rs)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return readCloser{Reader: z, closers: []io.Closer{r, z}}, nil
}

func openRaw(file string) (io.ReadCloser, error) {
	if file == "" || file == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	u, err := url.Parse(file)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequest(http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("%s: fail to retrieve remote file (%s)", file, res.Status)
		}
		return res.Body, nil
	default:
		return os.Open(file)
	}
}
