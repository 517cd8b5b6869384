package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/midbel/cli"
)

var headerCmd = cli.Command{
	Name:    "header",
	Summary: "print the header of a document",
	Handler: &HeaderCmd{},
}

type HeaderCmd struct {
	ReaderOptions
}

func (h *HeaderCmd) Run(args []string) error {
	set := flag.NewFlagSet("header", flag.ContinueOnError)
	set.BoolVar(&h.Verbose, "v", false, "print debug messages of the reader")
	if err := set.Parse(args); err != nil {
		return err
	}
	doc, err := openDocument(set.Arg(0), h.ReaderOptions)
	if err != nil {
		return err
	}
	defer doc.Close()

	header, ok := doc.Header()
	if !ok {
		fmt.Fprintf(stderr, "%s: document has no header", doc.File)
		fmt.Fprintln(stderr)
		return errFail
	}
	_, err = io.WriteString(stdout, header)
	return err
}
