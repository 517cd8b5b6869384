package main

import (
	"flag"
	"fmt"

	"github.com/midbel/cli"
)

var infoCmd = cli.Command{
	Name:    "info",
	Summary: "print run information",
	Handler: &InfoCmd{},
}

type InfoCmd struct {
	ReaderOptions
}

func (i *InfoCmd) Run(args []string) error {
	set := flag.NewFlagSet("info", flag.ContinueOnError)
	set.BoolVar(&i.Verbose, "v", false, "print debug messages of the reader")
	if err := set.Parse(args); err != nil {
		return err
	}
	files := set.Args()
	if len(files) == 0 {
		files = append(files, "-")
	}
	for j, file := range files {
		doc, err := openDocument(file, i.ReaderOptions)
		if err != nil {
			return err
		}
		if j > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintln(stdout, renderRun(doc))
		doc.Close()
	}
	return nil
}
