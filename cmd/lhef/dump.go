package main

import (
	"flag"
	"fmt"

	"github.com/midbel/cli"
)

var dumpCmd = cli.Command{
	Name:    "dump",
	Alias:   []string{"events"},
	Summary: "print events of a document",
	Handler: &DumpCmd{},
}

type DumpCmd struct {
	Limit    int
	Skip     int
	WithInfo bool
	ReaderOptions
}

func (d *DumpCmd) Run(args []string) error {
	set := flag.NewFlagSet("dump", flag.ContinueOnError)
	set.IntVar(&d.Limit, "n", 0, "maximum number of events to print, 0 prints all events")
	set.IntVar(&d.Skip, "s", 0, "number of events to skip before printing")
	set.BoolVar(&d.WithInfo, "info", false, "print the optional information of events")
	set.BoolVar(&d.Verbose, "v", false, "print debug messages of the reader")
	if err := set.Parse(args); err != nil {
		return err
	}
	doc, err := openDocument(set.Arg(0), d.ReaderOptions)
	if err != nil {
		return err
	}
	defer doc.Close()

	var printed int
	for evt, err := range doc.Events() {
		if err != nil {
			return fmt.Errorf("%s: event #%d: %w", doc.File, doc.Count()+1, err)
		}
		if doc.Count() <= d.Skip {
			continue
		}
		if printed > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintln(stdout, renderEvent(doc.Count(), evt, d.WithInfo))
		printed++
		if d.Limit > 0 && printed >= d.Limit {
			break
		}
	}
	return nil
}
