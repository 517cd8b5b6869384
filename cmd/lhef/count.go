package main

import (
	"flag"
	"fmt"

	"github.com/midbel/cli"
	spinner "github.com/midbel/hep/cmd/cli"
)

var countCmd = cli.Command{
	Name:    "count",
	Summary: "count events in documents",
	Handler: &CountCmd{},
}

type CountCmd struct {
	Quiet bool
	ReaderOptions
}

func (c *CountCmd) Run(args []string) error {
	set := flag.NewFlagSet("count", flag.ContinueOnError)
	set.BoolVar(&c.Quiet, "q", false, "do not show progress while reading events")
	set.BoolVar(&c.Verbose, "v", false, "print debug messages of the reader")
	if err := set.Parse(args); err != nil {
		return err
	}
	files := set.Args()
	if len(files) == 0 {
		files = append(files, "-")
	}
	var failed bool
	for _, file := range files {
		count, err := c.count(file)
		if err != nil {
			fmt.Fprintln(stderr, err)
			failed = true
			continue
		}
		fmt.Fprintf(stdout, "%s: %d events", file, count)
		fmt.Fprintln(stdout)
	}
	if failed {
		return errFail
	}
	return nil
}

func (c *CountCmd) count(file string) (int, error) {
	doc, err := openDocument(file, c.ReaderOptions)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	var spin *spinner.Spinner
	if !c.Quiet && !c.Verbose {
		spin = spinner.NewSpinner(stderr)
		spin.SetMessage(fmt.Sprintf("reading events from %s", file))
		spin.Start()
		defer spin.Stop()
	}
	for _, err := range doc.Events() {
		if err != nil {
			return doc.Count(), fmt.Errorf("%s: event #%d: %w", file, doc.Count()+1, err)
		}
		if spin != nil && doc.Count()%1000 == 0 {
			spin.SetMessage(fmt.Sprintf("%s: %d events read", file, doc.Count()))
		}
	}
	return doc.Count(), nil
}
