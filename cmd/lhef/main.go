package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/midbel/cli"
)

var errFail = errors.New("fail")

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	summary = "lhef inspects Les Houches event files"
	help    = `lhef reads documents in the Les Houches Event File format, plain or
gzip compressed, from a local path, an http(s) url or the standard input (-).

Commands:
  info [-v] [file...]            print the run information of each document
  header [-v] [file]             print the raw content of the header
  count [-q] [-v] [file...]      count the events of each document
  dump [-n N] [-s N] [-info] [-v] [file]
                                 print the particles of events (alias: events)
  browse [-info] [file]          view events one at a time in the terminal`
)

func main() {
	var (
		set  = cli.NewFlagSet("lhef")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"info"}, &infoCmd)
	root.Register([]string{"header"}, &headerCmd)
	root.Register([]string{"count"}, &countCmd)
	root.Register([]string{"dump"}, &dumpCmd)
	root.Register([]string{"events"}, &dumpCmd)
	root.Register([]string{"browse"}, &browseCmd)
	return root
}
