package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var (
		out  bytes.Buffer
		errs bytes.Buffer
		wo   = stdout
		we   = stderr
	)
	stdout, stderr = &out, &errs
	t.Cleanup(func() {
		stdout, stderr = wo, we
	})
	return &out, &errs
}

func TestCommands(t *testing.T) {
	var (
		file    = writeSample(t, false)
		missing = filepath.Join(t.TempDir(), "missing.lhe")
	)
	data := []struct {
		Name     string
		Handler  interface{ Run([]string) error }
		Args     []string
		Fail     bool
		Want     []string
		Unwanted []string
		Stderr   string
	}{
		{
			Name:    "info",
			Handler: &InfoCmd{},
			Args:    []string{file},
			Want:    []string{"2212", "101"},
		},
		{
			Name:    "info-missing",
			Handler: &InfoCmd{},
			Args:    []string{missing},
			Fail:    true,
		},
		{
			Name:    "header",
			Handler: &HeaderCmd{},
			Args:    []string{file},
			Fail:    true,
			Stderr:  "document has no header",
		},
		{
			Name:    "count",
			Handler: &CountCmd{},
			Args:    []string{"-q", file},
			Want:    []string{": 2 events"},
		},
		{
			Name:    "count-missing",
			Handler: &CountCmd{},
			Args:    []string{"-q", file, missing},
			Fail:    true,
			Want:    []string{": 2 events"},
			Stderr:  "missing.lhe",
		},
		{
			Name:    "dump",
			Handler: &DumpCmd{},
			Args:    []string{file},
			Want:    []string{"event #1", "event #2"},
		},
		{
			Name:     "dump-skip",
			Handler:  &DumpCmd{},
			Args:     []string{"-s", "1", file},
			Want:     []string{"event #2"},
			Unwanted: []string{"event #1"},
		},
		{
			Name:     "dump-limit",
			Handler:  &DumpCmd{},
			Args:     []string{"-n", "1", file},
			Want:     []string{"event #1"},
			Unwanted: []string{"event #2"},
		},
		{
			Name:     "dump-skip-all",
			Handler:  &DumpCmd{},
			Args:     []string{"-s", "5", file},
			Unwanted: []string{"event #1", "event #2"},
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			out, errs := capture(t)
			err := d.Handler.Run(d.Args)
			if d.Fail {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			for _, w := range d.Want {
				assert.Contains(t, out.String(), w)
			}
			for _, w := range d.Unwanted {
				assert.NotContains(t, out.String(), w)
			}
			if d.Stderr != "" {
				assert.Contains(t, errs.String(), d.Stderr)
			}
		})
	}
}

func TestHeaderCommandWithoutHeader(t *testing.T) {
	capture(t)
	err := (&HeaderCmd{}).Run([]string{writeSample(t, false)})
	assert.ErrorIs(t, err, errFail)
}

func TestCountCommandFailure(t *testing.T) {
	capture(t)
	err := (&CountCmd{}).Run([]string{"-q", filepath.Join(t.TempDir(), "missing.lhe")})
	assert.ErrorIs(t, err, errFail)
}

func TestPrepareCommands(t *testing.T) {
	root := prepare()
	capture(t)
	assert.NoError(t, root.Execute([]string{"count", "-q", writeSample(t, false)}))
	assert.NoError(t, root.Execute([]string{"events", "-n", "1", writeSample(t, false)}))
}
