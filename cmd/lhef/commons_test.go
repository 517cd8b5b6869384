package main

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/hep/lhef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<LesHouchesEvents version="1.0">
<init>
2212 2212 6500 6500 0 0 247000 247000 3 1
 1.0 0.1 2.0 101
</init>
<event>
 1 101 1.0 91.188 0.0075 0.13
 23 1 0 0 0 0 0 0 0 91.188 91.188 0 9
</event>
<event>
 1 101 1.0 91.188 0.0075 0.13
 23 1 0 0 0 0 0 0 0 91.188 91.188 0 9
</event>
</LesHouchesEvents>
`

func writeSample(t *testing.T, compress bool) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "sample.lhe")
	if compress {
		file += ".gz"
	}
	w, err := os.Create(file)
	require.NoError(t, err)
	defer w.Close()

	var ws io.Writer = w
	if compress {
		z := gzip.NewWriter(w)
		defer z.Close()
		ws = z
	}
	_, err = io.WriteString(ws, sample)
	require.NoError(t, err)
	return file
}

func TestOpenDocument(t *testing.T) {
	for _, compress := range []bool{false, true} {
		doc, err := openDocument(writeSample(t, compress), ReaderOptions{})
		require.NoError(t, err)

		assert.Equal(t, "1.0", doc.Version())
		var count int
		for _, err := range doc.Events() {
			require.NoError(t, err)
			count++
		}
		assert.Equal(t, 2, count, "compressed: %t", compress)
		assert.NoError(t, doc.Close())
	}
}

func TestOpenDocumentInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "invalid.lhe")
	require.NoError(t, os.WriteFile(file, []byte("<header></header>"), 0o644))

	_, err := openDocument(file, ReaderOptions{})
	assert.ErrorIs(t, err, lhef.ErrMissingInit)
	assert.True(t, strings.HasPrefix(err.Error(), file))

	_, err = openDocument(filepath.Join(t.TempDir(), "missing.lhe"), ReaderOptions{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRender(t *testing.T) {
	doc, err := openDocument(writeSample(t, false), ReaderOptions{})
	require.NoError(t, err)
	defer doc.Close()

	assert.Contains(t, renderRun(doc), "101")

	evt, err := doc.Next()
	require.NoError(t, err)
	out := renderEvent(1, evt, true)
	assert.Contains(t, out, "event #1")
	assert.Contains(t, out, "91.188")
}

func TestBrowserNavigation(t *testing.T) {
	doc, err := openDocument(writeSample(t, false), ReaderOptions{})
	require.NoError(t, err)
	defer doc.Close()

	b := createBrowser(doc, false)
	assert.True(t, b.run)

	b.next()
	assert.False(t, b.run)
	assert.Equal(t, 0, b.curr)
	assert.Len(t, b.events, 1)

	b.next()
	b.next()
	assert.Equal(t, 1, b.curr)
	assert.Len(t, b.events, 2)
	assert.True(t, b.done)
	assert.NoError(t, b.err)

	b.prev()
	b.prev()
	assert.True(t, b.run)
}
