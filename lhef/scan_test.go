package lhef_test

import (
	"strings"
	"testing"

	"github.com/midbel/hep/lhef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(s *lhef.Scanner) []lhef.Token {
	var list []lhef.Token
	for {
		tok := s.Scan()
		list = append(list, tok)
		if tok.Type == lhef.EOF || tok.Type == lhef.Invalid {
			break
		}
	}
	return list
}

func TestScanTokens(t *testing.T) {
	str := "<header>\n some  text\n\tmore</header >\n<!-- note -->\n<?xml version=\"1.0\"?>"
	list := scanAll(lhef.Scan(strings.NewReader(str)))

	want := []struct {
		Type    rune
		Literal string
	}{
		{Type: lhef.OpenTag, Literal: "header"},
		{Type: lhef.Text, Literal: "\n some  text\n\tmore"},
		{Type: lhef.CloseTag, Literal: "header"},
		{Type: lhef.Text, Literal: "\n"},
		{Type: lhef.Comment, Literal: " note "},
		{Type: lhef.Text, Literal: "\n"},
		{Type: lhef.ProcInst, Literal: "xml version=\"1.0\""},
		{Type: lhef.EOF},
	}
	require.Len(t, list, len(want))
	for i, w := range want {
		assert.Equal(t, w.Type, list[i].Type, "token %d: %s", i, list[i])
		assert.Equal(t, w.Literal, list[i].Literal, "token %d", i)
	}
}

func TestScanPosition(t *testing.T) {
	list := scanAll(lhef.Scan(strings.NewReader("<init>\n  1 2\n</init>")))
	require.Len(t, list, 4)

	assert.Equal(t, lhef.Position{Line: 1, Column: 1}, list[0].Position)
	assert.Equal(t, lhef.Position{Line: 1, Column: 7}, list[1].Position)
	assert.Equal(t, lhef.Position{Line: 3, Column: 1}, list[2].Position)
}

func TestScanInvalid(t *testing.T) {
	data := []struct {
		Input string
		Cause string
	}{
		{
			Input: `<event type="signal">`,
			Cause: "attribute on event",
		},
		{
			Input: `<init extra>`,
			Cause: "extra token after name",
		},
		{
			Input: `<>`,
			Cause: "empty name",
		},
		{
			Input: `< init>`,
			Cause: "blank before name",
		},
		{
			Input: `</>`,
			Cause: "empty close tag",
		},
		{
			Input: `</event extra>`,
			Cause: "extra token in close tag",
		},
		{
			Input: `<init`,
			Cause: "tag not closed",
		},
		{
			Input: `</init  `,
			Cause: "close tag not closed",
		},
		{
			Input: `<event/>`,
			Cause: "empty element",
		},
		{
			Input: `<!-- comment`,
			Cause: "comment not closed",
		},
		{
			Input: `<!DOCTYPE lhef>`,
			Cause: "declaration",
		},
		{
			Input: `<?xml version="1.0"`,
			Cause: "processing instruction not closed",
		},
		{
			Input: `<LesHouchesEvents version="3.0">`,
			Cause: "attribute on root without permission",
		},
	}
	for _, d := range data {
		list := scanAll(lhef.Scan(strings.NewReader(d.Input)))
		tok := list[len(list)-1]
		assert.Equal(t, lhef.Invalid, tok.Type, "%s: %s", d.Cause, tok)
	}
}

func TestScanAttributes(t *testing.T) {
	scan := lhef.Scan(strings.NewReader(`<LesHouchesEvents version="3.0" generator='test' >`))
	scan.AllowAttributes("LesHouchesEvents")

	tok := scan.Scan()
	require.Equal(t, lhef.OpenTag, tok.Type, tok.String())
	assert.Equal(t, "LesHouchesEvents", tok.Literal)
	assert.Equal(t, []lhef.Attribute{
		{Name: "version", Value: "3.0"},
		{Name: "generator", Value: "test"},
	}, tok.Attrs)
	assert.Equal(t, lhef.EOF, scan.Scan().Type)

	data := []string{
		`<LesHouchesEvents version>`,
		`<LesHouchesEvents version=3.0>`,
		`<LesHouchesEvents version="3.0>`,
		`<LesHouchesEvents/>`,
	}
	for _, str := range data {
		scan := lhef.Scan(strings.NewReader(str))
		scan.AllowAttributes("LesHouchesEvents")
		assert.Equal(t, lhef.Invalid, scan.Scan().Type, str)
	}
}

func TestScanBody(t *testing.T) {
	str := "<event>1 2\n<rwgt><wgt id='1'> 0.5 </wgt></rwgt> a < b\n</event  >tail"
	scan := lhef.Scan(strings.NewReader(str))

	tok := scan.Scan()
	require.Equal(t, lhef.OpenTag, tok.Type)

	body := scan.ScanBody("event")
	require.Equal(t, lhef.Text, body.Type, body.String())
	assert.Equal(t, "1 2\n<rwgt><wgt id='1'> 0.5 </wgt></rwgt> a < b\n", body.Literal)
	assert.Equal(t, lhef.Position{Line: 1, Column: 8}, body.Position)

	tok = scan.Scan()
	assert.Equal(t, lhef.Text, tok.Type)
	assert.Equal(t, "tail", tok.Literal)
	assert.Equal(t, lhef.EOF, scan.Scan().Type)
}

func TestScanBodyNotClosed(t *testing.T) {
	scan := lhef.Scan(strings.NewReader("<event>1 2 3</even>"))
	scan.Scan()

	body := scan.ScanBody("event")
	assert.Equal(t, lhef.Invalid, body.Type)
}
