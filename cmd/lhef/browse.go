package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/midbel/cli"
	"github.com/midbel/hep/lhef"
)

var browseCmd = cli.Command{
	Name:    "browse",
	Summary: "view events interactively",
	Handler: &BrowseCmd{},
}

type BrowseCmd struct {
	WithInfo bool
}

func (b *BrowseCmd) Run(args []string) error {
	set := flag.NewFlagSet("browse", flag.ContinueOnError)
	set.BoolVar(&b.WithInfo, "info", false, "show the optional information of events")
	if err := set.Parse(args); err != nil {
		return err
	}
	doc, err := openDocument(set.Arg(0), ReaderOptions{})
	if err != nil {
		return err
	}
	defer doc.Close()

	m := createBrowser(doc, b.WithInfo)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	return m.err
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)

const browseKeys = "n/→ next • p/← previous • g first • i run info • ↑/↓ scroll • q quit"

// browser keeps the events already read so that the user can go back; the
// reader itself only moves forward.
type browser struct {
	doc      *Document
	withInfo bool

	events []*lhef.Event
	curr   int
	run    bool
	done   bool
	err    error

	view viewport.Model
}

func createBrowser(doc *Document, withInfo bool) *browser {
	b := browser{
		doc:      doc,
		withInfo: withInfo,
		run:      true,
		view:     viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
	}
	b.refresh()
	return &b
}

func (b *browser) Init() tea.Cmd {
	return nil
}

func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.view.SetWidth(msg.Width)
		b.view.SetHeight(max(msg.Height-1, 1))
		return b, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "n", "right":
			b.next()
			return b, nil
		case "p", "left":
			b.prev()
			return b, nil
		case "g", "home":
			b.run = false
			b.curr = 0
			b.refresh()
			return b, nil
		case "i":
			b.run = !b.run
			b.refresh()
			return b, nil
		}
	}
	var cmd tea.Cmd
	b.view, cmd = b.view.Update(msg)
	return b, cmd
}

func (b *browser) View() tea.View {
	status := fmt.Sprintf("%s • %d events read • %s", b.doc.File, len(b.events), browseKeys)
	if b.done {
		status = fmt.Sprintf("%s • end of events", status)
	}
	if b.err != nil {
		status = fmt.Sprintf("%s • %s", status, b.err)
	}
	v := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, b.view.View(), statusStyle.Render(status)))
	v.AltScreen = true
	return v
}

func (b *browser) next() {
	if b.run {
		b.run = false
		b.curr = 0
	} else {
		b.curr++
	}
	if b.curr >= len(b.events) && !b.load() {
		b.curr = max(len(b.events)-1, 0)
	}
	b.refresh()
}

func (b *browser) prev() {
	if b.run {
		return
	}
	if b.curr == 0 {
		b.run = true
	} else {
		b.curr--
	}
	b.refresh()
}

func (b *browser) load() bool {
	if b.done || b.err != nil {
		return false
	}
	evt, err := b.doc.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			b.done = true
		} else {
			b.err = err
		}
		return false
	}
	b.events = append(b.events, evt)
	return true
}

func (b *browser) refresh() {
	switch {
	case b.run || len(b.events) == 0:
		b.view.SetContent(renderRun(b.doc))
	default:
		b.view.SetContent(renderEvent(b.curr+1, b.events[b.curr], b.withInfo))
	}
	b.view.GotoTop()
}
