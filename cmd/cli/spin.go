package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Spinner draws a progress indicator with a message on a single terminal
// line until it is stopped.
type Spinner struct {
	out    io.Writer
	frames []string

	mu      sync.Mutex
	message string
	running bool

	stop   sync.Once
	ticker *time.Ticker
	done   chan struct{}
	wait   sync.WaitGroup
}

func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{
		out:    w,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		ticker: time.NewTicker(time.Millisecond * 90),
		done:   make(chan struct{}),
	}
}

func (s *Spinner) SetMessage(msg string) {
	msg = strings.TrimSpace(msg)
	msg = strings.TrimRight(msg, ".")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
}

func (s *Spinner) Run(fn func()) {
	s.Start()
	defer s.Stop()
	fn()
}

func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.wait.Add(1)
	go s.run()
}

func (s *Spinner) Stop() {
	s.stop.Do(func() {
		close(s.done)
		s.ticker.Stop()
		s.wait.Wait()
		clearLine(s.out)
	})
}

func (s *Spinner) run() {
	defer s.wait.Done()
	for i := 0; ; i++ {
		select {
		case <-s.ticker.C:
			s.mu.Lock()
			msg := s.message
			s.mu.Unlock()

			clearLine(s.out)
			io.WriteString(s.out, s.frames[i%len(s.frames)])
			if msg != "" {
				fmt.Fprintf(s.out, " %s...", msg)
			}
		case <-s.done:
			return
		}
	}
}

func clearLine(w io.Writer) {
	io.WriteString(w, "\x1b[0G\x1b[2K\x1b[0G")
}
