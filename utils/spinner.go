package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Spinner is the progress indicator shown while a long-running step is active.
type Spinner struct {
	delay    time.Duration
	writer   io.Writer
	message  string
	StopMsg  string
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewSpinner instantiates a new progress indicator.
func NewSpinner(msg string, d time.Duration) *Spinner {
	return &Spinner{
		delay:    d,
		writer:   os.Stderr,
		message:  msg,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start starts the progress indicator.
func (s *Spinner) Start() {
	if NoColor {
		fmt.Fprintln(s.writer, s.message)
		return
	}

	go func() {
		defer close(s.doneChan)
		ticker := time.NewTicker(s.delay)
		defer ticker.Stop()

		frames := []rune(`⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏`)
		for i := 0; ; i++ {
			select {
			case <-s.stopChan:
				fmt.Fprintf(s.writer, "\r%s\r", strings.Repeat(" ", len(s.message)+2))
				if len(s.StopMsg) > 0 {
					fmt.Fprintln(s.writer, s.StopMsg)
				}
				return
			case <-ticker.C:
				fmt.Fprintf(s.writer, "\r%s %s%c%s", s.message,
					SuccessColor, frames[i%len(frames)], DefaultColor)
			}
		}
	}()
}

// Stop stops the progress indicator and waits for the line to be cleared.
func (s *Spinner) Stop() {
	if NoColor {
		return
	}
	close(s.stopChan)
	<-s.doneChan
}
