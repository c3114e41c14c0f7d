package utils

import (
	"fmt"
	"os"
	"time"
)

const spinnerInterval = 100 * time.Millisecond

// Spinner animates an activity indicator on stderr while a conversion
// runs. One Spinner drives one Start/Stop cycle at a time.
type Spinner struct {
	done chan struct{}
}

// NewSpinner returns an idle indicator.
func NewSpinner() *Spinner {
	return &Spinner{}
}

// Start animates the indicator next to message until Stop is called.
func (s *Spinner) Start(message string) {
	s.done = make(chan struct{}, 1)

	go func() {
		const glyphs = `-\|/`
		tick := time.NewTicker(spinnerInterval)
		defer tick.Stop()
		for i := 0; ; i++ {
			fmt.Fprintf(os.Stderr, "\r%s%s %c%s",
				message, SuccessColor, glyphs[i%len(glyphs)], DefaultColor)
			select {
			case <-s.done:
				return
			case <-tick.C:
			}
		}
	}()
}

// Stop halts the indicator.
func (s *Spinner) Stop() {
	s.done <- struct{}{}
}
