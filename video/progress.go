package video

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// extractProgress renders a decode progress bar by polling the working
// directory for the frames ffmpeg has written so far. The expected total is
// an estimate (duration times rate), so rendering is clamped at 100%.
type extractProgress struct {
	dir      string
	expected int
	prog     progress.Model
	done     chan bool
}

func newExtractProgress(dir string, expected int) *extractProgress {
	return &extractProgress{
		dir:      dir,
		expected: expected,
		prog:     progress.New(progress.WithDefaultGradient()),
		done:     make(chan bool),
	}
}

func (ep *extractProgress) render() {
	if ep.expected <= 0 {
		// Nothing to estimate against, stay quiet until the decode ends
		<-ep.done
		return
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case succeeded := <-ep.done:
			// A failed decode must not flash a 100% bar before the error
			if succeeded {
				fmt.Printf("\r%s\n", ep.prog.ViewAs(1.0))
			}
			return
		case <-ticker.C:
			if count := CountFrames(ep.dir); count > 0 {
				percent := float64(count) / float64(ep.expected)
				if percent > 1.0 {
					percent = 1.0
				}
				fmt.Printf("\r%s", ep.prog.ViewAs(percent))
			}
		}
	}
}

func (ep *extractProgress) stop(succeeded bool) {
	ep.done <- succeeded
}

// Styling definitions
var (
	warnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)
)
