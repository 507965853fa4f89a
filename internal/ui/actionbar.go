// ABOUTME: Action bar state and formatting
// ABOUTME: Maps the frame snapshot to the main status line text
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/driftwave/driftwave-go/internal/track"
)

var bold = lipgloss.NewStyle().Bold(true)

type playState int

const (
	stateLoading playState = iota
	statePlaying
	statePaused
)

// actionBar is the three-state summary driving the main status line.
// It is derived fresh each frame, never mutated.
type actionBar struct {
	state playState
	track *track.Info
}

// newActionBar derives the bar from one frame's observations: no
// track means loading, otherwise the paused flag picks the word.
func newActionBar(t *track.Info, paused bool) actionBar {
	switch {
	case t == nil:
		return actionBar{state: stateLoading}
	case paused:
		return actionBar{state: statePaused, track: t}
	default:
		return actionBar{state: statePlaying, track: t}
	}
}

// format returns the display text and its visible character count.
// The count excludes styling so downstream width math stays accurate.
func (a actionBar) format() (string, int) {
	switch a.state {
	case statePlaying:
		return "playing " + bold.Render(a.track.Name), len("playing") + 1 + len(a.track.Name)
	case statePaused:
		return "paused " + bold.Render(a.track.Name), len("paused") + 1 + len(a.track.Name)
	default:
		return "loading", len("loading")
	}
}
