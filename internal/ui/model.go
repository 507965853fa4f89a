// ABOUTME: Bubbletea model for the status panel
// ABOUTME: Frame tick snapshots player state; key presses become commands
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftwave/driftwave-go/internal/player"
	"github.com/driftwave/driftwave-go/internal/track"
)

// frameDelta is how long to wait in between frames. Short enough to
// feel snappy, long enough to stay cheap.
const frameDelta = time.Second * 5 / 60

// State is the read-only view of the player the render loop observes.
// Every method must be safe to call concurrently with playback.
type State interface {
	CurrentTrack() *track.Info
	IsPaused() bool
	Volume() float64
	Position() time.Duration
}

// Snapshot is one frame's momentary read of player state.
type Snapshot struct {
	Track   *track.Info
	Paused  bool
	Volume  float64
	Elapsed time.Duration
}

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameDelta, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model drives the status panel and translates key presses into
// player commands. It never mutates player state directly.
type Model struct {
	ctx      context.Context
	player   State
	commands chan<- player.Command
	snap     Snapshot
}

// NewModel creates the panel model over a player state view and the
// outbound command channel.
func NewModel(ctx context.Context, st State, commands chan<- player.Command) Model {
	m := Model{ctx: ctx, player: st, commands: commands}
	m.snap = m.snapshot()
	return m
}

func (m Model) snapshot() Snapshot {
	return Snapshot{
		Track:   m.player.CurrentTrack(),
		Paused:  m.player.IsPaused(),
		Volume:  m.player.Volume(),
		Elapsed: m.player.Position(),
	}
}

// Init schedules the first frame.
func (m Model) Init() tea.Cmd {
	return frameTick()
}

// Update handles frame ticks and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.snap = m.snapshot()
		return m, frameTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// View renders the current frame's panel.
func (m Model) View() string {
	return renderPanel(m.snap)
}

// handleKey dispatches a key press. Unlisted keys do nothing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "right", "+", "=":
		return m.send(player.AdjustVolume{Delta: 0.1})
	case "down", "left", "-", "_":
		return m.send(player.AdjustVolume{Delta: -0.1})
	case ">", ".":
		return m.send(player.AdjustVolume{Delta: 0.01})
	case "<", ",":
		return m.send(player.AdjustVolume{Delta: -0.01})
	case "s":
		if m.player.CurrentTrack() == nil {
			return m, nil
		}
		return m.send(player.SkipTrack{})
	case "p":
		return m.send(player.TogglePause{})
	}
	return m, nil
}

// send delivers a command in press order. Sends block rather than
// drop; if the consumer is gone its context cancellation ends the
// session instead.
func (m Model) send(cmd player.Command) (tea.Model, tea.Cmd) {
	select {
	case m.commands <- cmd:
		return m, nil
	case <-m.ctx.Done():
		return m, tea.Quit
	}
}
