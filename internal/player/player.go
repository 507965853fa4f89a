// ABOUTME: Playback loop and command consumer
// ABOUTME: Advances the queue, applies UI commands, publishes the current track
package player

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/driftwave/driftwave-go/internal/audio"
	"github.com/driftwave/driftwave-go/internal/queue"
	"github.com/driftwave/driftwave-go/internal/track"
)

// Output is the playback device the player drives. *sink.Sink
// satisfies it.
type Output interface {
	Start(stream *audio.Stream) (<-chan error, error)
	Stop()
	TogglePause()
	AdjustVolume(delta float64)
	IsPaused() bool
	Volume() float64
	Position() time.Duration
	Close() error
}

// Player runs the track-advance loop and consumes commands from the
// UI. The current track is published through an atomic pointer so the
// render loop reads a single pointer-swap snapshot, never a lock.
type Player struct {
	queue    *queue.Queue
	out      Output
	current  atomic.Pointer[track.Info]
	commands chan Command
}

// New creates a player over the given queue and output.
func New(q *queue.Queue, out Output) *Player {
	return &Player{
		queue:    q,
		out:      out,
		commands: make(chan Command, 16),
	}
}

// Commands returns the channel the UI sends commands on. Sends are
// never dropped; the channel is buffered and consumed by Run.
func (p *Player) Commands() chan<- Command { return p.commands }

// CurrentTrack returns the playing track, or nil while loading.
func (p *Player) CurrentTrack() *track.Info { return p.current.Load() }

// IsPaused reports the output's paused state.
func (p *Player) IsPaused() bool { return p.out.IsPaused() }

// Volume returns the output's volume fraction in [0, 1].
func (p *Player) Volume() float64 { return p.out.Volume() }

// Position returns elapsed playback time of the current track.
func (p *Player) Position() time.Duration { return p.out.Position() }

// Run plays tracks from the queue until ctx is cancelled or playback
// fails. It owns the output and closes it on exit.
func (p *Player) Run(ctx context.Context) error {
	defer p.out.Close()

	failures := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := p.queue.Next()
		if path == "" {
			return errors.New("queue is empty")
		}

		p.current.Store(nil)

		stream, err := audio.Open(path)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			failures++
			if failures >= p.queue.Len() {
				return fmt.Errorf("no playable tracks in queue: %w", err)
			}
			continue
		}
		failures = 0

		p.current.Store(&track.Info{
			Name:     track.NameFromPath(path),
			Duration: stream.Duration(),
		})
		log.Printf("Playing %s", path)

		done, err := p.out.Start(stream)
		if err != nil {
			stream.Close()
			return fmt.Errorf("starting playback: %w", err)
		}

		err = p.playTrack(ctx, done)
		stream.Close()
		if err != nil {
			return err
		}
	}
}

// playTrack waits for the current track to finish while applying
// commands. Returns nil when the track ends or is skipped.
func (p *Player) playTrack(ctx context.Context, done <-chan error) error {
	for {
		select {
		case <-ctx.Done():
			p.out.Stop()
			return ctx.Err()

		case err := <-done:
			if err != nil {
				return fmt.Errorf("playback: %w", err)
			}
			return nil

		case cmd := <-p.commands:
			if p.apply(cmd) {
				p.out.Stop()
				return nil
			}
		}
	}
}

// apply executes a command and reports whether the current track
// should be skipped.
func (p *Player) apply(cmd Command) bool {
	switch c := cmd.(type) {
	case AdjustVolume:
		p.out.AdjustVolume(c.Delta)
	case TogglePause:
		p.out.TogglePause()
	case SkipTrack:
		return true
	}
	return false
}
