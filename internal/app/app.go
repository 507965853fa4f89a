// ABOUTME: Application orchestration
// ABOUTME: Wires library, queue, sink, player, and UI into one session
package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/driftwave/driftwave-go/internal/library"
	"github.com/driftwave/driftwave-go/internal/player"
	"github.com/driftwave/driftwave-go/internal/queue"
	"github.com/driftwave/driftwave-go/internal/sink"
	"github.com/driftwave/driftwave-go/internal/ui"
)

// Config holds session configuration.
type Config struct {
	// MusicDir is the directory scanned for playable files.
	MusicDir string
	// AlternateScreen hides prior terminal history for the session.
	AlternateScreen bool
	// StartVolume is the initial volume fraction in [0, 1].
	StartVolume float64
}

// App is one player session: a playback loop and a status panel UI
// that fail together.
type App struct {
	config Config
	player *player.Player
}

// New scans the music directory and assembles the session.
func New(config Config) (*App, error) {
	paths, err := library.Scan(config.MusicDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no playable files under %s", config.MusicDir)
	}

	q := queue.New(paths)
	out := sink.New(config.StartVolume)

	return &App{
		config: config,
		player: player.New(q, out),
	}, nil
}

// Run plays until the user quits, ctx is cancelled, or either loop
// fails. A failure on one side cancels the other before terminal
// teardown, so the session never leaves a dangling writer behind.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.player.Run(ctx)
	})

	g.Go(func() error {
		defer cancel()
		return ui.Run(ctx, a.player, a.player.Commands(), a.config.AlternateScreen)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
