// ABOUTME: TUI session setup and teardown
// ABOUTME: Runs the bubbletea program with optional alternate screen
package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftwave/driftwave-go/internal/player"
)

// Run starts the status panel and blocks until the user quits, ctx is
// cancelled, or terminal I/O fails. alternate switches to the
// terminal's isolated screen buffer, hiding prior history for the
// session. Raw mode, cursor visibility, and screen state are restored
// on every exit path, including panics.
func Run(ctx context.Context, st State, commands chan<- player.Command, alternate bool) error {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	}
	if alternate {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(ctx, st, commands), opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			// Cancelled from outside; whoever cancelled reports the cause.
			return nil
		}
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
