// ABOUTME: Status panel composition
// ABOUTME: Fixed-width main line, progress bar math, and box drawing
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

const (
	// panelWidth is the interior width of the panel.
	panelWidth = 43

	// progressWidth is the bar width, excluding the brackets and
	// the surrounding time displays.
	progressWidth = panelWidth - 16
)

func volumeSuffix(volume float64) string {
	return fmt.Sprintf(" Volume: %d%% ", int(math.Round(volume*100)))
}

// composeMain lays the status text and volume suffix out in exactly
// panelWidth visible columns. Text that would collide with the suffix
// is truncated with an ellipsis; truncation is ANSI-aware so styled
// track names are never cut mid-sequence.
func composeMain(text string, width int, volume string) string {
	avail := panelWidth - len(volume)
	if width > avail {
		return ansi.Truncate(text, avail, "...") + volume
	}
	return text + strings.Repeat(" ", avail-width) + volume
}

// filledCells maps elapsed over total (both in whole seconds) onto
// the progress bar, clamped to [0, progressWidth]. An unknown total
// leaves the bar empty.
func filledCells(elapsed, total time.Duration) int {
	totalSecs := int(total / time.Second)
	if totalSecs <= 0 {
		return 0
	}

	ratio := float64(int(elapsed/time.Second)) / float64(totalSecs)
	filled := int(math.Round(ratio * progressWidth))
	if filled < 0 {
		return 0
	}
	if filled > progressWidth {
		return progressWidth
	}
	return filled
}

func progressLine(elapsed, total time.Duration) string {
	filled := filledCells(elapsed, total)
	bar := strings.Repeat("/", filled) + strings.Repeat(" ", progressWidth-filled)
	return fmt.Sprintf(" [%s] %s/%s ", bar, formatTime(elapsed), formatTime(total))
}

func formatTime(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// legendLine renders the key legend, exactly panelWidth columns wide.
func legendLine() string {
	entries := []string{
		bold.Render("[s]") + "kip",
		bold.Render("[p]") + "ause",
		bold.Render("[q]") + "uit",
		"volume " + bold.Render("[+/-]"),
	}
	return strings.Join(entries, "    ")
}

// renderPanel draws the three-row box for one frame's snapshot.
func renderPanel(snap Snapshot) string {
	text, width := newActionBar(snap.Track, snap.Paused).format()
	main := composeMain(text, width, volumeSuffix(snap.Volume))

	var total time.Duration
	if snap.Track != nil {
		total = snap.Track.Duration
	}

	rows := []string{main, progressLine(snap.Elapsed, total), legendLine()}

	border := strings.Repeat("─", panelWidth+2)
	var b strings.Builder
	b.WriteString("┌" + border + "┐\n")
	for _, row := range rows {
		b.WriteString("│ " + row + " │\n")
	}
	b.WriteString("└" + border + "┘")
	return b.String()
}
