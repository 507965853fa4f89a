// ABOUTME: Tests for panel composition and progress math
// ABOUTME: Covers fixed-width layout, truncation, clamping, and time display
package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/driftwave/driftwave-go/internal/track"
)

func TestVolumeSuffix(t *testing.T) {
	tests := []struct {
		volume float64
		want   string
	}{
		{0.42, " Volume: 42% "},
		{0.0, " Volume: 0% "},
		{1.0, " Volume: 100% "},
		{0.005, " Volume: 1% "},
	}

	for _, tt := range tests {
		if got := volumeSuffix(tt.volume); got != tt.want {
			t.Errorf("volumeSuffix(%v): expected %q, got %q", tt.volume, tt.want, got)
		}
	}
}

func TestVolumeSuffixIdempotent(t *testing.T) {
	first := volumeSuffix(0.37)
	for i := 0; i < 5; i++ {
		if got := volumeSuffix(0.37); got != first {
			t.Errorf("expected stable output, got %q then %q", first, got)
		}
	}
}

func TestComposeMainPadded(t *testing.T) {
	vol := volumeSuffix(0.42)
	line := composeMain("playing lofi", len("playing lofi"), vol)

	if got := ansi.StringWidth(line); got != panelWidth {
		t.Errorf("expected width %d, got %d (%q)", panelWidth, got, line)
	}
	if !strings.HasSuffix(line, vol) {
		t.Errorf("expected line to end with volume suffix, got %q", line)
	}
	if strings.Contains(line, "...") {
		t.Errorf("short text should not be truncated: %q", line)
	}
}

func TestComposeMainTruncated(t *testing.T) {
	name := strings.Repeat("x", 60)
	text := "playing " + name
	vol := volumeSuffix(0.42)

	line := composeMain(text, len(text), vol)

	if got := ansi.StringWidth(line); got != panelWidth {
		t.Errorf("expected width %d, got %d", panelWidth, got)
	}
	if !strings.Contains(line, "...") {
		t.Errorf("expected ellipsis in truncated line: %q", line)
	}
	if !strings.HasSuffix(line, vol) {
		t.Errorf("expected volume suffix after ellipsis, got %q", line)
	}
}

func TestComposeMainTruncationBoundary(t *testing.T) {
	vol := volumeSuffix(1.0)
	avail := panelWidth - len(vol)

	exact := strings.Repeat("a", avail)
	if line := composeMain(exact, avail, vol); strings.Contains(line, "...") {
		t.Error("text exactly filling the space must not be truncated")
	}

	over := strings.Repeat("a", avail+1)
	if line := composeMain(over, avail+1, vol); !strings.Contains(line, "...") {
		t.Error("text one past the space must be truncated")
	}
}

func TestComposeMainStyledText(t *testing.T) {
	name := strings.Repeat("y", 50)
	styled := "playing \x1b[1m" + name + "\x1b[0m"
	width := len("playing ") + len(name)
	vol := volumeSuffix(0.5)

	line := composeMain(styled, width, vol)

	if got := ansi.StringWidth(line); got != panelWidth {
		t.Errorf("expected visible width %d with styled text, got %d", panelWidth, got)
	}
}

func TestFilledCells(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		total   time.Duration
		want    int
	}{
		{0, 0, 0},
		{30 * time.Second, 0, 0},
		{0, 2 * time.Minute, 0},
		{65 * time.Second, 125 * time.Second, 14},
		{125 * time.Second, 125 * time.Second, progressWidth},
		{10 * time.Minute, 125 * time.Second, progressWidth},
	}

	for _, tt := range tests {
		if got := filledCells(tt.elapsed, tt.total); got != tt.want {
			t.Errorf("filledCells(%v, %v): expected %d, got %d", tt.elapsed, tt.total, tt.want, got)
		}
	}
}

func TestFilledCellsMonotonic(t *testing.T) {
	total := 125 * time.Second
	prev := 0
	for s := 0; s <= 200; s++ {
		got := filledCells(time.Duration(s)*time.Second, total)
		if got < prev {
			t.Fatalf("fill decreased at %ds: %d -> %d", s, prev, got)
		}
		if got < 0 || got > progressWidth {
			t.Fatalf("fill out of range at %ds: %d", s, got)
		}
		prev = got
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{65 * time.Second, "01:05"},
		{10 * time.Minute, "10:00"},
		{62*time.Minute + 5*time.Second, "62:05"},
	}

	for _, tt := range tests {
		if got := formatTime(tt.d); got != tt.want {
			t.Errorf("formatTime(%v): expected %q, got %q", tt.d, tt.want, got)
		}
	}
}

func TestProgressLineWidth(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		total   time.Duration
	}{
		{0, 0},
		{65 * time.Second, 125 * time.Second},
		{90 * time.Second, 0},
	}

	for _, tt := range tests {
		line := progressLine(tt.elapsed, tt.total)
		if got := ansi.StringWidth(line); got != panelWidth {
			t.Errorf("progressLine(%v, %v): expected width %d, got %d (%q)",
				tt.elapsed, tt.total, panelWidth, got, line)
		}
	}
}

func TestProgressLineUnknownDuration(t *testing.T) {
	line := progressLine(90*time.Second, 0)

	bar := strings.SplitN(line, "]", 2)[0]
	if strings.Contains(bar, "/") {
		t.Errorf("expected empty bar with unknown duration, got %q", line)
	}
	if !strings.Contains(line, "01:30/00:00") {
		t.Errorf("expected elapsed shown against 00:00 total, got %q", line)
	}
}

func TestLegendLineWidth(t *testing.T) {
	if got := ansi.StringWidth(legendLine()); got != panelWidth {
		t.Errorf("expected legend width %d, got %d", panelWidth, got)
	}
}

func TestRenderPanelShape(t *testing.T) {
	snap := Snapshot{
		Track:   &track.Info{Name: "slow tide", Duration: 125 * time.Second},
		Volume:  0.42,
		Elapsed: 65 * time.Second,
	}

	lines := strings.Split(renderPanel(snap), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 panel lines, got %d", len(lines))
	}

	for i, line := range lines {
		if got := ansi.StringWidth(line); got != panelWidth+4 {
			t.Errorf("line %d: expected width %d, got %d (%q)", i, panelWidth+4, got, line)
		}
	}

	if !strings.HasPrefix(lines[0], "┌") || !strings.HasSuffix(lines[0], "┐") {
		t.Errorf("bad top border: %q", lines[0])
	}
	if !strings.HasPrefix(lines[4], "└") || !strings.HasSuffix(lines[4], "┘") {
		t.Errorf("bad bottom border: %q", lines[4])
	}
	if !strings.Contains(lines[1], "Volume: 42%") {
		t.Errorf("expected volume in main row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "01:05/02:05") {
		t.Errorf("expected progress times: %q", lines[2])
	}
}

func TestRenderPanelLoading(t *testing.T) {
	panel := renderPanel(Snapshot{Volume: 1.0})

	if !strings.Contains(panel, "loading") {
		t.Errorf("expected loading state in panel: %q", panel)
	}
	if !strings.Contains(panel, "00:00/00:00") {
		t.Errorf("expected zero progress while loading: %q", panel)
	}
}
