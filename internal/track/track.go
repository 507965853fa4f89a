// ABOUTME: Track descriptor shared between the player and the UI
// ABOUTME: Defines the display name and optional duration of a track
package track

import (
	"path/filepath"
	"strings"
	"time"
)

// Info identifies the track currently loaded in the player.
// A zero Duration means the total length is unknown.
type Info struct {
	Name     string
	Duration time.Duration
}

// NameFromPath derives a display name from an audio file path by
// stripping the directory and extension.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
