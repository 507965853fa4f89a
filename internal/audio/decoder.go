// ABOUTME: Audio file decoding
// ABOUTME: Opens mp3/flac files as 16-bit little-endian PCM streams
package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Stream is a decoded audio file. Read yields interleaved 16-bit
// little-endian PCM samples.
type Stream struct {
	pcm        io.Reader
	file       *os.File
	sampleRate int
	channels   int
	duration   time.Duration
}

// Open decodes the audio file at path based on its extension.
func Open(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	var s *Stream
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, err = openMP3(f)
	case ".flac":
		s, err = openFLAC(f)
	default:
		err = fmt.Errorf("unsupported audio format: %s", filepath.Ext(path))
	}

	if err != nil {
		f.Close()
		return nil, err
	}

	s.file = f
	return s, nil
}

func (s *Stream) Read(p []byte) (int, error) { return s.pcm.Read(p) }

// Close releases the underlying file.
func (s *Stream) Close() error { return s.file.Close() }

// SampleRate returns the stream's sample rate in Hz.
func (s *Stream) SampleRate() int { return s.sampleRate }

// Channels returns the number of interleaved channels.
func (s *Stream) Channels() int { return s.channels }

// Duration returns the total track length, or zero if unknown.
func (s *Stream) Duration() time.Duration { return s.duration }
