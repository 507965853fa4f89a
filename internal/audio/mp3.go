// ABOUTME: MP3 file decoding
// ABOUTME: Wraps go-mp3 into a PCM Stream with duration metadata
package audio

import (
	"fmt"
	"os"
	"time"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// go-mp3 always outputs 16-bit stereo regardless of the source.
const mp3Channels = 2

func openMP3(f *os.File) (*Stream, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("creating mp3 decoder: %w", err)
	}

	rate := dec.SampleRate()

	// Length reports the decoded stream size in bytes, 4 bytes per
	// stereo frame. Zero means the length could not be determined.
	var duration time.Duration
	if n := dec.Length(); n > 0 {
		frames := n / (2 * mp3Channels)
		duration = time.Duration(frames) * time.Second / time.Duration(rate)
	}

	return &Stream{
		pcm:        dec,
		sampleRate: rate,
		channels:   mp3Channels,
		duration:   duration,
	}, nil
}
