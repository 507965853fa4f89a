// ABOUTME: FLAC file decoding
// ABOUTME: Converts mewkiz/flac frames into an interleaved 16-bit PCM stream
package audio

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mewkiz/flac"
)

func openFLAC(f *os.File) (*Stream, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("creating flac decoder: %w", err)
	}

	info := stream.Info
	rate := int(info.SampleRate)

	var duration time.Duration
	if info.NSamples > 0 {
		duration = time.Duration(info.NSamples) * time.Second / time.Duration(rate)
	}

	return &Stream{
		pcm: &flacReader{
			stream: stream,
			bps:    int(info.BitsPerSample),
		},
		sampleRate: rate,
		channels:   int(info.NChannels),
		duration:   duration,
	}, nil
}

// flacReader parses FLAC frames on demand and buffers the interleaved
// 16-bit samples between Read calls.
type flacReader struct {
	stream *flac.Stream
	bps    int
	buf    []byte
}

func (r *flacReader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		frame, err := r.stream.ParseNext()
		if err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("flac frame decode: %w", err)
		}

		channels := len(frame.Subframes)
		if channels == 0 {
			continue
		}

		samples := len(frame.Subframes[0].Samples)
		r.buf = make([]byte, 0, samples*channels*2)
		for i := 0; i < samples; i++ {
			for ch := 0; ch < channels; ch++ {
				s := sampleToInt16(frame.Subframes[ch].Samples[i], r.bps)
				r.buf = append(r.buf, byte(s), byte(s>>8))
			}
		}
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// sampleToInt16 rescales a sample of the given bit depth to 16 bits.
func sampleToInt16(sample int32, bps int) int16 {
	switch {
	case bps > 16:
		return int16(sample >> (bps - 16))
	case bps < 16:
		return int16(sample << (16 - bps))
	default:
		return int16(sample)
	}
}
