// ABOUTME: Oto-based playback sink
// ABOUTME: Owns the output device, pause state, volume, and elapsed position
package sink

import (
	"io"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/driftwave/driftwave-go/internal/audio"
	"github.com/ebitengine/oto/v3"
)

// Sink plays decoded PCM streams on the system audio device. Pause
// state and volume are atomics so the UI can snapshot them without
// blocking against playback control.
type Sink struct {
	mu         sync.Mutex
	otoCtx     *oto.Context
	player     *oto.Player
	counter    *countingReader
	stop       chan struct{}
	sampleRate int
	channels   int
	bytesPS    int

	paused atomic.Bool
	volume atomic.Uint64 // float64 bits
}

// New creates a sink with the given starting volume fraction.
func New(volume float64) *Sink {
	s := &Sink{}
	s.volume.Store(math.Float64bits(clampVolume(volume)))
	return s
}

// Start begins playback of stream and returns a channel that receives
// the terminal result of this track: nil when it plays to completion,
// or the read error that aborted it. Any prior track is stopped.
func (s *Sink) Start(stream *audio.Stream) (<-chan error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	if err := s.ensureContextLocked(stream.SampleRate(), stream.Channels()); err != nil {
		return nil, err
	}

	counter := &countingReader{r: stream}
	player := s.otoCtx.NewPlayer(counter)
	player.SetVolume(s.Volume())

	s.counter = counter
	s.player = player
	s.stop = make(chan struct{})
	s.paused.Store(false)

	player.Play()

	done := make(chan error, 1)
	go s.watch(player, counter, s.stop, done)
	return done, nil
}

// watch polls until the track drains or its reader fails.
func (s *Sink) watch(player *oto.Player, counter *countingReader, stop chan struct{}, done chan<- error) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := counter.Err(); err != nil && err != io.EOF {
				done <- err
				return
			}
			if !player.IsPlaying() && !s.paused.Load() {
				done <- nil
				return
			}
		}
	}
}

// Stop halts the current track, if any.
func (s *Sink) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Sink) stopLocked() {
	if s.player == nil {
		return
	}
	close(s.stop)
	s.stop = nil
	s.player.Close()
	s.player = nil
	s.counter = nil
}

// TogglePause flips between paused and playing.
func (s *Sink) TogglePause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player == nil {
		return
	}

	if s.paused.Load() {
		s.player.Play()
		s.paused.Store(false)
	} else {
		s.player.Pause()
		s.paused.Store(true)
	}
}

// AdjustVolume shifts the volume fraction by delta, clamped to [0, 1].
func (s *Sink) AdjustVolume(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := clampVolume(s.Volume() + delta)
	s.volume.Store(math.Float64bits(v))
	if s.player != nil {
		s.player.SetVolume(v)
	}
}

// IsPaused reports whether playback is paused.
func (s *Sink) IsPaused() bool { return s.paused.Load() }

// Volume returns the current volume fraction in [0, 1].
func (s *Sink) Volume() float64 { return math.Float64frombits(s.volume.Load()) }

// Position returns the elapsed playback time of the current track,
// derived from bytes fed to the device minus what it still buffers.
func (s *Sink) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player == nil || s.bytesPS == 0 {
		return 0
	}

	consumed := s.counter.Count() - int64(s.player.BufferedSize())
	if consumed < 0 {
		consumed = 0
	}
	return time.Duration(consumed) * time.Second / time.Duration(s.bytesPS)
}

// Close stops playback and suspends the device context.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	if s.otoCtx != nil {
		return s.otoCtx.Suspend()
	}
	return nil
}

// ensureContextLocked initializes the oto context on first use. oto
// allows one context per process, so a later format change keeps the
// existing device settings.
func (s *Sink) ensureContextLocked(sampleRate, channels int) error {
	if s.otoCtx != nil {
		if sampleRate != s.sampleRate || channels != s.channels {
			log.Printf("Warning: format change (%dHz %dch -> %dHz %dch) but the audio device cannot be reinitialized. Continuing with existing settings.",
				s.sampleRate, s.channels, sampleRate, channels)
		}
		return nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return err
	}
	<-ready

	s.otoCtx = ctx
	s.sampleRate = sampleRate
	s.channels = channels
	s.bytesPS = sampleRate * channels * 2

	log.Printf("Audio output initialized: %dHz, %d channels", sampleRate, channels)
	return nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// countingReader tracks bytes handed to the device and the first read
// error, both observable from other goroutines.
type countingReader struct {
	r io.Reader
	n atomic.Int64

	mu  sync.Mutex
	err error
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	if err != nil {
		c.mu.Lock()
		if c.err == nil {
			c.err = err
		}
		c.mu.Unlock()
	}
	return n, err
}

func (c *countingReader) Count() int64 { return c.n.Load() }

func (c *countingReader) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
