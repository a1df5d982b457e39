// SPDX-License-Identifier: EPL-2.0

package replay

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/goscope/utils"
)

// Source streams PCM samples for replay into the scope.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1]
	// and returns the number of values written. n == 0 with io.EOF
	// means the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Sink receives mono sample buffers the way a capture callback
// delivers them. *goscope.Scope satisfies it.
type Sink interface {
	OnSamples(buf []float32, sampleRate uint32)
}

// Open picks a decoder by file extension and returns a Source backed
// by the file. Supported: .wav, .aiff, .aif, .mp3, .ogg, .oga.
func Open(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var src Source
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		src, err = NewWavSource(f)
	case ".aiff", ".aif":
		src, err = NewAiffSource(f)
	case ".mp3":
		src, err = NewMP3Source(f)
	case ".ogg", ".oga":
		src, err = NewVorbisSource(f)
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return &closerSource{Source: src, c: f}, nil
}

// closerSource closes the backing file together with the decoder.
type closerSource struct {
	Source
	c io.Closer
}

func (s *closerSource) Close() error {
	err := s.Source.Close()
	if cerr := s.c.Close(); err == nil {
		err = cerr
	}
	return err
}

// feedChunk is roughly 10ms of frames at 48kHz, the cadence of a
// typical capture callback.
const feedChunk = 512

// Pump pushes the entire source into sink as fast as it decodes,
// mixed down to mono. It returns the number of mono samples delivered.
func Pump(src Source, sink Sink) (int, error) {
	buf := make([]float32, feedChunk*src.Channels())
	mono := make([]float32, feedChunk)
	rate := uint32(src.SampleRate())

	total := 0
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			frames := utils.MixMono(mono, buf[:n], src.Channels())
			sink.OnSamples(mono[:frames], rate)
			total += frames
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Feed pushes the source into sink paced at its sample rate, so the
// scope sees the same cadence a live capture device would produce. It
// returns nil when the source ends, or the context's error when ctx is
// done first.
func Feed(ctx context.Context, src Source, sink Sink) error {
	buf := make([]float32, feedChunk*src.Channels())
	mono := make([]float32, feedChunk)
	rate := src.SampleRate()

	interval := time.Duration(feedChunk) * time.Second / time.Duration(rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		n, err := src.ReadSamples(buf)
		if n > 0 {
			frames := utils.MixMono(mono, buf[:n], src.Channels())
			sink.OnSamples(mono[:frames], uint32(rate))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
