// SPDX-License-Identifier: EPL-2.0

package replay

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavSource wraps a go-audio wav.Decoder as a Source.
type wavSource struct {
	dec       *wav.Decoder
	intBuf    *goaudio.IntBuffer
	fullScale float32
}

// NewWavSource decodes PCM WAV data from rs. All common bit depths
// are handled; samples are normalized to [-1, 1].
func NewWavSource(rs io.ReadSeeker) (Source, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	var fullScale float32
	switch dec.BitDepth {
	case 8:
		fullScale = 1 << 7
	case 16:
		fullScale = 1 << 15
	case 24:
		fullScale = 1 << 23
	case 32:
		fullScale = 1 << 31
	default:
		fullScale = 1 << 15
	}

	return &wavSource{dec: dec, fullScale: fullScale}, nil
}

func (s *wavSource) SampleRate() int { return int(s.dec.SampleRate) }
func (s *wavSource) Channels() int   { return int(s.dec.NumChans) }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("decoding wav: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(s.intBuf.Data[i]) / s.fullScale
	}

	// A short read means the data chunk ran out.
	if n < len(dst) {
		return n, io.EOF
	}
	return n, nil
}
