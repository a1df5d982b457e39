// SPDX-License-Identifier: EPL-2.0

package replay

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// aiffSource wraps a go-audio aiff.Decoder as a Source.
type aiffSource struct {
	dec       *aiff.Decoder
	intBuf    *goaudio.IntBuffer
	fullScale float32
}

// NewAiffSource decodes PCM AIFF data from rs. Samples are normalized
// to [-1, 1] by bit depth.
func NewAiffSource(rs io.ReadSeeker) (Source, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

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

	return &aiffSource{dec: dec, fullScale: fullScale}, nil
}

func (s *aiffSource) SampleRate() int { return int(s.dec.SampleRate) }
func (s *aiffSource) Channels() int   { return int(s.dec.NumChans) }
func (s *aiffSource) Close() error    { return nil }

func (s *aiffSource) ReadSamples(dst []float32) (int, error) {
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
		return 0, fmt.Errorf("decoding aiff: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(s.intBuf.Data[i]) / s.fullScale
	}

	if n < len(dst) {
		return n, io.EOF
	}
	return n, nil
}
