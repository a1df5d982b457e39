// SPDX-License-Identifier: EPL-2.0

package replay

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// vorbisSource wraps an oggvorbis reader as a Source. The decoder
// already produces interleaved float32, so no conversion is needed.
type vorbisSource struct {
	dec *oggvorbis.Reader
}

// NewVorbisSource decodes Ogg Vorbis data from r.
func NewVorbisSource(r io.Reader) (Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotVorbisFile, err)
	}
	return &vorbisSource{dec: dec}, nil
}

func (s *vorbisSource) SampleRate() int { return s.dec.SampleRate() }
func (s *vorbisSource) Channels() int   { return s.dec.Channels() }
func (s *vorbisSource) Close() error    { return nil }

func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	n, err := s.dec.Read(dst)
	if n == 0 && err == nil {
		return 0, io.EOF
	}
	return n, err
}
