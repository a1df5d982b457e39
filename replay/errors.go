// SPDX-License-Identifier: EPL-2.0

package replay

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrNotAiffFile       = errors.New("not an AIFF file")
	ErrNotVorbisFile     = errors.New("not an Ogg Vorbis file")
)
