// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoUpmix broadcasts a mono source to two identical channels. It is
// the mirror image of MonoMixer: where MonoMixer averages N channels down
// to one, StereoUpmix duplicates one channel out to two.
type StereoUpmix struct {
	src Source
	tmp []float32
}

func NewStereoUpmix(src Source) *StereoUpmix {
	return &StereoUpmix{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (u *StereoUpmix) SampleRate() int { return u.src.SampleRate() }
func (u *StereoUpmix) Channels() int   { return 2 }
func (u *StereoUpmix) BufSize() int    { return u.src.BufSize() }
func (u *StereoUpmix) Close() error {
	if err := u.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (u *StereoUpmix) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if u.src.Channels() != 1 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / 2
	if cap(u.tmp) < frames {
		u.tmp = make([]float32, frames)
	}
	mono := u.tmp[:frames]

	n, err := u.src.ReadSamples(mono)
	for f := 0; f < n; f++ {
		dst[2*f] = mono[f]
		dst[2*f+1] = mono[f]
	}

	return n * 2, err
}
