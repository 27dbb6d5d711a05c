// SPDX-License-Identifier: EPL-2.0

package track

import "errors"

var (
	ErrEmptyClip    = errors.New("clip: left/right length must be > 0")
	ErrChannelSkew  = errors.New("clip: left and right must be equal length")
	ErrBadLenBeats  = errors.New("clip: len_beats must be > 0")
	ErrBadStartBeat = errors.New("clip: start_beat must be >= 0")
)

// Clip is an immutable block of decoded stereo PCM placed at a beat
// position on a track. Once constructed, its PCM is never mutated — the
// mixer reads it concurrently with no further synchronization beyond the
// scene lock that guards *placement* (StartBeat, Active).
type Clip struct {
	Left  []float32
	Right []float32

	StartBeat float64
	LenBeats  float64

	Active bool
}

// NewClip validates and constructs a Clip. left and right must already be
// equal length; NewClip does not copy them, so callers must not mutate
// the slices afterward (clip PCM is immutable after creation per
// spec.md §3).
func NewClip(left, right []float32, startBeat, lenBeats float64) (*Clip, error) {
	if len(left) == 0 || len(right) == 0 {
		return nil, ErrEmptyClip
	}
	if len(left) != len(right) {
		return nil, ErrChannelSkew
	}
	if lenBeats <= 0 {
		return nil, ErrBadLenBeats
	}
	if startBeat < 0 {
		return nil, ErrBadStartBeat
	}

	return &Clip{
		Left:      left,
		Right:     right,
		StartBeat: startBeat,
		LenBeats:  lenBeats,
		Active:    true,
	}, nil
}

// NumFrames is the clip's PCM length in samples (per channel).
func (c *Clip) NumFrames() int {
	return len(c.Left)
}

// EndBeat is the beat position at which the clip stops sounding.
func (c *Clip) EndBeat() float64 {
	return c.StartBeat + c.LenBeats
}

// FrameAt resolves the PCM frame index for a given beat within the clip's
// placement, or -1 if beatAt falls outside [StartBeat, EndBeat()).
// Implements spec.md §4.5 step 2.c/2.d.
func (c *Clip) FrameAt(beatAt float64) int {
	if beatAt < c.StartBeat || beatAt >= c.EndBeat() {
		return -1
	}
	offset := (beatAt - c.StartBeat) / c.LenBeats
	idx := int(offset * float64(c.NumFrames()))
	if idx < 0 || idx >= c.NumFrames() {
		return -1
	}
	return idx
}
