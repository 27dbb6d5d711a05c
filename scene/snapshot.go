// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"github.com/larkspur-audio/mixcore/track"
	"github.com/larkspur-audio/mixcore/transport"
)

// TrackSnapshot is a by-value copy of a track's fields at one instant,
// safe to hand to a caller after the scene lock is released.
type TrackSnapshot struct {
	ID     uint32
	Kind   track.Type
	Name   string
	Volume float32
	Pan    float32
	Mute   bool
	Solo   bool
	Armed  bool

	PeakL float32
	PeakR float32

	NumClips int
}

// StateSnapshot is a by-value copy of the whole scene, returned by
// get_state (spec.md §4.1).
type StateSnapshot struct {
	SampleRate   int
	BitDepth     int
	BufferFrames int

	TransportState  transport.State
	BPM             float64
	PositionBeats   float64
	PositionSeconds float64
	Bar             int
	Beat            int

	LoopOn    bool
	LoopStart float64
	LoopEnd   float64

	MasterVolume float32
	MasterPeakL  float32
	MasterPeakR  float32

	NumTracks int
}
