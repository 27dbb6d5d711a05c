// SPDX-License-Identifier: EPL-2.0

// Package transport owns the musical playhead: state, tempo, position and
// loop region. It holds no audio; mixer reads a Transport's fields while
// holding the caller's lock (see scene.Scene) and advances the playhead
// after each callback.
package transport

import "math"

const (
	DefaultBPM             = 120.0
	MinBPM                 = 1.0
	MaxBPM                 = 999.0
	BeatsPerBar            = 4 // 4/4 assumed throughout
)

// State is the transport's play state. The numbering matches
// daw_transport_state_t exactly (Stopped=0, Playing=1, Recording=2,
// Paused=3) — a C caller mirroring that layout over mixcore_state_t's
// transport_state field must read the same integer this core writes.
type State int

const (
	Stopped State = iota
	Playing
	Recording
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Recording:
		return "Recording"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Transport is the engine's musical clock. Every field is read and written
// under the owning scene.Scene's lock; Transport itself does no locking.
type Transport struct {
	State State

	BPM float64

	PositionBeats   float64
	PositionSeconds float64

	LoopOn    bool
	LoopStart float64
	LoopEnd   float64
}

// New returns a Transport with spec.md §4.1 defaults: stopped, 120 BPM, at
// the top of the timeline, with looping off.
func New() *Transport {
	return &Transport{
		State: Stopped,
		BPM:   DefaultBPM,
	}
}

// SecondsPerBeat is 60/BPM, the conversion factor the mixer uses every
// callback to turn elapsed frames into elapsed beats.
func (t *Transport) SecondsPerBeat() float64 {
	return 60.0 / t.BPM
}

// Play transitions to Playing regardless of the prior state.
func (t *Transport) Play() {
	t.State = Playing
}

// Stop resets the playhead to the top of the timeline and transitions to
// Stopped.
func (t *Transport) Stop() {
	t.State = Stopped
	t.PositionBeats = 0
	t.PositionSeconds = 0
}

// Pause transitions Playing to Paused; any other state is a no-op.
func (t *Transport) Pause() {
	if t.State == Playing {
		t.State = Paused
	}
}

// Record transitions to Recording. Capture-to-disk is out of scope for
// this core (spec.md Non-goals); Recording behaves identically to Playing
// in the mixer.
func (t *Transport) Record() {
	t.State = Recording
}

// Seek moves the playhead to the given beat, keeping PositionSeconds in
// sync. Callers must validate beat >= 0 (see spec.md §4.2); Seek itself
// does not clamp.
func (t *Transport) Seek(beat float64) {
	t.PositionBeats = beat
	t.PositionSeconds = beat * t.SecondsPerBeat()
}

// SetBPM sets the tempo. Callers must validate bpm is within
// [MinBPM, MaxBPM] before calling; Seek/SetBPM do not reclamp an
// already-placed playhead, matching spec.md's note that BPM changes do
// not re-stretch clips already loaded at the prior tempo.
func (t *Transport) SetBPM(bpm float64) {
	t.BPM = bpm
}

// SetLoop configures the loop region. Callers must validate end > start
// before calling.
func (t *Transport) SetLoop(enabled bool, start, end float64) {
	t.LoopOn = enabled
	t.LoopStart = start
	t.LoopEnd = end
}

// Advance moves the playhead forward by the given number of frames at the
// given sample rate, snapping back to the loop start if it crosses
// LoopEnd while looping. This is the playhead half of the mixer's
// per-callback work (spec.md §4.5 "Advance playhead").
func (t *Transport) Advance(frames int, sampleRate int) {
	secondsPerFrame := 1.0 / float64(sampleRate)
	elapsedSeconds := float64(frames) * secondsPerFrame

	t.PositionSeconds += elapsedSeconds
	t.PositionBeats += elapsedSeconds / t.SecondsPerBeat()

	if t.LoopOn && t.PositionBeats >= t.LoopEnd {
		t.PositionBeats = t.LoopStart
		t.PositionSeconds = t.LoopStart * t.SecondsPerBeat()
	}
}

// Bar and Beat return 1-based musical coordinates for the current
// position, assuming 4/4 (spec.md §4.1).
func (t *Transport) Bar() int {
	return int(t.PositionBeats/BeatsPerBar) + 1
}

func (t *Transport) Beat() int {
	beatInBar := math.Mod(t.PositionBeats, BeatsPerBar)
	return int(beatInBar) + 1
}

// Mixing reports whether the mixer should produce non-silent output for
// this state (spec.md §4.5 pre-mix gate).
func (s State) Mixing() bool {
	return s == Playing || s == Recording
}
