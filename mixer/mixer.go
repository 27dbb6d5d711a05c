// SPDX-License-Identifier: EPL-2.0

// Package mixer implements the realtime mix callback: per-period
// scheduling, clip-to-sample resolution, summation, pan/gain, master,
// metering, and playhead advance (spec.md §4.5). This is the code that
// runs on the backend's audio thread; it does not block on I/O and holds
// the scene lock only for the mix itself. It is not allocation-free: the
// track and clip lists it walks each period come from Table.Tracks and
// Track.Clips, which build a new slice on every call.
package mixer

import (
	"math"

	"github.com/larkspur-audio/mixcore/scene"
	"github.com/larkspur-audio/mixcore/track"
	"github.com/larkspur-audio/mixcore/transport"
)

// Mixer holds the scratch accumulators the callback reuses every period,
// grounded on audio/mono_mixer.go's "grow but never shrink" buffer
// policy and audio_backend_oto.go's preallocated sampleBuf; they are
// reallocated only when a period is longer than any seen before.
type Mixer struct {
	mixL, mixR       []float32
	trackL, trackR   []float32
}

// New returns a Mixer with no preallocated capacity; the first few
// callbacks grow its scratch buffers to the steady-state period size.
func New() *Mixer {
	return &Mixer{}
}

func (m *Mixer) ensureCapacity(frames int) {
	if cap(m.mixL) < frames {
		m.mixL = make([]float32, frames)
		m.mixR = make([]float32, frames)
		m.trackL = make([]float32, frames)
		m.trackR = make([]float32, frames)
	}
	m.mixL = m.mixL[:frames]
	m.mixR = m.mixR[:frames]
	m.trackL = m.trackL[:frames]
	m.trackR = m.trackR[:frames]
}

func zero(buf []float32) {
	for i := range buf {
		buf[i] = 0
	}
}

// Mix fills out (interleaved stereo f32, len(out) == frames*2) with one
// period's worth of mixed audio and advances the scene's playhead. It
// implements the backend callback contract from spec.md §6: it always
// writes exactly len(out) samples and never fails.
func (m *Mixer) Mix(s *scene.Scene, out []float32) {
	frames := len(out) / 2
	m.ensureCapacity(frames)

	if !s.Ready() {
		zero(out)
		return
	}

	s.Lock()
	defer s.Unlock()

	tr := s.Transport
	if !tr.State.Mixing() {
		zero(out)
		return
	}

	secondsPerBeat := tr.SecondsPerBeat()
	secondsPerFrame := 1.0 / float64(s.SampleRate)
	beatsPerFrame := secondsPerFrame / secondsPerBeat
	positionBeats := tr.PositionBeats

	zero(m.mixL)
	zero(m.mixR)

	for _, tk := range s.Tracks.Tracks() {
		if tk.Kind != track.Audio || tk.Mute {
			continue
		}
		if s.Tracks.AnySolo() && !tk.Solo {
			continue
		}

		gL, gR := panGains(tk.Pan, tk.Volume)

		zero(m.trackL)
		zero(m.trackR)

		for _, c := range tk.Clips() {
			mixClip(c, m.trackL, m.trackR, positionBeats, beatsPerFrame, gL, gR, tr)
		}

		for f := 0; f < frames; f++ {
			m.mixL[f] += m.trackL[f]
			m.mixR[f] += m.trackR[f]
			tk.PeakL.Follow(m.trackL[f])
			tk.PeakR.Follow(m.trackR[f])
		}
	}

	masterVol := s.MasterVolume
	for f := 0; f < frames; f++ {
		l := clamp11(m.mixL[f] * masterVol)
		r := clamp11(m.mixR[f] * masterVol)
		out[2*f] = l
		out[2*f+1] = r
		s.MasterPeakL.Follow(l)
		s.MasterPeakR.Follow(r)
	}

	tr.Advance(frames, s.SampleRate)
}

// panGains computes the constant-power pan law from spec.md §4.5: at
// pan=0 both channels get vol*sqrt(2)/2; at pan=-1, gL=vol and gR=0; at
// pan=+1, gL=0 and gR=vol.
func panGains(pan, vol float32) (gL, gR float32) {
	a := float64(pan+1) * math.Pi / 4
	gL = float32(math.Cos(a)) * vol
	gR = float32(math.Sin(a)) * vol
	return gL, gR
}

// mixClip resolves one clip's contribution to dstL/dstR for the current
// period, applying loop wrap per frame (spec.md §4.5 step 2).
func mixClip(c *track.Clip, dstL, dstR []float32, positionBeats, beatsPerFrame float64, gL, gR float32, tr *transport.Transport) {
	if !c.Active {
		return
	}
	for f := range dstL {
		beatAt := positionBeats + float64(f)*beatsPerFrame

		if tr.LoopOn && beatAt >= tr.LoopEnd {
			loopLen := tr.LoopEnd - tr.LoopStart
			beatAt = tr.LoopStart + math.Mod(beatAt-tr.LoopStart, loopLen)
		}

		idx := c.FrameAt(beatAt)
		if idx < 0 {
			continue
		}

		dstL[f] += c.Left[idx] * gL
		dstR[f] += c.Right[idx] * gR
	}
}

func clamp11(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
