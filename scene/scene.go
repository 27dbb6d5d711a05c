// SPDX-License-Identifier: EPL-2.0

// Package scene owns the process-wide mix state and the concurrency
// discipline that makes it safe to share between a control thread and
// the realtime mixer (spec.md §5). A single mutex guards every field the
// mixer reads; control operations take it only long enough to commit
// their mutation, the way audio_chip.go's SoundChip takes its mutex only
// for HandleRegisterWrite and GenerateSample.
package scene

import (
	"sync"
	"sync/atomic"

	"github.com/larkspur-audio/mixcore/track"
	"github.com/larkspur-audio/mixcore/transport"
)

// Scene is the engine's complete mutable state: tracks, transport, and
// master. Exactly one exists per live Engine (spec.md §3 "Only one Scene
// exists per process"), but it is an explicit value rather than a global
// so tests can stand up isolated instances (spec.md §9).
type Scene struct {
	mu sync.Mutex

	Tracks    *track.Table
	Transport *transport.Transport

	MasterVolume float32
	MasterPeakL  track.Meter
	MasterPeakR  track.Meter

	SampleRate   int
	BitDepth     int
	BufferFrames int

	ready atomic.Bool
}

// New constructs a Scene with spec.md §4.1/§6 defaults applied by the
// caller (Engine.Init); New itself just wires the aggregate together.
func New(sampleRate, bitDepth, bufferFrames int) *Scene {
	s := &Scene{
		Tracks:       track.NewTable(),
		Transport:    transport.New(),
		MasterVolume: 1.0,
		SampleRate:   sampleRate,
		BitDepth:     bitDepth,
		BufferFrames: bufferFrames,
	}
	s.ready.Store(true)
	return s
}

// Lock/Unlock expose the scene-wide mutex directly to package mixer,
// which must hold it for the duration of one callback (spec.md §4.5) and
// therefore cannot go through a per-field helper without paying a
// second lock acquisition per frame.
func (s *Scene) Lock()   { s.mu.Lock() }
func (s *Scene) Unlock() { s.mu.Unlock() }

// Ready reports whether the scene is live. Mixer's pre-mix gate checks
// this before touching the lock at all, so a torn read during shutdown
// just produces one extra silent buffer rather than a race.
func (s *Scene) Ready() bool    { return s.ready.Load() }
func (s *Scene) SetReady(v bool) { s.ready.Store(v) }

// MasterPeaks reads the last-written master meter values without the
// lock (spec.md §4.3/§5: "tearing is acceptable for meters").
func (s *Scene) MasterPeaks() (l, r float32) {
	return s.MasterPeakL.Load(), s.MasterPeakR.Load()
}

// BPM reads the transport's current tempo under the lock. Callers that
// need a BPM to timestamp a clip against (package decode, via the
// control API) must go through this rather than reading s.Transport
// directly, since that field is shared with the mixer.
func (s *Scene) BPM() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Transport.BPM
}

// --- Transport control ---

func (s *Scene) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Transport.Play()
}

func (s *Scene) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Transport.Stop()
}

func (s *Scene) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Transport.Pause()
}

func (s *Scene) Record() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Transport.Record()
}

func (s *Scene) Seek(beat float64) error {
	if beat < 0 {
		return ErrInvalidParam
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Transport.Seek(beat)
	return nil
}

func (s *Scene) SetBPM(bpm float64) error {
	if bpm < transport.MinBPM || bpm > transport.MaxBPM {
		return ErrInvalidParam
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Transport.SetBPM(bpm)
	return nil
}

func (s *Scene) SetLoop(enabled bool, start, end float64) error {
	if end <= start {
		return ErrInvalidParam
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Transport.SetLoop(enabled, start, end)
	return nil
}

// --- Master control ---

func (s *Scene) SetMasterVolume(v float32) error {
	if v < 0 || v > 2 {
		return ErrInvalidParam
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MasterVolume = v
	return nil
}

// --- Track control ---

// TrackCreate allocates a track and returns its id.
func (s *Scene) TrackCreate(kind track.Type) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.Tracks.Create(kind)
	if err != nil {
		return 0, err
	}
	return t.ID, nil
}

func (s *Scene) TrackDestroy(id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Tracks.Destroy(id); err != nil {
		return ErrInvalidTrack
	}
	return nil
}

func (s *Scene) TrackSetName(id uint32, name string) error {
	return s.withTrack(id, func(t *track.Track) { t.SetName(name) })
}

func (s *Scene) TrackSetVolume(id uint32, v float32) error {
	return s.withTrack(id, func(t *track.Track) { t.SetVolume(v) })
}

func (s *Scene) TrackSetPan(id uint32, p float32) error {
	return s.withTrack(id, func(t *track.Track) { t.SetPan(p) })
}

func (s *Scene) TrackSetMute(id uint32, m bool) error {
	return s.withTrack(id, func(t *track.Track) { t.SetMute(m) })
}

func (s *Scene) TrackSetSolo(id uint32, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.Tracks.Find(id)
	if t == nil {
		return ErrInvalidTrack
	}
	t.SetSolo(v)
	s.Tracks.RefreshAnySolo()
	return nil
}

func (s *Scene) TrackSetArmed(id uint32, v bool) error {
	return s.withTrack(id, func(t *track.Track) { t.SetArmed(v) })
}

func (s *Scene) withTrack(id uint32, mutate func(*track.Track)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.Tracks.Find(id)
	if t == nil {
		return ErrInvalidTrack
	}
	mutate(t)
	return nil
}

// SpliceClip adds an already-decoded clip to a track. The decode work
// happens entirely outside the lock (package decode); SpliceClip only
// takes the lock long enough to append the finished *track.Clip, per the
// refinement spec.md §9 recommends over decoding under the lock.
func (s *Scene) SpliceClip(id uint32, c *track.Clip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.Tracks.Find(id)
	if t == nil {
		return ErrInvalidTrack
	}
	return t.AddClip(c)
}

// TrackInfo returns a snapshot of the track's fields, including its
// current peak meters (spec.md §4.4).
func (s *Scene) TrackInfo(id uint32) (TrackSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.Tracks.Find(id)
	if t == nil {
		return TrackSnapshot{}, ErrInvalidTrack
	}
	return snapshotTrack(t), nil
}

func snapshotTrack(t *track.Track) TrackSnapshot {
	return TrackSnapshot{
		ID:       t.ID,
		Kind:     t.Kind,
		Name:     t.Name,
		Volume:   t.Volume,
		Pan:      t.Pan,
		Mute:     t.Mute,
		Solo:     t.Solo,
		Armed:    t.Armed,
		PeakL:    t.PeakL.Load(),
		PeakR:    t.PeakR.Load(),
		NumClips: t.NumClips(),
	}
}

// GetState returns a point-in-time snapshot of the whole scene, under the
// lock, including the derived bar/beat musical coordinates (spec.md
// §4.1).
func (s *Scene) GetState() StateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	tr := s.Transport
	return StateSnapshot{
		SampleRate:      s.SampleRate,
		BitDepth:        s.BitDepth,
		BufferFrames:    s.BufferFrames,
		TransportState:  tr.State,
		BPM:             tr.BPM,
		PositionBeats:   tr.PositionBeats,
		PositionSeconds: tr.PositionSeconds,
		Bar:             tr.Bar(),
		Beat:            tr.Beat(),
		LoopOn:          tr.LoopOn,
		LoopStart:       tr.LoopStart,
		LoopEnd:         tr.LoopEnd,
		MasterVolume:    s.MasterVolume,
		MasterPeakL:     s.MasterPeakL.Load(),
		MasterPeakR:     s.MasterPeakR.Load(),
		NumTracks:       s.Tracks.Count(),
	}
}
