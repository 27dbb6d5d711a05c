// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"sync"

	"github.com/larkspur-audio/mixcore/mixer"
	"github.com/larkspur-audio/mixcore/scene"
)

// Render is a Device that never touches real hardware or a clock: it
// mixes on demand, via RunFor, and appends every period's frames to an
// in-memory buffer for a caller to write out afterward. It is Null's
// sibling for offline rendering (cmd/mixrender) rather than for letting
// tests advance a playhead in real time.
type Render struct {
	scene  *scene.Scene
	mix    *mixer.Mixer
	period int

	mu      sync.Mutex
	samples []float32
	buf     []float32
	started bool
}

// NewRender returns a Render device driving scene s, mixing period
// frames at a time.
func NewRender(s *scene.Scene, period int) *Render {
	return &Render{
		scene:  s,
		mix:    mixer.New(),
		period: period,
		buf:    make([]float32, period*2),
	}
}

func (r *Render) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = true
	return nil
}

func (r *Render) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = false
	return nil
}

func (r *Render) Close() error { return r.Stop() }

// RunFor mixes exactly enough periods to cover frames and appends every
// sample produced to the render buffer, regardless of frames being an
// exact multiple of the period size.
func (r *Render) RunFor(frames int) {
	for rendered := 0; rendered < frames; rendered += r.period {
		r.mix.Mix(r.scene, r.buf)

		r.mu.Lock()
		r.samples = append(r.samples, r.buf...)
		r.mu.Unlock()
	}
}

// Samples returns every interleaved stereo frame rendered so far.
func (r *Render) Samples() []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.samples
}
