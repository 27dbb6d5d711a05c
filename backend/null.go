// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"sync"
	"time"

	"github.com/larkspur-audio/mixcore/mixer"
	"github.com/larkspur-audio/mixcore/scene"
)

// Null drives the mixer on a wall-clock ticker without touching any real
// device, grounded on audio_backend_headless.go's no-op OtoPlayer. It
// exists for tests, CI, and any environment with no audio hardware, but
// unlike the headless OtoPlayer it still calls Mix every period so the
// scene's playhead and meters advance exactly as they would under Oto.
type Null struct {
	scene  *scene.Scene
	mix    *mixer.Mixer
	period int

	buf    []float32
	stopCh chan struct{}

	mu      sync.Mutex
	started bool
}

// NewNull returns a Null device that calls Mix every period frames,
// paced by the scene's own sample rate.
func NewNull(s *scene.Scene, period int) *Null {
	return &Null{
		scene:  s,
		mix:    mixer.New(),
		period: period,
		buf:    make([]float32, period*2),
	}
}

func (n *Null) Start() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.started {
		return nil
	}
	n.started = true
	n.stopCh = make(chan struct{})

	interval := time.Duration(float64(n.period)/float64(n.scene.SampleRate)*1000) * time.Millisecond
	go n.run(interval, n.stopCh)
	return nil
}

func (n *Null) run(interval time.Duration, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			n.mix.Mix(n.scene, n.buf)
		}
	}
}

func (n *Null) Stop() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.started {
		close(n.stopCh)
		n.started = false
	}
	return nil
}

func (n *Null) Close() error {
	return n.Stop()
}
