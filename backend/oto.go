//go:build !headless

// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/oto/v3"

	"github.com/larkspur-audio/mixcore/mixer"
	"github.com/larkspur-audio/mixcore/scene"
)

// Oto drives real hardware playback through ebitengine/oto/v3, grounded
// on audio_backend_oto.go's OtoPlayer: one long-lived oto.Player whose
// Read callback pulls exactly one period from the mixer per call.
type Oto struct {
	scene *scene.Scene
	mix   *mixer.Mixer

	ctx    *oto.Context
	player *oto.Player

	sampleBuf []float32 // preallocated for one period; Read grows it only if oto asks for more

	mu      sync.Mutex
	started bool
}

// NewOto opens a stereo float32LE output context at the scene's sample
// rate and wires it to pull from s via a fresh Mixer. period is the
// callback size in frames, matching s.BufferFrames.
func NewOto(s *scene.Scene, period int) (*Oto, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   s.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready

	o := &Oto{
		scene:     s,
		mix:       mixer.New(),
		ctx:       ctx,
		sampleBuf: make([]float32, period*2),
	}
	o.player = ctx.NewPlayer(o)
	return o, nil
}

// Read implements io.Reader for oto.Player: p is a byte buffer sized to
// one oto-chosen period; Read fills it with one Mix call's worth of
// interleaved float32LE stereo samples.
func (o *Oto) Read(p []byte) (int, error) {
	numSamples := len(p) / 4
	if len(o.sampleBuf) < numSamples {
		o.sampleBuf = make([]float32, numSamples)
	}
	buf := o.sampleBuf[:numSamples]

	o.mix.Mix(o.scene, buf)

	copy(p, unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(p)))
	return len(p), nil
}

func (o *Oto) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.started {
		o.player.Play()
		o.started = true
	}
	return nil
}

func (o *Oto) Stop() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.started {
		if err := o.player.Pause(); err != nil {
			return err
		}
		o.started = false
	}
	return nil
}

func (o *Oto) Close() error {
	o.Stop()
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.player.Close()
}
