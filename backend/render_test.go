// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"testing"

	"github.com/larkspur-audio/mixcore/scene"
)

func TestRender_RunForProducesExactFrameCount(t *testing.T) {
	t.Parallel()

	s := scene.New(44100, 24, 256)
	s.Play()

	r := NewRender(s, 256)
	if err := r.Start(); err != nil {
		t.Fatalf("Start() unexpected err = %v", err)
	}
	defer r.Close()

	r.RunFor(1000)

	got := len(r.Samples())
	wantPeriods := (1000 + 255) / 256
	want := wantPeriods * 256 * 2
	if got != want {
		t.Errorf("len(Samples()) = %d, want %d (periods=%d)", got, want, wantPeriods)
	}
}

func TestRender_SilentBeforePlay(t *testing.T) {
	t.Parallel()

	s := scene.New(44100, 24, 64)
	r := NewRender(s, 64)
	r.RunFor(64)

	for i, v := range r.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0 while transport is stopped", i, v)
		}
	}
}
