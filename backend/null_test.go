// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"testing"
	"time"

	"github.com/larkspur-audio/mixcore/scene"
)

func TestNull_AdvancesPlayheadWhilePlaying(t *testing.T) {
	t.Parallel()

	s := scene.New(44100, 24, 256)
	s.Play()

	n := NewNull(s, 256)
	if err := n.Start(); err != nil {
		t.Fatalf("Start() unexpected err = %v", err)
	}
	defer n.Close()

	time.Sleep(50 * time.Millisecond)

	st := s.GetState()
	if st.PositionBeats == 0 {
		t.Error("PositionBeats = 0, want nonzero after the device has run for 50ms")
	}
}

func TestNull_StartIsIdempotent(t *testing.T) {
	t.Parallel()

	s := scene.New(44100, 24, 256)
	n := NewNull(s, 256)

	if err := n.Start(); err != nil {
		t.Fatal(err)
	}
	if err := n.Start(); err != nil {
		t.Fatal(err)
	}
	if err := n.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNull_StopThenClose(t *testing.T) {
	t.Parallel()

	s := scene.New(44100, 24, 256)
	n := NewNull(s, 256)

	if err := n.Start(); err != nil {
		t.Fatal(err)
	}
	if err := n.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := n.Close(); err != nil {
		t.Fatal(err)
	}
}
