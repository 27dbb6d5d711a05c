// SPDX-License-Identifier: EPL-2.0

package mixcore

import "testing"

func TestTransport_PlayStopPause(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, DefaultConfig())

	if code := eng.Play(); code != OK {
		t.Fatalf("Play() code = %v, want OK", code)
	}
	if code := eng.Pause(); code != OK {
		t.Fatalf("Pause() code = %v, want OK", code)
	}

	st, _ := eng.GetState()
	if st.TransportState.String() != "Paused" {
		t.Errorf("TransportState = %v, want Paused", st.TransportState)
	}

	if code := eng.Stop(); code != OK {
		t.Fatalf("Stop() code = %v, want OK", code)
	}
	st, _ = eng.GetState()
	if st.PositionBeats != 0 {
		t.Errorf("PositionBeats = %v, want 0 after Stop", st.PositionBeats)
	}
}

func TestSeek_RejectsNegative(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, DefaultConfig())
	if code := eng.Seek(-1); code != InvalidParam {
		t.Errorf("Seek(-1) code = %v, want InvalidParam", code)
	}
	if code := eng.Seek(8); code != OK {
		t.Fatalf("Seek(8) code = %v, want OK", code)
	}
	st, _ := eng.GetState()
	if st.PositionBeats != 8 {
		t.Errorf("PositionBeats = %v, want 8", st.PositionBeats)
	}
}

func TestSetBPM_Bounds(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, DefaultConfig())
	if code := eng.SetBPM(0); code != InvalidParam {
		t.Errorf("SetBPM(0) code = %v, want InvalidParam", code)
	}
	if code := eng.SetBPM(1000); code != InvalidParam {
		t.Errorf("SetBPM(1000) code = %v, want InvalidParam", code)
	}
	if code := eng.SetBPM(90); code != OK {
		t.Errorf("SetBPM(90) code = %v, want OK", code)
	}
}

func TestSetLoop_RequiresEndAfterStart(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, DefaultConfig())
	if code := eng.SetLoop(true, 4, 4); code != InvalidParam {
		t.Errorf("SetLoop(4,4) code = %v, want InvalidParam", code)
	}
	if code := eng.SetLoop(true, 0, 8); code != OK {
		t.Errorf("SetLoop(0,8) code = %v, want OK", code)
	}
}
