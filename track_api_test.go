// SPDX-License-Identifier: EPL-2.0

package mixcore

import (
	"testing"

	"github.com/larkspur-audio/mixcore/track"
)

func TestTrackLifecycle_ViaEngine(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, DefaultConfig())

	id, code := eng.TrackCreate(track.Audio)
	if code != OK {
		t.Fatalf("TrackCreate() code = %v, want OK", code)
	}
	if id == 0 {
		t.Fatal("TrackCreate() id = 0, want > 0")
	}

	if code := eng.TrackSetVolume(id, 1.5); code != OK {
		t.Fatalf("TrackSetVolume() code = %v, want OK", code)
	}
	if code := eng.TrackSetName(id, "Bass"); code != OK {
		t.Fatalf("TrackSetName() code = %v, want OK", code)
	}

	info, code := eng.TrackInfo(id)
	if code != OK {
		t.Fatalf("TrackInfo() code = %v, want OK", code)
	}
	if info.Name != "Bass" || info.Volume != 1.5 {
		t.Errorf("snapshot = %+v, want Name=Bass Volume=1.5", info)
	}

	if code := eng.TrackDestroy(id); code != OK {
		t.Fatalf("TrackDestroy() code = %v, want OK", code)
	}
	if _, code := eng.TrackInfo(id); code != InvalidTrack {
		t.Errorf("TrackInfo() after destroy code = %v, want InvalidTrack", code)
	}
}

func TestTrackOps_UnknownIDReturnsInvalidTrack(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, DefaultConfig())
	const bogus = uint32(12345)

	if code := eng.TrackSetVolume(bogus, 1); code != InvalidTrack {
		t.Errorf("TrackSetVolume(bogus) code = %v, want InvalidTrack", code)
	}
	if code := eng.TrackSetSolo(bogus, true); code != InvalidTrack {
		t.Errorf("TrackSetSolo(bogus) code = %v, want InvalidTrack", code)
	}
	if code := eng.TrackDestroy(bogus); code != InvalidTrack {
		t.Errorf("TrackDestroy(bogus) code = %v, want InvalidTrack", code)
	}
}
