// SPDX-License-Identifier: EPL-2.0

package mixcore

import (
	"errors"

	"github.com/larkspur-audio/mixcore/track"
)

// LoadClip implements spec.md §4.4 track_load_file: it decodes path
// outside any lock and splices the finished clip onto track id at
// startBeat, timestamped against the scene's BPM at the moment of the
// call (spec.md §9: "len_beats is computed at load time from the
// then-current BPM"). spec.md §4.4 step 6 fixes start_beat at 0;
// exposing it as a parameter here is a deliberate superset — callers
// that pass 0 get exactly the documented behavior.
func (e *Engine) LoadClip(id uint32, path string, startBeat float64) Code {
	if !e.isRunning() {
		return NotInit
	}

	info, err := e.scene.TrackInfo(id)
	if err != nil {
		return InvalidTrack
	}
	if info.NumClips >= track.MaxClipsPerTrack {
		return ClipFull
	}

	bpm := e.scene.BPM()
	clip, err := e.loader.Load(path, startBeat, bpm)
	if err != nil {
		return codeFromDecodeErr(err)
	}

	return codeFromErr(e.scene.SpliceClip(id, clip))
}

// codeFromDecodeErr is LoadClip's narrower mapping: a clip rejected by
// track.NewClip's own validation is InvalidParam; everything else the
// loader can fail with (bad extension, malformed header, codec error)
// is reported as FileNotFound, since spec.md §4.6 has no dedicated
// "bad format" code.
func codeFromDecodeErr(err error) Code {
	for _, sentinel := range []error{
		track.ErrEmptyClip, track.ErrChannelSkew, track.ErrBadLenBeats, track.ErrBadStartBeat,
	} {
		if errors.Is(err, sentinel) {
			return InvalidParam
		}
	}

	return FileNotFound
}
