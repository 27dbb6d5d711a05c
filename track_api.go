// SPDX-License-Identifier: EPL-2.0

package mixcore

import (
	"github.com/larkspur-audio/mixcore/scene"
	"github.com/larkspur-audio/mixcore/track"
)

// TrackCreate allocates a track of the given kind (spec.md §4.4
// track_create). On success id is > 0, matching the "id uniqueness and
// monotonicity" invariant.
func (e *Engine) TrackCreate(kind track.Type) (uint32, Code) {
	if !e.isRunning() {
		return 0, NotInit
	}
	id, err := e.scene.TrackCreate(kind)
	if err != nil {
		return 0, OutOfMemory
	}
	return id, OK
}

// TrackDestroy releases a track and its clips.
func (e *Engine) TrackDestroy(id uint32) Code {
	if !e.isRunning() {
		return NotInit
	}
	return codeFromErr(e.scene.TrackDestroy(id))
}

// TrackInfo returns a snapshot of a track's fields, including its
// current peak meters (spec.md §4.4 track_info).
func (e *Engine) TrackInfo(id uint32) (scene.TrackSnapshot, Code) {
	if !e.isRunning() {
		return scene.TrackSnapshot{}, NotInit
	}
	info, err := e.scene.TrackInfo(id)
	if err != nil {
		return scene.TrackSnapshot{}, codeFromErr(err)
	}
	return info, OK
}

func (e *Engine) TrackSetName(id uint32, name string) Code {
	if !e.isRunning() {
		return NotInit
	}
	return codeFromErr(e.scene.TrackSetName(id, name))
}

func (e *Engine) TrackSetVolume(id uint32, v float32) Code {
	if !e.isRunning() {
		return NotInit
	}
	return codeFromErr(e.scene.TrackSetVolume(id, v))
}

func (e *Engine) TrackSetPan(id uint32, p float32) Code {
	if !e.isRunning() {
		return NotInit
	}
	return codeFromErr(e.scene.TrackSetPan(id, p))
}

func (e *Engine) TrackSetMute(id uint32, m bool) Code {
	if !e.isRunning() {
		return NotInit
	}
	return codeFromErr(e.scene.TrackSetMute(id, m))
}

func (e *Engine) TrackSetSolo(id uint32, v bool) Code {
	if !e.isRunning() {
		return NotInit
	}
	return codeFromErr(e.scene.TrackSetSolo(id, v))
}

func (e *Engine) TrackSetArmed(id uint32, v bool) Code {
	if !e.isRunning() {
		return NotInit
	}
	return codeFromErr(e.scene.TrackSetArmed(id, v))
}

func (e *Engine) isRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}
