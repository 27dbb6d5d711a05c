// SPDX-License-Identifier: EPL-2.0

package mixcore

import (
	"errors"

	"github.com/larkspur-audio/mixcore/decode"
	"github.com/larkspur-audio/mixcore/scene"
	"github.com/larkspur-audio/mixcore/track"
)

// Code is the result of every control operation, mirroring the C ABI's
// signed integer return convention (spec.md §4.6) so package cabi can
// hand these values straight across the boundary with no translation.
type Code int32

const (
	OK           Code = 0
	NotInit      Code = -1
	AlreadyInit  Code = -2
	AudioDevice  Code = -3
	InvalidTrack Code = -4
	FileNotFound Code = -5
	OutOfMemory  Code = -6
	InvalidParam Code = -7
	ClipFull     Code = -8
)

// String renders the code's symbolic name, matching the enumeration
// order in spec.md §4.6.
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case NotInit:
		return "NotInit"
	case AlreadyInit:
		return "AlreadyInit"
	case AudioDevice:
		return "AudioDevice"
	case InvalidTrack:
		return "InvalidTrack"
	case FileNotFound:
		return "FileNotFound"
	case OutOfMemory:
		return "OutOfMemory"
	case InvalidParam:
		return "InvalidParam"
	case ClipFull:
		return "ClipFull"
	default:
		return "Unknown"
	}
}

// Strerror maps a code to a stable human-readable message (spec.md
// §4.1/§7 strerror).
func Strerror(c Code) string {
	switch c {
	case OK:
		return "ok"
	case NotInit:
		return "engine is not initialized"
	case AlreadyInit:
		return "engine is already initialized"
	case AudioDevice:
		return "audio device failed to open"
	case InvalidTrack:
		return "track id not found"
	case FileNotFound:
		return "audio file not found"
	case OutOfMemory:
		return "out of memory"
	case InvalidParam:
		return "invalid parameter"
	case ClipFull:
		return "track's clip table is full"
	default:
		return "unknown error"
	}
}

// codeFromErr translates a collaborator error into its control-surface
// code. nil maps to OK; anything unrecognized maps to InvalidParam,
// since every bounds-checked setter in this core only ever fails with a
// sentinel from scene/track/decode.
func codeFromErr(err error) Code {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, scene.ErrInvalidTrack):
		return InvalidTrack
	case errors.Is(err, scene.ErrInvalidParam):
		return InvalidParam
	case errors.Is(err, track.ErrClipFull):
		return ClipFull
	case errors.Is(err, decode.ErrFileNotFound):
		return FileNotFound
	case errors.Is(err, decode.ErrUnsupportedFormat):
		return FileNotFound
	default:
		return InvalidParam
	}
}
