// SPDX-License-Identifier: EPL-2.0

// Package backend implements the audio device collaborator adapter
// (spec.md §7 "Collaborators: Audio Device Backend"): the thing that
// actually calls mixer.Mix on a period boundary and hands the result to
// real hardware, or nowhere at all.
package backend

// Device is a backend that drives a Scene through the mixer. Each
// implementation is constructed with a period in frames, matching the
// BufferFrames the Scene was constructed with, and mixes that many
// frames of stereo audio per callback.
type Device interface {
	// Start begins pulling periods from the scene via the mixer. Start
	// is idempotent: calling it while already started is a no-op.
	Start() error
	// Stop halts playback without releasing the underlying device.
	Stop() error
	// Close releases the device. A closed Device cannot be restarted.
	Close() error
}
