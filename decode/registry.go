// SPDX-License-Identifier: EPL-2.0

// Package decode implements the file-decoder collaborator adapter
// (spec.md §7 "Collaborators: Audio File Decoder"): it turns a path on
// disk into an immutable, resampled, stereo *track.Clip the scene can
// splice onto a track without ever touching the scene lock while
// reading or decoding.
package decode

import (
	"path/filepath"
	"strings"

	"github.com/larkspur-audio/mixcore/audio"
	"github.com/larkspur-audio/mixcore/formats/aiff"
	"github.com/larkspur-audio/mixcore/formats/mp3"
	"github.com/larkspur-audio/mixcore/formats/vorbis"
	"github.com/larkspur-audio/mixcore/formats/wav"
)

// NewRegistry wires up every format this core ships with, keyed the way
// audio.Registry expects: one decoder per lowercase extension (without
// the dot). Adding a collaborator-provided format is one Register call.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

// extensionOf returns the lowercase extension of path without its
// leading dot, the key format decoders are registered under.
func extensionOf(path string) string {
	ext := filepath.Ext(path)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
