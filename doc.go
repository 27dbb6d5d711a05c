// SPDX-License-Identifier: EPL-2.0

// Package mixcore is a realtime, multi-track, clip-based audio mixer
// driven by a musical transport. An Engine owns one Scene — tracks,
// clips, and a transport — mutated by control calls while a device
// backend invokes the realtime mix pass on its own cadence.
//
// # Quick start
//
//	eng, code := mixcore.Init(mixcore.DefaultConfig())
//	if code != mixcore.OK {
//	    log.Fatal(mixcore.Strerror(code))
//	}
//	defer eng.Shutdown()
//
//	id, _ := eng.TrackCreate(track.Audio)
//	eng.LoadClip(id, "kick.wav", 0)
//	eng.Play()
//
// # Collaborators
//
// The realtime mix pass lives in package mixer; file decoding lives in
// package decode; device I/O lives in package backend. Engine wires all
// three together behind the Code-returning control surface this
// package exposes, the way a C ABI caller would see it (package cabi).
package mixcore
