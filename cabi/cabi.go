// SPDX-License-Identifier: EPL-2.0

// Package cabi is the C-callable control surface spec.md §6 requires:
// every operation in package mixcore, exported under a `mixcore_`
// prefix, operating on plain-old-data structs with fixed, documented
// layouts so a foreign caller can mirror them exactly. The only Go code
// in this module that imports it is cmd/libmixcore, the `package main`
// built with `-buildmode=c-shared` or `c-archive` that links it in, the way pkg/luau/luau.go's cgo layer sits
// underneath cmd/giztoy.
package cabi

/*
#include <stdint.h>

typedef struct {
	int32_t sample_rate;
	int32_t bit_depth;
	int32_t buffer_frames;
	int32_t transport_state;
	double  bpm;
	double  position_beats;
	double  position_seconds;
	int32_t bar;
	int32_t beat;
	int32_t loop_on;
	double  loop_start;
	double  loop_end;
	float   master_volume;
	float   master_peak_l;
	float   master_peak_r;
	int32_t num_tracks;
} mixcore_state_t;

typedef struct {
	uint32_t id;
	int32_t  kind;
	char     name[64];
	float    volume;
	float    pan;
	int32_t  mute;
	int32_t  solo;
	int32_t  armed;
	float    peak_l;
	float    peak_r;
	int32_t  num_clips;
} mixcore_track_info_t;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/larkspur-audio/mixcore"
	"github.com/larkspur-audio/mixcore/track"
)

// singleton is the one process-wide Engine the exported functions drive
// (spec.md §3 "only one Scene exists per process", §9's handle
// recommendation applied at the package-level: Go code keeps the
// *mixcore.Engine behind this boundary, C callers only ever see the
// function surface below).
var (
	singletonMu sync.Mutex
	singleton   *mixcore.Engine
)

//export mixcore_init
func mixcore_init(sampleRate, bitDepth, bufferFrames C.int32_t) C.int32_t {
	singletonMu.Lock()
	defer singletonMu.Unlock()

	if singleton != nil {
		return C.int32_t(mixcore.AlreadyInit)
	}

	cfg := mixcore.Config{
		SampleRate:   int(sampleRate),
		BitDepth:     int(bitDepth),
		BufferFrames: int(bufferFrames),
	}
	eng, code := mixcore.Init(cfg)
	if code != mixcore.OK {
		return C.int32_t(code)
	}
	singleton = eng
	return C.int32_t(mixcore.OK)
}

//export mixcore_shutdown
func mixcore_shutdown() C.int32_t {
	singletonMu.Lock()
	defer singletonMu.Unlock()

	if singleton == nil {
		return C.int32_t(mixcore.NotInit)
	}
	code := singleton.Shutdown()
	singleton = nil
	return C.int32_t(code)
}

// engine returns the live singleton, or nil if init/shutdown bracket it
// incorrectly. Every exported function below checks this first.
func engine() *mixcore.Engine {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	return singleton
}

//export mixcore_version
func mixcore_version(buf *C.char, bufLen C.int32_t) C.int32_t {
	return writeCString(mixcore.Version(), buf, bufLen)
}

//export mixcore_strerror
func mixcore_strerror(code C.int32_t, buf *C.char, bufLen C.int32_t) C.int32_t {
	return writeCString(mixcore.Strerror(mixcore.Code(code)), buf, bufLen)
}

//export mixcore_get_state
func mixcore_get_state(out *C.mixcore_state_t) C.int32_t {
	eng := engine()
	if eng == nil {
		return C.int32_t(mixcore.NotInit)
	}
	st, code := eng.GetState()
	if code != mixcore.OK {
		return C.int32_t(code)
	}

	out.sample_rate = C.int32_t(st.SampleRate)
	out.bit_depth = C.int32_t(st.BitDepth)
	out.buffer_frames = C.int32_t(st.BufferFrames)
	out.transport_state = C.int32_t(st.TransportState)
	out.bpm = C.double(st.BPM)
	out.position_beats = C.double(st.PositionBeats)
	out.position_seconds = C.double(st.PositionSeconds)
	out.bar = C.int32_t(st.Bar)
	out.beat = C.int32_t(st.Beat)
	out.loop_on = boolToC(st.LoopOn)
	out.loop_start = C.double(st.LoopStart)
	out.loop_end = C.double(st.LoopEnd)
	out.master_volume = C.float(st.MasterVolume)
	out.master_peak_l = C.float(st.MasterPeakL)
	out.master_peak_r = C.float(st.MasterPeakR)
	out.num_tracks = C.int32_t(st.NumTracks)
	return C.int32_t(mixcore.OK)
}

//export mixcore_play
func mixcore_play() C.int32_t { return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.Play() }) }

//export mixcore_stop
func mixcore_stop() C.int32_t { return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.Stop() }) }

//export mixcore_pause
func mixcore_pause() C.int32_t { return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.Pause() }) }

//export mixcore_record
func mixcore_record() C.int32_t { return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.Record() }) }

//export mixcore_seek
func mixcore_seek(beat C.double) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.Seek(float64(beat)) })
}

//export mixcore_set_bpm
func mixcore_set_bpm(bpm C.double) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.SetBPM(float64(bpm)) })
}

//export mixcore_set_loop
func mixcore_set_loop(enabled C.int32_t, start, end C.double) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code {
		return e.SetLoop(enabled != 0, float64(start), float64(end))
	})
}

//export mixcore_set_master_volume
func mixcore_set_master_volume(v C.float) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.SetMasterVolume(float32(v)) })
}

//export mixcore_get_master_peaks
func mixcore_get_master_peaks(l, r *C.float) C.int32_t {
	eng := engine()
	if eng == nil {
		return C.int32_t(mixcore.NotInit)
	}
	left, right, code := eng.GetMasterPeaks()
	if code == mixcore.OK {
		*l = C.float(left)
		*r = C.float(right)
	}
	return C.int32_t(code)
}

//export mixcore_track_create
func mixcore_track_create(kind C.int32_t, outID *C.uint32_t) C.int32_t {
	eng := engine()
	if eng == nil {
		return C.int32_t(mixcore.NotInit)
	}
	id, code := eng.TrackCreate(track.Type(kind))
	if code == mixcore.OK {
		*outID = C.uint32_t(id)
	}
	return C.int32_t(code)
}

//export mixcore_track_destroy
func mixcore_track_destroy(id C.uint32_t) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.TrackDestroy(uint32(id)) })
}

//export mixcore_track_info
func mixcore_track_info(id C.uint32_t, out *C.mixcore_track_info_t) C.int32_t {
	eng := engine()
	if eng == nil {
		return C.int32_t(mixcore.NotInit)
	}
	info, code := eng.TrackInfo(uint32(id))
	if code != mixcore.OK {
		return C.int32_t(code)
	}

	out.id = C.uint32_t(info.ID)
	out.kind = C.int32_t(info.Kind)
	writeFixedName(info.Name, &out.name)
	out.volume = C.float(info.Volume)
	out.pan = C.float(info.Pan)
	out.mute = boolToC(info.Mute)
	out.solo = boolToC(info.Solo)
	out.armed = boolToC(info.Armed)
	out.peak_l = C.float(info.PeakL)
	out.peak_r = C.float(info.PeakR)
	out.num_clips = C.int32_t(info.NumClips)
	return C.int32_t(mixcore.OK)
}

//export mixcore_track_set_name
func mixcore_track_set_name(id C.uint32_t, name *C.char) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code {
		return e.TrackSetName(uint32(id), C.GoString(name))
	})
}

//export mixcore_track_set_volume
func mixcore_track_set_volume(id C.uint32_t, v C.float) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.TrackSetVolume(uint32(id), float32(v)) })
}

//export mixcore_track_set_pan
func mixcore_track_set_pan(id C.uint32_t, p C.float) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.TrackSetPan(uint32(id), float32(p)) })
}

//export mixcore_track_set_mute
func mixcore_track_set_mute(id C.uint32_t, mute C.int32_t) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.TrackSetMute(uint32(id), mute != 0) })
}

//export mixcore_track_set_solo
func mixcore_track_set_solo(id C.uint32_t, solo C.int32_t) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.TrackSetSolo(uint32(id), solo != 0) })
}

//export mixcore_track_set_armed
func mixcore_track_set_armed(id C.uint32_t, armed C.int32_t) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code { return e.TrackSetArmed(uint32(id), armed != 0) })
}

// mixcore_load_clip exposes start_beat as a placement parameter, a
// deliberate superset of spec.md §4.4 step 6's fixed start_beat=0;
// passing 0 reproduces the documented behavior exactly.
//
//export mixcore_load_clip
func mixcore_load_clip(id C.uint32_t, path *C.char, startBeat C.double) C.int32_t {
	return withEngine(func(e *mixcore.Engine) mixcore.Code {
		return e.LoadClip(uint32(id), C.GoString(path), float64(startBeat))
	})
}

// newState returns a zero-valued mixcore_state_t, letting callers outside
// this package (e.g. _test.go files, where cgo's "C" import is disallowed)
// obtain a value to pass into mixcore_get_state.
func newState() C.mixcore_state_t {
	return C.mixcore_state_t{}
}

func withEngine(fn func(*mixcore.Engine) mixcore.Code) C.int32_t {
	eng := engine()
	if eng == nil {
		return C.int32_t(mixcore.NotInit)
	}
	return C.int32_t(fn(eng))
}

func boolToC(b bool) C.int32_t {
	if b {
		return 1
	}
	return 0
}

// writeCString copies s into buf, null-terminated, truncating to
// bufLen-1 bytes if necessary (spec.md §6: "strings are null-terminated
// UTF-8 bounded at 64 bytes for names"). Returns InvalidParam if buf is
// too small to hold even the terminator.
func writeCString(s string, buf *C.char, bufLen C.int32_t) C.int32_t {
	if bufLen < 1 {
		return C.int32_t(mixcore.InvalidParam)
	}
	n := int(bufLen) - 1
	if len(s) < n {
		n = len(s)
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(bufLen))
	copy(dst, s[:n])
	dst[n] = 0
	return C.int32_t(mixcore.OK)
}

// writeFixedName copies name into a fixed 64-byte C char array field,
// truncating and null-terminating, matching track.MaxNameBytes.
func writeFixedName(name string, dst *[64]C.char) {
	b := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(dst))
	n := len(name)
	if n > len(b)-1 {
		n = len(b) - 1
	}
	copy(b, name[:n])
	b[n] = 0
}
