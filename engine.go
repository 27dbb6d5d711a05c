// SPDX-License-Identifier: EPL-2.0

// Package mixcore is the control-API surface of the realtime mixer
// engine (spec.md §4.6): lifecycle, transport, master, track CRUD, and
// clip loading, each returning a Code the way a C-ABI boundary expects.
// The realtime mix pass itself lives in package mixer; this package
// only ever touches the scene lock for the duration of one field
// mutation.
package mixcore

import (
	"sync"

	"github.com/larkspur-audio/mixcore/backend"
	"github.com/larkspur-audio/mixcore/decode"
	"github.com/larkspur-audio/mixcore/scene"
)

// version is the engine's own release string, returned by Version. It
// has no relationship to the module's go.mod version.
const version = "1.0.0"

// Config carries the values init (spec.md §4.1) applies to a new Scene.
// The zero value is not valid; use DefaultConfig.
type Config struct {
	SampleRate   int
	BitDepth     int
	BufferFrames int
}

// DefaultConfig returns spec.md §6's documented defaults: 44100 Hz,
// 24-bit, 512-frame periods.
func DefaultConfig() Config {
	return Config{SampleRate: 44100, BitDepth: 24, BufferFrames: 512}
}

// Engine is one live instance of the mixer core: a Scene, the device
// backend driving it, and the file loader feeding it clips. spec.md §3
// calls for a single process-wide Scene; Engine is the explicit handle
// spec.md §9 recommends wrapping it in so tests can stand up isolated
// instances instead of relying on a package-level global.
type Engine struct {
	mu sync.Mutex

	scene   *scene.Scene
	device  backend.Device
	loader  *decode.Loader
	running bool
}

// DeviceOpener opens the backend a new Engine drives. newDevice is the
// default used by Init; InitWithDevice lets a caller (tests, cmd/mixrender)
// substitute the headless Null device or a file-rendering one.
type DeviceOpener func(s *scene.Scene, period int) (backend.Device, error)

// newDevice opens the real ebitengine/oto backend.
var newDevice DeviceOpener = func(s *scene.Scene, period int) (backend.Device, error) {
	return backend.NewOto(s, period)
}

// Init constructs a new Engine and opens its audio device. A process
// that wants more than one Engine (e.g. a test suite) may call Init
// repeatedly on distinct *Engine values; only the package-level
// singleton used by cabi enforces init-once (spec.md §4.1
// "second init without shutdown fails").
func Init(cfg Config) (*Engine, Code) {
	return InitWithDevice(cfg, newDevice)
}

// InitWithDevice is Init with an explicit DeviceOpener, for callers that
// need something other than real hardware playback (spec.md §9's handle
// pattern applied to the backend collaborator too).
func InitWithDevice(cfg Config, open DeviceOpener) (*Engine, Code) {
	s := scene.New(cfg.SampleRate, cfg.BitDepth, cfg.BufferFrames)

	dev, err := open(s, cfg.BufferFrames)
	if err != nil {
		s.SetReady(false)
		return nil, AudioDevice
	}

	if err := dev.Start(); err != nil {
		return nil, AudioDevice
	}

	return &Engine{
		scene:   s,
		device:  dev,
		loader:  decode.NewLoader(cfg.SampleRate),
		running: true,
	}, OK
}

// Shutdown halts the backend before releasing any clip PCM (spec.md §5
// "resource ownership": the callback must not race with teardown), then
// marks the Scene not-ready so any in-flight callback emits silence.
func (e *Engine) Shutdown() Code {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return NotInit
	}

	_ = e.device.Stop()
	_ = e.device.Close()
	e.scene.SetReady(false)
	e.running = false
	return OK
}

// GetState returns a point-in-time snapshot of the whole scene, or
// NotInit if Shutdown already ran.
func (e *Engine) GetState() (scene.StateSnapshot, Code) {
	e.mu.Lock()
	running := e.running
	e.mu.Unlock()

	if !running {
		return scene.StateSnapshot{}, NotInit
	}
	return e.scene.GetState(), OK
}

// Version returns the engine's release string (spec.md §4.1 version).
func Version() string {
	return version
}
