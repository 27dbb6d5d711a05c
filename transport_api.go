// SPDX-License-Identifier: EPL-2.0

package mixcore

// Play, Stop, Pause, and Record implement spec.md §4.2's transport
// transitions (Pause acts only from Playing and is a no-op otherwise);
// none of them can fail once the engine is running.
func (e *Engine) Play() Code {
	if !e.isRunning() {
		return NotInit
	}
	e.scene.Play()
	return OK
}

func (e *Engine) Stop() Code {
	if !e.isRunning() {
		return NotInit
	}
	e.scene.Stop()
	return OK
}

func (e *Engine) Pause() Code {
	if !e.isRunning() {
		return NotInit
	}
	e.scene.Pause()
	return OK
}

func (e *Engine) Record() Code {
	if !e.isRunning() {
		return NotInit
	}
	e.scene.Record()
	return OK
}

// Seek requires beat >= 0 (spec.md §4.2 seek).
func (e *Engine) Seek(beat float64) Code {
	if !e.isRunning() {
		return NotInit
	}
	return codeFromErr(e.scene.Seek(beat))
}

// SetBPM requires 1 <= bpm <= 999.
func (e *Engine) SetBPM(bpm float64) Code {
	if !e.isRunning() {
		return NotInit
	}
	return codeFromErr(e.scene.SetBPM(bpm))
}

// SetLoop requires end > start.
func (e *Engine) SetLoop(enabled bool, start, end float64) Code {
	if !e.isRunning() {
		return NotInit
	}
	return codeFromErr(e.scene.SetLoop(enabled, start, end))
}
